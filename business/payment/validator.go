package payment

import (
	"shopsphere/domain"
	"shopsphere/pkg/apperror"
)

// ValidateMethod checks that a payment method carries every field its
// tag requires. Pure validation, no side effects.
func ValidateMethod(method domain.PaymentMethod) error {
	switch method.Type {
	case domain.PaymentTypeCard:
		if method.CardLast4 == "" || method.CardExpiry == "" {
			return apperror.Validation("invalid card details")
		}
	case domain.PaymentTypeUPI:
		if method.UpiID == "" {
			return apperror.Validation("upi id is required")
		}
	case domain.PaymentTypeEMI:
		if method.EmiMonths == 0 || method.EmiBank == "" || method.EmiInterestRate == 0 {
			return apperror.Validation("invalid emi details")
		}
	case domain.PaymentTypeWallet:
		if method.WalletProvider == "" {
			return apperror.Validation("wallet provider is required")
		}
	default:
		return apperror.Validation("unsupported payment method type")
	}

	return nil
}

// ValidateResult checks a payment confirmation against the payment
// method tag stored on the order, not against anything in the result
// itself. The overall status field is checked before tag dispatch.
func ValidateResult(orderType domain.PaymentMethodType, result domain.PaymentResult) error {
	if result.Status == "" {
		return apperror.Validation("invalid payment result")
	}

	switch orderType {
	case domain.PaymentTypeCard:
		if result.CardTransactionID == "" {
			return apperror.Validation("card transaction id is required")
		}
	case domain.PaymentTypeUPI:
		if result.UpiTransactionID == "" {
			return apperror.Validation("upi transaction id is required")
		}
	case domain.PaymentTypeEMI:
		if result.EmiTransactionID == "" || result.EmiApprovalID == "" {
			return apperror.Validation("emi transaction details are required")
		}
	case domain.PaymentTypeWallet:
		if result.WalletTransactionID == "" {
			return apperror.Validation("wallet transaction id is required")
		}
	default:
		return apperror.Validation("unsupported payment method type")
	}

	return nil
}
