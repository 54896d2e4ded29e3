package payment

import (
	"testing"

	"shopsphere/domain"
	"shopsphere/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMethod(t *testing.T) {
	tests := []struct {
		name    string
		method  domain.PaymentMethod
		wantErr string
	}{
		{
			name:   "card with last4 and expiry",
			method: domain.PaymentMethod{Type: domain.PaymentTypeCard, CardLast4: "4242", CardExpiry: "12/27"},
		},
		{
			name:    "card missing expiry",
			method:  domain.PaymentMethod{Type: domain.PaymentTypeCard, CardLast4: "4242"},
			wantErr: "invalid card details",
		},
		{
			name:    "card missing last4",
			method:  domain.PaymentMethod{Type: domain.PaymentTypeCard, CardExpiry: "12/27"},
			wantErr: "invalid card details",
		},
		{
			name:   "upi with id",
			method: domain.PaymentMethod{Type: domain.PaymentTypeUPI, UpiID: "alice@upi"},
		},
		{
			name:    "upi missing id",
			method:  domain.PaymentMethod{Type: domain.PaymentTypeUPI},
			wantErr: "upi id is required",
		},
		{
			name: "emi complete",
			method: domain.PaymentMethod{
				Type:            domain.PaymentTypeEMI,
				EmiMonths:       6,
				EmiBank:         "HDFC",
				EmiInterestRate: 11.5,
			},
		},
		{
			name:    "emi missing bank",
			method:  domain.PaymentMethod{Type: domain.PaymentTypeEMI, EmiMonths: 6, EmiInterestRate: 11.5},
			wantErr: "invalid emi details",
		},
		{
			name:   "wallet with provider",
			method: domain.PaymentMethod{Type: domain.PaymentTypeWallet, WalletProvider: "paytm"},
		},
		{
			name:    "wallet missing provider",
			method:  domain.PaymentMethod{Type: domain.PaymentTypeWallet},
			wantErr: "wallet provider is required",
		},
		{
			name:    "unknown tag",
			method:  domain.PaymentMethod{Type: "CHEQUE"},
			wantErr: "unsupported payment method type",
		},
		{
			name:    "empty tag",
			method:  domain.PaymentMethod{},
			wantErr: "unsupported payment method type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMethod(tt.method)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		})
	}
}

func TestValidateResult(t *testing.T) {
	tests := []struct {
		name      string
		orderType domain.PaymentMethodType
		result    domain.PaymentResult
		wantErr   string
	}{
		{
			name:      "card result complete",
			orderType: domain.PaymentTypeCard,
			result:    domain.PaymentResult{Status: "COMPLETED", CardTransactionID: "txn_1"},
		},
		{
			name:      "missing overall status checked before tag dispatch",
			orderType: domain.PaymentTypeCard,
			result:    domain.PaymentResult{CardTransactionID: "txn_1"},
			wantErr:   "invalid payment result",
		},
		{
			name:      "card missing transaction id",
			orderType: domain.PaymentTypeCard,
			result:    domain.PaymentResult{Status: "COMPLETED"},
			wantErr:   "card transaction id is required",
		},
		{
			name:      "upi missing transaction id",
			orderType: domain.PaymentTypeUPI,
			result:    domain.PaymentResult{Status: "COMPLETED"},
			wantErr:   "upi transaction id is required",
		},
		{
			name:      "emi requires both transaction and approval id",
			orderType: domain.PaymentTypeEMI,
			result:    domain.PaymentResult{Status: "COMPLETED", EmiTransactionID: "txn_9"},
			wantErr:   "emi transaction details are required",
		},
		{
			name:      "emi complete",
			orderType: domain.PaymentTypeEMI,
			result:    domain.PaymentResult{Status: "COMPLETED", EmiTransactionID: "txn_9", EmiApprovalID: "apr_3"},
		},
		{
			name:      "wallet missing transaction id",
			orderType: domain.PaymentTypeWallet,
			result:    domain.PaymentResult{Status: "COMPLETED"},
			wantErr:   "wallet transaction id is required",
		},
		{
			name:      "result validated against order tag not result fields",
			orderType: domain.PaymentTypeUPI,
			result:    domain.PaymentResult{Status: "COMPLETED", CardTransactionID: "txn_1"},
			wantErr:   "upi transaction id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResult(tt.orderType, tt.result)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		})
	}
}
