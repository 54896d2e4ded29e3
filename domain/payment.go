package domain

// PaymentMethodType is the discriminator selecting which fields are
// required on a payment method and, later, on its payment result.
type PaymentMethodType string

const (
	PaymentTypeCard   PaymentMethodType = "CARD"
	PaymentTypeUPI    PaymentMethodType = "UPI"
	PaymentTypeEMI    PaymentMethodType = "EMI"
	PaymentTypeWallet PaymentMethodType = "WALLET"
)

// PaymentMethod is a tagged union: Type decides which of the optional
// fields carry meaning. Stored as a JSON column on the order.
type PaymentMethod struct {
	Type PaymentMethodType `json:"type"`

	// CARD
	CardLast4   string `json:"cardLast4,omitempty"`
	CardExpiry  string `json:"cardExpiry,omitempty"`
	CardNetwork string `json:"cardNetwork,omitempty"`

	// UPI
	UpiID       string `json:"upiId,omitempty"`
	UpiProvider string `json:"upiProvider,omitempty"`

	// EMI
	EmiMonths       int     `json:"emiMonths,omitempty"`
	EmiBank         string  `json:"emiBank,omitempty"`
	EmiInterestRate float64 `json:"emiInterestRate,omitempty"`

	// WALLET
	WalletProvider string `json:"walletProvider,omitempty"`
}

// PaymentResult is the already-verified confirmation handed in by the
// caller. The transaction-identifier field that must be present depends
// on the order's payment method tag, not on anything in the result.
type PaymentResult struct {
	Status string `json:"status"`

	CardTransactionID   string `json:"cardTransactionId,omitempty"`
	UpiTransactionID    string `json:"upiTransactionId,omitempty"`
	EmiTransactionID    string `json:"emiTransactionId,omitempty"`
	EmiApprovalID       string `json:"emiApprovalId,omitempty"`
	WalletTransactionID string `json:"walletTransactionId,omitempty"`

	UpdateTime   string `json:"update_time,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}
