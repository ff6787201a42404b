package models

import "time"

type CheckoutStep string

const (
	StepShipping     CheckoutStep = "shipping"
	StepPayment      CheckoutStep = "payment"
	StepProcessing   CheckoutStep = "processing"
	StepConfirmation CheckoutStep = "confirmation"
)

type PaymentType string

const (
	PaymentCredit PaymentType = "credit"
	PaymentDebit  PaymentType = "debit"
	PaymentUPI    PaymentType = "upi"
	PaymentCOD    PaymentType = "cod"
)

func (t PaymentType) IsCard() bool {
	return t == PaymentCredit || t == PaymentDebit
}

type ShippingInfo struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"      validate:"required,numeric,len=10"`
	Address    string `json:"address"    validate:"required"`
	City       string `json:"city"       validate:"required"`
	State      string `json:"state"      validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country"`
}

// PaymentMethod carries the raw payment details submitted at the payment step.
// Card and UPI rules depend on Type and are checked by a struct-level validator.
type PaymentMethod struct {
	Type       PaymentType `json:"type"                 validate:"required,oneof=credit debit upi cod"`
	CardNumber string      `json:"cardNumber,omitempty"`
	NameOnCard string      `json:"nameOnCard,omitempty"`
	ExpiryDate string      `json:"expiryDate,omitempty"`
	CVV        string      `json:"cvv,omitempty"`
	UPIID      string      `json:"upiId,omitempty"      validate:"omitempty,upi"`
}

// Masked returns a copy that is safe to persist and echo back.
func (m PaymentMethod) Masked() PaymentMethod {
	masked := PaymentMethod{Type: m.Type, NameOnCard: m.NameOnCard, UPIID: m.UPIID}

	if digits := len(m.CardNumber); digits >= 4 {
		masked.CardNumber = "**** **** **** " + m.CardNumber[digits-4:]
	}

	return masked
}

type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	FormattedSubtotal string `json:"formattedSubtotal"`
	FormattedTax      string `json:"formattedTax"`
	FormattedTotal    string `json:"formattedTotal"`
}

// AuthorizedCart is the cart exactly as it was charged. Orders are built
// from it, not from the live cart.
type AuthorizedCart struct {
	Items      []CartItem   `json:"items"`
	TotalItems int          `json:"totalItems"`
	Summary    OrderSummary `json:"summary"`
}

type CheckoutState struct {
	Step             CheckoutStep    `json:"step"`
	Shipping         *ShippingInfo   `json:"shipping,omitempty"`
	Payment          *PaymentMethod  `json:"payment,omitempty"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	Authorized       *AuthorizedCart `json:"authorized,omitempty"`
	ProcessingSince  *time.Time      `json:"processingSince,omitempty"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type CheckoutResponse struct {
	State   *CheckoutState `json:"state"`
	Summary *OrderSummary  `json:"summary"`
	Items   []CartItem     `json:"items"`
}
