package models

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is quantity times the effective unit price.
func (i CartItem) Subtotal() float64 {
	return float64(i.Quantity) * i.Product.EffectivePrice()
}

// Cart is the persisted cart state. TotalItems and TotalAmount are derived
// from Items and must always equal their recomputation.
type Cart struct {
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"totalItems"`
	TotalAmount float64    `json:"totalAmount"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find returns the index of the line item for productID, or -1.
func (c Cart) Find(productID string) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return i
		}
	}

	return -1
}

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CartResponse struct {
	Cart    *Cart         `json:"cart"`
	Summary *OrderSummary `json:"summary"`
}
