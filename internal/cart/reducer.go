package cart

import (
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

type ActionKind int

const (
	AddItem ActionKind = iota + 1
	RemoveItem
	UpdateQuantity
	Clear
)

func (k ActionKind) String() string {
	switch k {
	case AddItem:
		return "add_item"
	case RemoveItem:
		return "remove_item"
	case UpdateQuantity:
		return "update_quantity"
	case Clear:
		return "clear"
	default:
		return "unknown"
	}
}

// Action is one cart mutation. Product is read by AddItem only, ProductID by
// RemoveItem and UpdateQuantity, Quantity by AddItem and UpdateQuantity.
type Action struct {
	Kind      ActionKind
	Product   models.Product
	ProductID string
	Quantity  int
}

func AddItemAction(product models.Product, quantity int) Action {
	return Action{Kind: AddItem, Product: product, Quantity: quantity}
}

func RemoveItemAction(productID string) Action {
	return Action{Kind: RemoveItem, ProductID: productID}
}

func UpdateQuantityAction(productID string, quantity int) Action {
	return Action{Kind: UpdateQuantity, ProductID: productID, Quantity: quantity}
}

func ClearAction() Action {
	return Action{Kind: Clear}
}

// Reduce returns the cart that results from applying action to state. It
// never modifies state and always recomputes the totals from the items.
func Reduce(state models.Cart, action Action) models.Cart {
	items := append([]models.CartItem(nil), state.Items...)

	switch action.Kind {
	case AddItem:
		if action.Quantity <= 0 {
			return Recompute(items)
		}

		if i := indexOf(items, action.Product.ID); i >= 0 {
			items[i].Quantity += action.Quantity
		} else {
			items = append(items, models.CartItem{Product: action.Product, Quantity: action.Quantity})
		}

	case RemoveItem:
		items = without(items, action.ProductID)

	case UpdateQuantity:
		i := indexOf(items, action.ProductID)
		if i < 0 {
			break
		}

		if action.Quantity <= 0 {
			items = without(items, action.ProductID)
		} else {
			items[i].Quantity = action.Quantity
		}

	case Clear:
		items = nil
	}

	return Recompute(items)
}

// Recompute builds a cart whose totals are derived from items.
func Recompute(items []models.CartItem) models.Cart {
	c := models.Cart{Items: items}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}

	for _, item := range c.Items {
		c.TotalItems += item.Quantity
		c.TotalAmount += item.Subtotal()
	}

	return c
}

// Normalize repairs state read from storage: non-positive quantities are
// dropped, duplicate products merged into the first line, totals recomputed.
func Normalize(state models.Cart) models.Cart {
	items := make([]models.CartItem, 0, len(state.Items))

	for _, item := range state.Items {
		if item.Quantity <= 0 || item.Product.ID == "" {
			continue
		}

		if i := indexOf(items, item.Product.ID); i >= 0 {
			items[i].Quantity += item.Quantity
			continue
		}

		items = append(items, item)
	}

	return Recompute(items)
}

func Empty() models.Cart {
	return Recompute(nil)
}

func indexOf(items []models.CartItem, productID string) int {
	for i := range items {
		if items[i].Product.ID == productID {
			return i
		}
	}

	return -1
}

func without(items []models.CartItem, productID string) []models.CartItem {
	out := items[:0:0]

	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}

	return out
}
