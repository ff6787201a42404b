package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	service "github.com/aaravmahajanofficial/bike-storefront/internal/services"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: utils.NewValidator()}
}

// GetCart godoc
//	@Summary		Get the session cart
//	@Description	Returns the cart of the X-Session-ID session with its order summary.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Session id"
//	@Success		200				{object}	models.CartResponse
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to get cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary	Add a bike to the cart
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		item	body		models.AddItemRequest	true	"Product and quantity"
//	@Success	200		{object}	models.CartResponse
//	@Failure	400		{object}	response.ErrorResponse	"Validation error"
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Failure	409		{object}	response.ErrorResponse	"Not enough stock"
//	@Router		/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart",
				slog.String("productId", req.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("productId", req.ProductID), slog.Int("totalItems", cart.Cart.TotalItems))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary		Change the quantity of a cart line
//	@Description	A quantity of zero or less removes the line. Unknown lines are ignored.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		string							true	"Product id"
//	@Param			quantity	body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200			{object}	models.CartResponse
//	@Router			/cart/items/{productId} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		productID := r.PathValue("productId")

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity update input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), sessionID, productID, *req.Quantity)
		if err != nil {
			logger.Warn("Failed to update cart quantity",
				slog.String("productId", productID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), sessionID, r.PathValue("productId"))
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to remove cart item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
