package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	service "github.com/aaravmahajanofficial/bike-storefront/internal/services"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils/response"
)

// CheckoutHandler serves the shipping, payment and confirmation steps.
// Field validation happens in the service after the input is sanitised, so
// the handlers only decode.
type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// GetCheckout godoc
//	@Summary	Current checkout step with the order summary
//	@Tags		Checkout
//	@Produce	json
//	@Success	200	{object}	models.CheckoutResponse
//	@Router		/checkout [get]
func (h *CheckoutHandler) GetCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		checkout, err := h.checkoutService.GetCheckout(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to get checkout", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, checkout)
	}
}

// SubmitShipping godoc
//	@Summary	Submit shipping details
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		shipping	body		models.ShippingInfo	true	"Shipping details"
//	@Success	200			{object}	models.CheckoutResponse
//	@Failure	400			{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure	409			{object}	response.ErrorResponse	"Wrong checkout step"
//	@Router		/checkout/shipping [post]
func (h *CheckoutHandler) SubmitShipping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.ShippingInfo
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid shipping input", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		checkout, err := h.checkoutService.SubmitShipping(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Shipping details rejected", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Shipping details accepted")
		response.Success(w, http.StatusOK, checkout)
	}
}

// SubmitPayment godoc
//	@Summary		Pay for the order
//	@Description	Authorises the payment and starts processing. The step moves to confirmation after the payment delay.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.PaymentMethod	true	"Payment method"
//	@Success		202		{object}	models.CheckoutResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		409		{object}	response.ErrorResponse	"Wrong checkout step"
//	@Failure		502		{object}	response.ErrorResponse	"Payment gateway failure"
//	@Router			/checkout/payment [post]
func (h *CheckoutHandler) SubmitPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.PaymentMethod
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid payment input", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		logger = logger.With(slog.String("paymentType", string(req.Type)))

		checkout, err := h.checkoutService.SubmitPayment(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Payment rejected", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment accepted", slog.String("reference", checkout.State.PaymentReference))
		response.Success(w, http.StatusAccepted, checkout)
	}
}

func (h *CheckoutHandler) Back() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		checkout, err := h.checkoutService.Back(r.Context(), sessionID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Cannot go back", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, checkout)
	}
}

// CompleteOrder godoc
//	@Summary	Place the order once payment is confirmed
//	@Tags		Checkout
//	@Produce	json
//	@Success	201	{object}	models.Order
//	@Failure	409	{object}	response.ErrorResponse	"Payment not confirmed yet"
//	@Router		/checkout/complete [post]
func (h *CheckoutHandler) CompleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		order, err := h.checkoutService.CompleteOrder(r.Context(), sessionID)
		if err != nil {
			logger.Warn("Failed to complete order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order completed", slog.String("orderId", order.ID.String()))
		response.Success(w, http.StatusCreated, order)
	}
}
