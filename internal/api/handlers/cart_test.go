package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/aaravmahajanofficial/bike-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/bike-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// setupCartTest -> creates common test dependencies
func setupCartTest() (*mocks.CartService, *handlers.CartHandler) {
	mockCartService := new(mocks.CartService)
	return mockCartService, handlers.NewCartHandler(mockCartService)
}

func cartWith(productID string, quantity int, unitPrice float64) *models.CartResponse {
	total := float64(quantity) * unitPrice

	return &models.CartResponse{
		Cart: &models.Cart{
			Items:       []models.CartItem{{Product: models.Product{ID: productID, Price: unitPrice}, Quantity: quantity}},
			TotalItems:  quantity,
			TotalAmount: total,
		},
		Summary: &models.OrderSummary{Subtotal: total, Tax: total * 0.18, Total: total * 1.18},
	}
}

func TestGetCart(t *testing.T) {
	t.Run("Success - Retrieve Cart", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/cart", nil, testSession, nil)
		recorder := httptest.NewRecorder()

		mockCartService.On("GetCart", mock.Anything, testSession).Return(cartWith("1", 2, 100000), nil).Once()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decode[models.CartResponse](t, recorder)
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Data.Cart.TotalItems)
		assert.InDelta(t, 236000, resp.Data.Summary.Total, 0.001)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Session", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/cart", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, decode[any](t, recorder).Error.Code)
		mockCartService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/cart", nil, testSession, nil)
		recorder := httptest.NewRecorder()

		mockCartService.On("GetCart", mock.Anything, testSession).Return(nil, errors.New("boom")).Once()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, appErrors.ErrCodeInternal, decode[any](t, recorder).Error.Code)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("Success - Item Added", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		body := []byte(`{"productId":"1","quantity":2}`)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/cart/items", bytes.NewBuffer(body), testSession, nil)
		recorder := httptest.NewRecorder()

		mockCartService.On("AddItem", mock.Anything, testSession, &models.AddItemRequest{ProductID: "1", Quantity: 2}).
			Return(cartWith("1", 2, 100000), nil).Once()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 2, decode[models.CartResponse](t, recorder).Data.Cart.TotalItems)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Product Id", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		body := []byte(`{"quantity":2}`)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/cart/items", bytes.NewBuffer(body), testSession, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := decode[any](t, recorder)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "Field productId is required")
		mockCartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Malformed Body", func(t *testing.T) {
		// Arrange
		_, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/cart/items", bytes.NewBufferString(`{"productId":`), testSession, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, decode[any](t, recorder).Error.Code)
	})

	t.Run("Failure - Out Of Stock", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		body := []byte(`{"productId":"3","quantity":1}`)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/cart/items", bytes.NewBuffer(body), testSession, nil)
		recorder := httptest.NewRecorder()

		mockCartService.On("AddItem", mock.Anything, testSession, mock.Anything).
			Return(nil, appErrors.OutOfStockError("Product is out of stock")).Once()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, appErrors.ErrCodeOutOfStock, decode[any](t, recorder).Error.Code)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Success - Zero Quantity Is Passed Through", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithSession(http.MethodPut, "/api/v1/cart/items/1", bytes.NewBufferString(`{"quantity":0}`),
			testSession, map[string]string{"productId": "1"})
		recorder := httptest.NewRecorder()

		empty := &models.CartResponse{Cart: &models.Cart{Items: []models.CartItem{}}, Summary: &models.OrderSummary{}}
		mockCartService.On("UpdateQuantity", mock.Anything, testSession, "1", 0).Return(empty, nil).Once()

		// Act
		cartHandler.UpdateQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, decode[models.CartResponse](t, recorder).Data.Cart.Items)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Quantity Missing", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithSession(http.MethodPut, "/api/v1/cart/items/1", bytes.NewBufferString(`{}`),
			testSession, map[string]string{"productId": "1"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveAndClear(t *testing.T) {
	t.Run("Success - Remove Item", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithSession(http.MethodDelete, "/api/v1/cart/items/2", nil,
			testSession, map[string]string{"productId": "2"})
		recorder := httptest.NewRecorder()

		mockCartService.On("RemoveItem", mock.Anything, testSession, "2").Return(cartWith("1", 1, 100000), nil).Once()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Success - Clear Cart", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := testutils.CreateTestRequestWithSession(http.MethodDelete, "/api/v1/cart", nil, testSession, nil)
		recorder := httptest.NewRecorder()

		empty := &models.CartResponse{Cart: &models.Cart{Items: []models.CartItem{}}, Summary: &models.OrderSummary{}}
		mockCartService.On("ClearCart", mock.Anything, testSession).Return(empty, nil).Once()

		// Act
		cartHandler.ClearCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Zero(t, decode[models.CartResponse](t, recorder).Data.Cart.TotalItems)
	})
}
