package response_test

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var body response.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))

	return body
}

func TestSuccess(t *testing.T) {
	rr := httptest.NewRecorder()

	response.Success(rr, http.StatusCreated, map[string]int{"totalItems": 2})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	body := decode(t, rr)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
}

func TestError(t *testing.T) {
	t.Run("Failure - App Error Keeps Code And Status", func(t *testing.T) {
		rr := httptest.NewRecorder()

		response.Error(rr, fmt.Errorf("wrapped: %w", appErrors.EmptyCartError("Your cart is empty").WithDetail("add a product first")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decode(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, body.Error.Code)
		assert.Equal(t, []string{"add a product first"}, body.Error.Details)
	})

	t.Run("Failure - Unknown Error Is Internal", func(t *testing.T) {
		rr := httptest.NewRecorder()

		response.Error(rr, stdErrors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInternal, decode(t, rr).Error.Code)
	})

	t.Run("Failure - Wrapped Validation Errors Are Expanded", func(t *testing.T) {
		type input struct {
			Email string `validate:"required,email"`
		}

		err := validator.New().Struct(input{Email: "nope"})
		rr := httptest.NewRecorder()

		response.Error(rr, appErrors.ValidationError("Invalid shipping details").WithError(err))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decode(t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, body.Error.Code)
		assert.Equal(t, []string{"Field Email must be a valid email address"}, body.Error.Details)
	})
}
