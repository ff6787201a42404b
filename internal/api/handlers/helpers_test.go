package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/bike-storefront/internal/utils/response"
	"github.com/stretchr/testify/require"
)

const testSession = "5f0c6a8e-9d4b-4c4e-8a51-0f7d2b1e9c33"

type envelope[T any] struct {
	Success bool                    `json:"success"`
	Data    T                       `json:"data"`
	Error   *response.ErrorResponse `json:"error"`
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var resp envelope[T]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return resp
}
