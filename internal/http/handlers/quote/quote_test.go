package quote

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestQuoteHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "год со скидкой десять процентов",
			body:           `{"base_monthly_fee": 50000, "months": 12}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_price":540000`,
		},
		{
			name:           "три месяца без скидки",
			body:           `{"base_monthly_fee": 50000, "months": 3}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_price":150000`,
		},
		{
			name:           "полгода со скидкой пять процентов",
			body:           `{"base_monthly_fee": 50000, "months": 6}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_price":285000`,
		},
		{
			name:           "длительность вне диапазона",
			body:           `{"base_monthly_fee": 50000, "months": 13}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `months must be between 1 and 12`,
		},
		{
			name:           "отрицательная цена",
			body:           `{"base_monthly_fee": -1, "months": 3}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field BaseMonthlyFee must be at least 0`,
		},
		{
			name:           "битый JSON",
			body:           `{"months": `,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "нет длительности",
			body:           `{"base_monthly_fee": 50000}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Months is a required field`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(newNoopLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/quote", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
