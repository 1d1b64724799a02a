package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("handler: %w", apperr.NewValidation("text1 is required")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"text1 is required","title":"validation error"}`,
		},
		{
			name:       "not found",
			err:        apperr.NewNotFound("session", "abc"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"session not found: abc","title":"not found"}`,
		},
		{
			name:       "unavailable",
			err:        apperr.NewUnavailable("chroma", errors.New("dial tcp")),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"chroma unavailable","title":"service unavailable"}`,
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":"method not allowed"}`,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			apperr.GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
