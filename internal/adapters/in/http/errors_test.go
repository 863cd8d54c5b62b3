package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"titipin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RespondError_MapsErrorCategoriesToStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing value is a bad request",
			err:        errs.NewValueIsRequiredError("itemDescription"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid value is a bad request",
			err:        errs.NewValueIsInvalidError("status"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "out of range value is a bad request",
			err:        errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "denied capability is forbidden",
			err:        errs.NewAccessDeniedError("cancel order", "actor"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing object is not found",
			err:        errs.NewObjectNotFoundError("order", "id"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "illegal transition is a conflict",
			err:        errs.NewInvalidStateError("accept offer", "OFFER_ACCEPTED"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "duplicate offer is a conflict",
			err:        errs.NewDuplicateOperationError("offer", "id"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "anything else is an internal error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := echo.New()
			request := httptest.NewRequest(http.MethodPost, "/orders", nil)
			recorder := httptest.NewRecorder()
			ctx := e.NewContext(request, recorder)

			// Act
			err := respondError(ctx, slog.Default(), tt.err)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func Test_RespondError_InternalErrorHidesDetail(t *testing.T) {
	// Arrange
	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/orders/my", nil)
	recorder := httptest.NewRecorder()
	ctx := e.NewContext(request, recorder)

	// Act
	err := respondError(ctx, slog.Default(), errors.New("dsn: password=hunter2"))

	// Assert
	require.NoError(t, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, body.Message, "hunter2")
}
