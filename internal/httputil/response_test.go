package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/controleapp/inventory/internal/errors"
	"github.com/controleapp/inventory/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleErrorGin(c, err, testutil.NewTestLogger())
	return recorder
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		errorCode  string
	}{
		{
			name:       "invalid input maps to 400",
			err:        apperrors.Wrap(apperrors.ErrInvalidInput, "label: must not be blank"),
			statusCode: http.StatusBadRequest,
			errorCode:  "VALIDATION_ERROR",
		},
		{
			name:       "unauthorized maps to 401",
			err:        apperrors.ErrUnauthorized,
			statusCode: http.StatusUnauthorized,
			errorCode:  "UNAUTHORIZED",
		},
		{
			name:       "forbidden maps to 403",
			err:        apperrors.ErrForbidden,
			statusCode: http.StatusForbidden,
			errorCode:  "FORBIDDEN",
		},
		{
			name:       "not found maps to 404",
			err:        apperrors.Wrap(apperrors.ErrNotFound, "secret not found"),
			statusCode: http.StatusNotFound,
			errorCode:  "NOT_FOUND",
		},
		{
			name:       "integrity failures map to 500",
			err:        apperrors.Wrap(apperrors.ErrIntegrity, "decryption failed"),
			statusCode: http.StatusInternalServerError,
			errorCode:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := performError(t, tt.err)
			assert.Equal(t, tt.statusCode, recorder.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, tt.errorCode, response.Error.Code)
			assert.NotEmpty(t, response.Error.Message)
		})
	}

	t.Run("validation detail is preserved", func(t *testing.T) {
		recorder := performError(t, apperrors.Wrap(apperrors.ErrInvalidInput, "label: must not be blank"))

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Contains(t, response.Error.Message, "must not be blank")
	})

	t.Run("internal errors leak no detail", func(t *testing.T) {
		recorder := performError(t, apperrors.Wrap(apperrors.ErrIntegrity, "ciphertext sk-live-abc123 rejected"))
		assert.NotContains(t, recorder.Body.String(), "sk-live-abc123")
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleBadRequestGin(c, assert.AnError, testutil.NewTestLogger())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
}
