package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/controleapp/inventory/internal/audit/domain"
	auditRepository "github.com/controleapp/inventory/internal/audit/repository"
	auditUseCase "github.com/controleapp/inventory/internal/audit/usecase"
	"github.com/controleapp/inventory/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuditRouter(t *testing.T) (*gin.Engine, auditUseCase.Recorder) {
	t.Helper()

	store := auditRepository.NewMemoryAuditRepository(100)
	recorder := auditUseCase.NewAsyncRecorder(store, 16, testutil.NewTestLogger())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, recorder.Close(ctx))
	})

	handler := NewAuditHandler(recorder, testutil.NewTestLogger())

	router := gin.New()
	router.GET("/v1/audit-events", handler.ListHandler)
	return router, recorder
}

func TestAuditHandlerList(t *testing.T) {
	t.Run("returns recorded events", func(t *testing.T) {
		router, recorder := newAuditRouter(t)

		recorder.Record(auditDomain.Event{
			ActorID:    "usr_admin",
			ActorEmail: "admin@controle.local",
			Action:     auditDomain.ActionViewSecret,
			Resource:   "/v1/secrets",
		})

		require.Eventually(t, func() bool {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/audit-events", nil))
			if resp.Code != http.StatusOK {
				return false
			}
			var body struct {
				Events []struct {
					Action string `json:"action"`
				} `json:"events"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				return false
			}
			return len(body.Events) == 1 && body.Events[0].Action == "view_secret"
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("empty trail yields an empty list", func(t *testing.T) {
		router, _ := newAuditRouter(t)

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/audit-events", nil))

		require.Equal(t, http.StatusOK, resp.Code)

		var body struct {
			Events []json.RawMessage `json:"events"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Empty(t, body.Events)
	})

	t.Run("invalid pagination is rejected", func(t *testing.T) {
		router, _ := newAuditRouter(t)

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/audit-events?offset=-5", nil))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "VALIDATION_ERROR")
	})
}
