package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safetrack/config"
	"safetrack/internal/delivery/api/response"
	"safetrack/internal/delivery/api/router"
	"safetrack/internal/delivery/api/router/handler"
	deliverycontext "safetrack/internal/delivery/context"
	domainerrors "safetrack/internal/domain/errors"
	mockUsecase "safetrack/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (http.Handler, *mockUsecase.MockIngestionUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ingestionUC := mockUsecase.NewMockIngestionUsecase(t)

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{
				IngestionUC: ingestionUC,
				Logger:      logger,
			}),
		},
	})

	return e, ingestionUC
}

func TestAPIServer_ErrorEnvelope(t *testing.T) {
	t.Run("unknown child maps to 404 with the caller request id", func(t *testing.T) {
		e, ingestionUC := newTestEcho(t)
		ingestionUC.EXPECT().Ingest(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrChildNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/locations",
			strings.NewReader(`{"subject_id":"ghost","latitude":14.6,"longitude":120.98}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var env response.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CHILD_NOT_FOUND", env.Error.Code)
		assert.Equal(t, "req-7", env.Meta.RequestID)
	})

	t.Run("oversized body is rejected before ingestion", func(t *testing.T) {
		e, _ := newTestEcho(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", strings.NewReader(strings.Repeat("x", 4096)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	})

	t.Run("health", func(t *testing.T) {
		e, _ := newTestEcho(t)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}
