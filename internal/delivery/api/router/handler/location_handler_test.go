package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "safetrack/internal/delivery/api/middleware"
	"safetrack/internal/delivery/api/validator"
	"safetrack/internal/domain/entity"
	domainerrors "safetrack/internal/domain/errors"
	mockUsecase "safetrack/internal/mocks/usecase"
	"safetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func setupLocationHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockIngestionUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ingestionUC := mockUsecase.NewMockIngestionUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewLocationHandler(LocationHandlerParams{IngestionUC: ingestionUC, Logger: logger})
	e.POST("/api/v1/locations", h.IngestLocation)
	e.GET("/api/v1/children/:subjectId/locations", h.LocationHistory)

	return e, ingestionUC
}

func doRequest(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func TestLocationHandler_IngestLocation_Success(t *testing.T) {
	e, ingestionUC := setupLocationHandler(t)

	ingestionUC.EXPECT().
		Ingest(mock.Anything, mock.MatchedBy(func(in *usecase.IngestLocationInput) bool {
			return in.SubjectID == "TAG-0042" && *in.Latitude == 14.6095 && *in.Longitude == 120.9842 && in.Accuracy == nil
		})).
		Return(&usecase.IngestResult{AlertSent: true, RecipientsCount: 3, SMSSentCount: 2}, nil)

	rec, env := doRequest(e, http.MethodPost, "/api/v1/locations",
		`{"subject_id":"TAG-0042","latitude":14.6095,"longitude":120.9842}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, false, data["inside_safe_zone"])
	assert.Equal(t, true, data["alert_sent"])
	assert.Equal(t, float64(3), data["recipients_count"])
	assert.Equal(t, float64(2), data["sms_sent_count"])
}

func TestLocationHandler_IngestLocation_MissingField(t *testing.T) {
	e, ingestionUC := setupLocationHandler(t)

	rec, env := doRequest(e, http.MethodPost, "/api/v1/locations", `{"subject_id":"TAG-0042","longitude":120.9842}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "latitude is required", env.Error.Details)
	ingestionUC.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestLocationHandler_IngestLocation_MalformedJSON(t *testing.T) {
	e, _ := setupLocationHandler(t)

	rec, env := doRequest(e, http.MethodPost, "/api/v1/locations", `{"subject_id":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestLocationHandler_IngestLocation_UnknownChild(t *testing.T) {
	e, ingestionUC := setupLocationHandler(t)

	ingestionUC.EXPECT().Ingest(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrChildNotFound)

	rec, env := doRequest(e, http.MethodPost, "/api/v1/locations",
		`{"subject_id":"TAG-9999","latitude":14.6,"longitude":120.9}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CHILD_NOT_FOUND", env.Error.Code)
}

func TestLocationHandler_IngestLocation_PersistFailureHidesDetail(t *testing.T) {
	e, ingestionUC := setupLocationHandler(t)

	ingestionUC.EXPECT().Ingest(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrLocationPersistFailed, "pq: relation location_records does not exist"))

	rec, env := doRequest(e, http.MethodPost, "/api/v1/locations",
		`{"subject_id":"TAG-0042","latitude":14.6,"longitude":120.9}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "LOCATION_PERSIST_FAILED", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestLocationHandler_LocationHistory(t *testing.T) {
	e, ingestionUC := setupLocationHandler(t)
	records := []*entity.LocationRecord{{ID: 7, Latitude: 14.6, Longitude: 120.9}}

	ingestionUC.EXPECT().
		LocationHistory(mock.Anything, &usecase.LocationHistoryQuery{SubjectID: "TAG-0042", Limit: 10}).
		Return(records, nil)

	rec, env := doRequest(e, http.MethodGet, "/api/v1/children/TAG-0042/locations?limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"count":1`)
}

func TestLocationHandler_LocationHistory_Range(t *testing.T) {
	e, ingestionUC := setupLocationHandler(t)
	from := time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	ingestionUC.EXPECT().
		LocationHistory(mock.Anything, mock.MatchedBy(func(q *usecase.LocationHistoryQuery) bool {
			return q.From != nil && q.From.Equal(from) && q.To != nil && q.To.Equal(to)
		})).
		Return(nil, nil)

	rec, _ := doRequest(e, http.MethodGet,
		"/api/v1/children/TAG-0042/locations?from=2026-10-13T00:00:00Z&to=2026-10-14T00:00:00Z", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_LocationHistory_BadLimit(t *testing.T) {
	e, _ := setupLocationHandler(t)

	rec, env := doRequest(e, http.MethodGet, "/api/v1/children/TAG-0042/locations?limit=abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
