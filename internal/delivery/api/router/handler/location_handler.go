// Package handler contains the echo handlers of the tracking API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"safetrack/internal/delivery/api/response"
	"safetrack/internal/delivery/api/validator"
	domainerrors "safetrack/internal/domain/errors"
	"safetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	IngestionUC usecase.IngestionUsecase
	Logger      *slog.Logger
}

// LocationHandler serves location ingestion and history
type LocationHandler struct {
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		ingestionUC: params.IngestionUC,
		logger:      params.Logger,
	}
}

// IngestLocationRequest is the body devices post
type IngestLocationRequest struct {
	SubjectID  string     `json:"subject_id" validate:"required"`
	Latitude   *float64   `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude  *float64   `json:"longitude" validate:"required,gte=-180,lte=180"`
	Accuracy   *float64   `json:"accuracy" validate:"omitempty,gte=0"`
	ReportedAt *time.Time `json:"reported_at"`
}

// LocationHistoryResponse wraps the stored records of one child
type LocationHistoryResponse struct {
	SubjectID string `json:"subject_id"`
	Count     int    `json:"count"`
	Records   any    `json:"records"`
}

// IngestLocation handles POST /api/v1/locations
func (h *LocationHandler) IngestLocation(c echo.Context) error {
	var req IngestLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON"))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err)))
	}

	result, err := h.ingestionUC.Ingest(c.Request().Context(), &usecase.IngestLocationInput{
		SubjectID:  req.SubjectID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		ReportedAt: req.ReportedAt,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// LocationHistory handles GET /api/v1/children/:subjectId/locations
func (h *LocationHandler) LocationHistory(c echo.Context) error {
	query := &usecase.LocationHistoryQuery{SubjectID: c.Param("subjectId")}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("limit must be a positive integer"))
		}
		query.Limit = limit
	}

	for name, dst := range map[string]**time.Time{"from": &query.From, "to": &query.To} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(name+" must be an RFC3339 timestamp"))
		}
		*dst = &t
	}

	records, err := h.ingestionUC.LocationHistory(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, LocationHistoryResponse{
		SubjectID: query.SubjectID,
		Count:     len(records),
		Records:   records,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
