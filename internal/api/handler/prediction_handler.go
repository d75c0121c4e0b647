package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plantvision/plantvision-api/internal/api/metrics"
	"github.com/plantvision/plantvision-api/internal/core/domain"
	"github.com/plantvision/plantvision-api/internal/core/ports"
)

// maxUploadBytes bounds the accepted image payload.
const maxUploadBytes = 10 << 20

// PredictionHandler handles image classification and history requests.
type PredictionHandler struct {
	service ports.PredictionService
}

func NewPredictionHandler(service ports.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// Predict classifies an uploaded image and records the result.
//
// @Summary      Classify an uploaded plant image
// @Tags         predictions
// @Accept       multipart/form-data
// @Produce      json
// @Param        image    formData  file    true   "Image to classify"
// @Param        user_id  formData  string  false  "Account to link the prediction to"
// @Success      200      {object}  predictResponse
// @Failure      400      {object}  errorResponse
// @Failure      413      {object}  errorResponse
// @Router       /api/predict [post]
func (h *PredictionHandler) Predict(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "form field 'image' is required")
	}
	if fileHeader.Filename == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "uploaded file has no name")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds the upload limit")
	}

	var userID *int64
	if raw := c.FormValue("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "user_id must be a positive integer")
		}
		userID = &id
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}

	start := time.Now()
	result, err := h.service.Predict(c.Request().Context(), ports.PredictInput{
		UserID:   userID,
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		reason := "internal"
		if errors.Is(err, domain.ErrNotAnImage) {
			reason = "undecodable_image"
		}
		metrics.PredictionErrorsTotal.WithLabelValues(reason).Inc()
		return err
	}

	metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	metrics.PredictionsTotal.WithLabelValues(result.ClassName).Inc()

	return c.JSON(http.StatusOK, predictResponse{
		ClassName:    result.ClassName,
		Confidence:   result.Confidence,
		PredictionID: result.PredictionID,
		CreatedAt:    result.CreatedAt,
	})
}

// History lists the predictions linked to a user, most recent first.
//
// @Summary      Prediction history for a user
// @Tags         predictions
// @Produce      json
// @Param        user_id  query     int  true  "Account id"
// @Success      200      {array}   historyItemResponse
// @Failure      400      {object}  errorResponse
// @Router       /api/history [get]
func (h *PredictionHandler) History(c echo.Context) error {
	userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id query parameter must be an integer")
	}

	items, err := h.service.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	// A flat array, empty rather than null when there is no history.
	resp := make([]historyItemResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, historyItemResponse{
			ID:         p.ID,
			ClassName:  p.ClassName,
			Confidence: p.Confidence,
			CreatedAt:  p.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, resp)
}
