// README: Itinerary handler; maps pipeline outcomes onto the /api/generate envelope.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tripgen/internal/itinerary"
)

// ItineraryGenerator is the pipeline the handler drives.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req itinerary.Request) (*itinerary.Result, error)
}

type ItineraryHandler struct {
	svc ItineraryGenerator
}

func NewItineraryHandler(svc ItineraryGenerator) *ItineraryHandler {
	return &ItineraryHandler{svc: svc}
}

// Generate handles POST /api/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	log := zerolog.Ctx(c.Request.Context())

	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, "could not read body")
		return
	}
	var raw map[string]any
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			writeError(c, http.StatusBadRequest, "invalid json")
			return
		}
	}

	req := itinerary.Normalize(raw)

	// The model call is not cancelled when the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	res, err := h.svc.Generate(ctx, req)

	switch itinerary.Classify(err) {
	case itinerary.OutcomeSuccess:
		data, err := res.JSON()
		if err != nil {
			log.Error().Err(err).Msg("encode itinerary")
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(c, http.StatusOK, envelope{Success: true, Data: data})
	case itinerary.OutcomeFormatFailure:
		var fe *itinerary.FormatError
		errors.As(err, &fe)
		log.Warn().Err(fe.Err).Msg("JSON parse error")
		rawText := fe.Raw
		writeJSON(c, http.StatusOK, envelope{
			Success: false,
			Error:   itinerary.FormatFailureMessage,
			Raw:     &rawText,
			Detail:  fe.Err.Error(),
		})
	default:
		log.Error().Err(err).Msg("API error")
		sentry.CaptureException(err)
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}
