// README: Itinerary pipeline; prompt -> one model call -> fence strip -> JSON decode.
package itinerary

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"tripgen/internal/ai"
)

// TravelHinter supplies an optional origin-to-destination travel estimate for the prompt.
type TravelHinter interface {
	TravelHint(ctx context.Context, origin, destination string) (string, error)
}

// Service runs the request-to-itinerary pipeline. It holds no per-request state
// and is safe for concurrent use.
type Service struct {
	gen         ai.TextGenerator
	hinter      TravelHinter
	hintTimeout time.Duration
	log         zerolog.Logger
}

// DefaultTravelHintTimeout bounds the travel hint lookup so it cannot hold up the model call.
const DefaultTravelHintTimeout = 3 * time.Second

// Option customizes a Service.
type Option func(*Service)

// WithTravelHinter enables the travel note in the prompt.
func WithTravelHinter(h TravelHinter) Option {
	return func(s *Service) { s.hinter = h }
}

// WithTravelHintTimeout overrides DefaultTravelHintTimeout.
func WithTravelHintTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.hintTimeout = d
		}
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service that calls gen once per Generate.
func NewService(gen ai.TextGenerator, opts ...Option) *Service {
	s := &Service{gen: gen, hintTimeout: DefaultTravelHintTimeout, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate builds the prompt for req, asks the model once and decodes the answer.
// Errors are *TransportError when the model call failed and *FormatError when the
// answer could not be decoded.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	prompt := BuildPrompt(req, s.travelHint(ctx, req))

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("destination", req.Destination).Msg("model call failed")
		return nil, &TransportError{Err: err}
	}

	cleaned := StripFences(text)
	res, err := Decode(cleaned)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			s.log.Warn().Err(fe.Err).Int("raw_len", len(fe.Raw)).Msg("model returned unusable JSON")
		}
		return nil, err
	}

	s.log.Debug().
		Int("days", len(res.Days)).
		Float64("total_estimated_cost", res.TotalEstimatedCost).
		Msg("itinerary generated")
	return res, nil
}

func (s *Service) travelHint(ctx context.Context, req Request) string {
	if s.hinter == nil || req.Origin == "" || req.Destination == "" {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, s.hintTimeout)
	defer cancel()
	hint, err := s.hinter.TravelHint(ctx, req.Origin, req.Destination)
	if err != nil {
		s.log.Warn().Err(err).Msg("travel hint unavailable")
		return ""
	}
	return hint
}
