package ai

import (
	"context"
)

// TextGenerator is the single capability the itinerary pipeline needs from a model:
// turn a prompt into text. Implementations make exactly one upstream call per invocation.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
