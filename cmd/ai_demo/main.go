package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tripgen/internal/ai"
	"tripgen/internal/config"
	"tripgen/internal/infra"
	"tripgen/internal/itinerary"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "ai_demo",
		Short:         "Check model connectivity and try the itinerary pipeline from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newModelsCmd(), newHelloCmd(), newPlanCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the Gemini models available to GEMINI_API_KEY",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := config.LoadGeminiKey()
			if err != nil {
				return err
			}
			provider, err := ai.NewGeminiProvider(cmd.Context(), ai.GeminiConfig{APIKey: key})
			if err != nil {
				return err
			}
			defer provider.Close()

			names, err := provider.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Available Models:")
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newHelloCmd() *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Send a one-line prompt to the configured provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Plain text answer for a connectivity check.
			cfg.AI.GeminiJSON = false
			gen, closeGen, err := ai.NewTextGenerator(cmd.Context(), cfg.AI)
			if err != nil {
				return err
			}
			defer closeGen()

			reply, err := gen.GenerateText(cmd.Context(), message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
	cmd.Flags().StringVar(&message, "message", "Say hello from Gemini!", "prompt to send")
	return cmd
}

func newPlanCmd() *cobra.Command {
	var (
		origin, destination, startDate, preferences string
		duration, budget                            string
		interests                                   []string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the itinerary pipeline once and print the /api/generate response body",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := infra.NewLogger(cfg.Log, os.Stderr)
			gen, closeGen, err := ai.NewTextGenerator(cmd.Context(), cfg.AI)
			if err != nil {
				return err
			}
			defer closeGen()

			raw := map[string]any{
				"origin":      origin,
				"destination": destination,
				"startDate":   startDate,
				"duration":    duration,
				"budget":      budget,
				"interests":   toAnySlice(interests),
				"preferences": preferences,
			}
			req := itinerary.Normalize(raw)
			svc := itinerary.NewService(gen, itinerary.WithLogger(logger))

			res, err := svc.Generate(context.WithoutCancel(cmd.Context()), req)
			return printOutcome(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&origin, "origin", "", "where the trip starts")
	cmd.Flags().StringVar(&destination, "destination", "", "where the trip goes")
	cmd.Flags().StringVar(&startDate, "start-date", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&duration, "duration", "", "number of days (default 3)")
	cmd.Flags().StringVar(&budget, "budget", "", "budget in USD (default days x 50)")
	cmd.Flags().StringSliceVar(&interests, "interest", nil, "interest tag, repeatable")
	cmd.Flags().StringVar(&preferences, "preferences", "", "free-text preferences")
	return cmd
}

func printOutcome(cmd *cobra.Command, res *itinerary.Result, err error) error {
	out := map[string]any{"success": err == nil}
	switch itinerary.Classify(err) {
	case itinerary.OutcomeSuccess:
		data, err := res.JSON()
		if err != nil {
			return err
		}
		out["data"] = data
	case itinerary.OutcomeFormatFailure:
		var fe *itinerary.FormatError
		errors.As(err, &fe)
		out["error"] = itinerary.FormatFailureMessage
		out["raw"] = fe.Raw
		out["detail"] = fe.Err.Error()
	default:
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toAnySlice(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
