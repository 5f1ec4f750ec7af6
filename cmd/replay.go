package main

import (
	"cardvalidator/internal/config"
	"cardvalidator/internal/dispatch"
	"cardvalidator/internal/script"
	"cardvalidator/internal/validation"
	"cardvalidator/pkg/logger"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// printSink writes every output as a name=value line.
type printSink struct {
	w io.Writer
}

func (p printSink) NumberFieldErrorHighlight(show bool) {
	_, _ = fmt.Fprintf(p.w, "%s=%t\n", validation.OutputNumberHighlight, show)
}

func (p printSink) CvcFieldErrorHighlight(show bool) {
	_, _ = fmt.Fprintf(p.w, "%s=%t\n", validation.OutputCvcHighlight, show)
}

func (p printSink) CardTypeLabel(label string) {
	_, _ = fmt.Fprintf(p.w, "%s=%s\n", validation.OutputCardTypeLabel, label)
}

func (p printSink) SubmitEnabled(enabled bool) {
	_, _ = fmt.Fprintf(p.w, "%s=%t\n", validation.OutputSubmitEnabled, enabled)
}

func (p printSink) ErrorMessageText(text string) {
	_, _ = fmt.Fprintf(p.w, "%s=%q\n", validation.OutputErrorMessage, text)
}

// replayCommand constructs the 'replay' subcommand that feeds a recorded event
// script through the validation graph and prints every published output.
func replayCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "replay FILE",
		Short:        "Replays a YAML event script and prints the published outputs",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithFields(cmd.Context(), zap.String("script", args[0]))

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read script: %w", err)
			}
			s, err := script.Parse(data)
			if err != nil {
				return err
			}

			m, writeMetrics := getMetrics(ctx, cfg)
			defer writeMetrics()

			d := dispatch.New(ctx, printSink{w: cmd.OutOrStdout()}, cfg.Dispatch.BufferSize, dispatch.WithMetrics(m))
			defer d.Close()

			g, err := validation.New(ctx, d, validation.WithMetrics(m))
			if err != nil {
				return fmt.Errorf("could not create validation graph: %w", err)
			}
			defer g.Close()

			return s.Apply(g, func(i int, e script.Event) {
				logger.Debug(ctx, "replaying event", zap.Int("index", i), zap.Stringer("event", e))
			})
		},
	}

	return cmd
}
