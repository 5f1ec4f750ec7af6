package main

import (
	"cardvalidator/internal/config"
	"cardvalidator/internal/validation"
	"cardvalidator/pkg/logger"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errCannotSubmit = errors.New("card details are not valid")

// runCheck plays a complete form session: each field is focused, filled in and
// left, as a user tabbing through the form would do.
func runCheck(ctx context.Context, g *validation.Graph, number, cvc string) error {
	steps := []func() error{
		func() error { return g.NumberFocusChanged(true) },
		func() error { return g.NumberTextChanged(number) },
		func() error { return g.NumberFocusChanged(false) },
		func() error { return g.CvcFocusChanged(true) },
		func() error { return g.CvcTextChanged(cvc) },
		func() error { return g.CvcFocusChanged(false) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	logger.Debug(ctx, "check finished", zap.Any("result", g.Result()))

	return nil
}

func printState(w io.Writer, state *validation.State) {
	status := func(highlighted bool) string {
		if highlighted {
			return "invalid"
		}

		return "ok"
	}

	_, _ = fmt.Fprintf(w, "card type: %s\n", state.CardType)
	_, _ = fmt.Fprintf(w, "number:    %s\n", status(state.NumberHighlighted))
	_, _ = fmt.Fprintf(w, "cvc:       %s\n", status(state.CvcHighlighted))
	_, _ = fmt.Fprintf(w, "submit:    %t\n", state.CanSubmit)
	for _, line := range strings.Split(strings.TrimSuffix(state.ErrorText, "\n"), "\n") {
		if line != "" {
			_, _ = fmt.Fprintf(w, "error:     %s\n", line)
		}
	}
}

// checkCommand constructs the 'check' subcommand that validates a card number
// and CVC given as flags. It exits with an error when the form could not be submitted.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Validates a card number and CVC",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			number, _ := cmd.Flags().GetString("number")
			cvc, _ := cmd.Flags().GetString("cvc")

			m, writeMetrics := getMetrics(ctx, cfg)
			defer writeMetrics()

			state := &validation.State{}
			g, err := validation.New(ctx, state, validation.WithMetrics(m))
			if err != nil {
				return fmt.Errorf("could not create validation graph: %w", err)
			}
			defer g.Close()

			if err := runCheck(ctx, g, number, cvc); err != nil {
				return err
			}

			printState(cmd.OutOrStdout(), state)
			if !state.CanSubmit {
				return errCannotSubmit
			}

			return nil
		},
	}

	cmd.Flags().String("number", "", "Card number, digits only")
	cmd.Flags().String("cvc", "", "Card verification code")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}
