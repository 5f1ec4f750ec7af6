package main

import (
	"bytes"
	"cardvalidator/internal/validation"
	"cardvalidator/pkg/serrors"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name   string
		number string
		cvc    string
		want   string
	}{
		{
			name:   "valid visa",
			number: "4532015112830366",
			cvc:    "123",
			want: "card type: VISA\n" +
				"number:    ok\n" +
				"cvc:       ok\n" +
				"submit:    true\n",
		},
		{
			name:   "bad checksum and short cvc",
			number: "4532015112830367",
			cvc:    "12",
			want: "card type: VISA\n" +
				"number:    invalid\n" +
				"cvc:       invalid\n" +
				"submit:    false\n" +
				"error:     Invalid checksum\n" +
				"error:     Invalid CVC code\n",
		},
		{
			name:   "amex needs four digits",
			number: "378282246310005",
			cvc:    "123",
			want: "card type: AMEX\n" +
				"number:    ok\n" +
				"cvc:       invalid\n" +
				"submit:    false\n" +
				"error:     Invalid CVC code\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			state := &validation.State{}
			g, err := validation.New(ctx, state)
			require.NoError(t, err)
			defer g.Close()

			require.NoError(t, runCheck(ctx, g, tt.number, tt.cvc))

			var out bytes.Buffer
			printState(&out, state)
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunCheckRejectsNonDigits(t *testing.T) {
	ctx := context.Background()
	g, err := validation.New(ctx, &validation.State{})
	require.NoError(t, err)
	defer g.Close()

	err = runCheck(ctx, g, "4532-0151", "123")
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}
