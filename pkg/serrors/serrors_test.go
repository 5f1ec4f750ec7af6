package serrors_test

import (
	"cardvalidator/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type positionError struct{ pos int }

func (e positionError) Error() string { return fmt.Sprintf("bad character at %d", e.pos) }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidInput,
		serrors.ErrBadRequest,
		serrors.ErrClosed,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("unexpected 'x'")

	e1 := serrors.With(serrors.ErrInvalidInput, "digit %d is not numeric", 3)
	require.Equal(t, "digit 3 is not numeric", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInvalidInput, base, "parsing card number")
	require.Equal(t, "parsing card number: unexpected 'x'", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrClosed)
	require.Equal(t, "CLOSED", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := positionError{pos: 4}
	e := serrors.Wrap(serrors.ErrInvalidInput, base, "parsing")

	require.ErrorIs(t, e, serrors.ErrInvalidInput)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrClosed)

	wrapped := fmt.Errorf("could not update number: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrInvalidInput)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &positionError{pos: 7}
	e := serrors.Wrap(serrors.ErrInvalidInput, base, "parsing")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrInvalidInput, k)

	var pe *positionError
	require.ErrorAs(t, e, &pe)
	require.Equal(t, 7, pe.pos)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "decoding script")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "decoding script", e.Message())
	require.Equal(t, base, e.Cause())
}
