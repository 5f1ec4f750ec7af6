package luhn_test

import (
	"cardvalidator/pkg/luhn"
	"cardvalidator/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "known good visa", number: "4532015112830366", valid: true},
		{name: "last digit changed", number: "4532015112830367", valid: false},
		{name: "visa test number", number: "4111111111111111", valid: true},
		{name: "amex test number", number: "378282246310005", valid: true},
		{name: "mastercard test number", number: "5555555555554444", valid: true},
		{name: "single zero", number: "0", valid: true},
		{name: "single non-zero", number: "5", valid: false},
		{name: "doubling above nine", number: "59", valid: true},
		{name: "transposed digits", number: "4532015112830636", valid: false},
		// the empty sequence sums to zero; kept as "valid" on purpose, the
		// validation graph rejects it through the card type instead.
		{name: "empty is valid", number: "", valid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := luhn.Check(tc.number)
			require.NoError(t, err)
			require.Equal(t, tc.valid, got)
		})
	}
}

func TestCheckIsOrderSensitive(t *testing.T) {
	ok, err := luhn.Check("18")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = luhn.Check("81")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseDigits(t *testing.T) {
	digits, err := luhn.ParseDigits("40129")
	require.NoError(t, err)
	require.Equal(t, []int{4, 0, 1, 2, 9}, digits)

	digits, err = luhn.ParseDigits("")
	require.NoError(t, err)
	require.Empty(t, digits)
}

func TestParseDigitsRejectsNonDigits(t *testing.T) {
	for _, in := range []string{"4111 1111", "4111-1111", "abc", "12\n", "٣"} {
		_, err := luhn.ParseDigits(in)
		require.ErrorIs(t, err, serrors.ErrInvalidInput, "input %q", in)

		ok, err := luhn.Check(in)
		require.ErrorIs(t, err, serrors.ErrInvalidInput, "input %q", in)
		require.False(t, ok)
	}
}

func TestValidMatchesCheck(t *testing.T) {
	require.True(t, luhn.Valid([]int{4, 5, 3, 2, 0, 1, 5, 1, 1, 2, 8, 3, 0, 3, 6, 6}))
	require.False(t, luhn.Valid([]int{4, 5, 3, 2, 0, 1, 5, 1, 1, 2, 8, 3, 0, 3, 6, 7}))
	require.True(t, luhn.Valid(nil))
}
