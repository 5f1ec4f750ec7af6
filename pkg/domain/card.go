package domain

import (
	"strconv"
)

// CardType is the issuer tag derived from the leading digits of a card number.
type CardType int

const (
	// CardTypeUnknown is returned when no issuer range matches, including for empty input.
	CardTypeUnknown CardType = iota
	// CardTypeVisa covers numbers starting with 4.
	CardTypeVisa
	// CardTypeMastercard covers 51-55 and the 2221-2720 series.
	CardTypeMastercard
	// CardTypeAmex covers numbers starting with 34 or 37.
	CardTypeAmex
	// CardTypeDiscover covers 6011, 644-649 and 65.
	CardTypeDiscover
)

// DefaultCvcLength is the CVC length expected when the issuer is unknown.
const DefaultCvcLength = 3

// String returns the display label of the card type.
func (c CardType) String() string {
	switch c {
	case CardTypeVisa:
		return "VISA"
	case CardTypeMastercard:
		return "MASTERCARD"
	case CardTypeAmex:
		return "AMEX"
	case CardTypeDiscover:
		return "DISCOVER"
	default:
		return "UNKNOWN"
	}
}

// CvcLength returns the number of CVC digits printed on cards of this type.
func (c CardType) CvcLength() int {
	if c == CardTypeAmex {
		return 4
	}

	return DefaultCvcLength
}

// IsKnown reports whether c names an actual issuer.
func (c CardType) IsKnown() bool { return c != CardTypeUnknown }

// prefixRange matches numbers whose first len(from) digits fall in [from, to].
// from and to always have the same number of digits.
type prefixRange struct {
	from, to string
	cardType CardType
}

// issuerRanges is ordered from the most to the least specific prefix so that
// e.g. 6011 is tested before any shorter 6x range.
var issuerRanges = []prefixRange{ //nolint: gochecknoglobals
	{from: "2221", to: "2720", cardType: CardTypeMastercard},
	{from: "6011", to: "6011", cardType: CardTypeDiscover},
	{from: "644", to: "649", cardType: CardTypeDiscover},
	{from: "34", to: "34", cardType: CardTypeAmex},
	{from: "37", to: "37", cardType: CardTypeAmex},
	{from: "51", to: "55", cardType: CardTypeMastercard},
	{from: "65", to: "65", cardType: CardTypeDiscover},
	{from: "4", to: "4", cardType: CardTypeVisa},
}

func (r prefixRange) matches(number string) bool {
	n := len(r.from)
	if len(number) < n {
		return false
	}
	prefix, err := strconv.Atoi(number[:n])
	if err != nil {
		return false
	}
	from, _ := strconv.Atoi(r.from)
	to, _ := strconv.Atoi(r.to)

	return prefix >= from && prefix <= to
}

// Classify maps a (possibly partial) card number to its issuer. It is total:
// empty or unrecognised input yields CardTypeUnknown.
func Classify(number string) CardType {
	for _, r := range issuerRanges {
		if r.matches(number) {
			return r.cardType
		}
	}

	return CardTypeUnknown
}
