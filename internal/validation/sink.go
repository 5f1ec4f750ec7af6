package validation

// Output names, also used as metric labels.
const (
	OutputNumberHighlight = "numberFieldErrorHighlight"
	OutputCvcHighlight    = "cvcFieldErrorHighlight"
	OutputCardTypeLabel   = "cardTypeLabel"
	OutputSubmitEnabled   = "submitEnabled"
	OutputErrorMessage    = "errorMessageText"
)

// Sink receives the outputs of a Graph. Calls are made synchronously on the
// goroutine that pushed the input event; a sink that must run elsewhere
// should hand the value off, see package dispatch.
//
//go:generate mockgen -package mockvalidation -source=sink.go -destination=mock/mockvalidation.go
type Sink interface {
	// NumberFieldErrorHighlight reports whether the number field should be shown as invalid.
	NumberFieldErrorHighlight(show bool)
	// CvcFieldErrorHighlight reports whether the CVC field should be shown as invalid.
	CvcFieldErrorHighlight(show bool)
	// CardTypeLabel is the display name of the detected card type.
	CardTypeLabel(label string)
	// SubmitEnabled reports whether both the number and the CVC are valid.
	SubmitEnabled(enabled bool)
	// ErrorMessageText is the list of problems, one per line, possibly empty.
	ErrorMessageText(text string)
}

// State is a Sink that keeps the latest value of every output.
type State struct {
	NumberHighlighted bool
	CvcHighlighted    bool
	CardType          string
	CanSubmit         bool
	ErrorText         string
}

var _ Sink = (*State)(nil)

func (s *State) NumberFieldErrorHighlight(show bool) { s.NumberHighlighted = show }
func (s *State) CvcFieldErrorHighlight(show bool)    { s.CvcHighlighted = show }
func (s *State) CardTypeLabel(label string)          { s.CardType = label }
func (s *State) SubmitEnabled(enabled bool)          { s.CanSubmit = enabled }
func (s *State) ErrorMessageText(text string)        { s.ErrorText = text }
