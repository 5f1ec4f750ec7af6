// Package script decodes recorded form sessions and replays them through a
// validation graph. A script is a YAML document listing input events in the
// order the UI emitted them:
//
//	events:
//	  - field: number
//	    focus: true
//	  - field: number
//	    text: "4532015112830366"
//	  - field: number
//	    focus: false
package script

import (
	"cardvalidator/internal/focus"
	"cardvalidator/pkg/serrors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Event is one text or focus change of a field. Exactly one of Text and
// Focus is set.
type Event struct {
	Field focus.Field `yaml:"field"`
	Text  *string     `yaml:"text,omitempty"`
	Focus *bool       `yaml:"focus,omitempty"`
}

// String renders the event the way it is logged and printed.
func (e Event) String() string {
	if e.Text != nil {
		return fmt.Sprintf("%s text %q", e.Field, *e.Text)
	}
	if e.Focus != nil && *e.Focus {
		return fmt.Sprintf("%s focus", e.Field)
	}

	return fmt.Sprintf("%s blur", e.Field)
}

// Script is an ordered list of events.
type Script struct {
	Events []Event `yaml:"events"`
}

// Target receives replayed events; validation.Graph implements it.
type Target interface {
	TextChanged(field focus.Field, text string) error
	FocusChanged(field focus.Field, focused bool) error
}

// Parse decodes and checks a script. Malformed documents and events are
// reported as serrors.ErrBadRequest.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode script")
	}

	for i, e := range s.Events {
		switch {
		case !e.Field.Valid():
			return nil, serrors.With(serrors.ErrBadRequest, "event %d: unknown field %q", i, e.Field)
		case (e.Text == nil) == (e.Focus == nil):
			return nil, serrors.With(serrors.ErrBadRequest, "event %d: exactly one of text and focus must be set", i)
		}
	}

	return &s, nil
}

// Apply feeds the events to target in order. It stops at the first event
// the target rejects; the returned error names that event.
func (s *Script) Apply(target Target, onEvent func(i int, e Event)) error {
	for i, e := range s.Events {
		if onEvent != nil {
			onEvent(i, e)
		}

		var err error
		if e.Text != nil {
			err = target.TextChanged(e.Field, *e.Text)
		} else {
			err = target.FocusChanged(e.Field, *e.Focus)
		}
		if err != nil {
			return fmt.Errorf("could not apply event %d (%s): %w", i, e, err)
		}
	}

	return nil
}
