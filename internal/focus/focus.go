// Package focus tracks whether an input field has ever received focus.
//
// Error highlighting is gated on this history so that a field is not marked
// invalid before the user has interacted with it.
package focus

// Field identifies a tracked input field.
type Field string

const (
	// FieldNumber is the card number field.
	FieldNumber Field = "number"
	// FieldCvc is the card verification code field.
	FieldCvc Field = "cvc"
)

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	return f == FieldNumber || f == FieldCvc
}

// Tracker keeps one latch per field. A latch starts unset, is set by the first
// focus gain and is never cleared; a fresh Tracker is needed to start over.
// Tracker is not safe for concurrent use.
type Tracker struct {
	latches map[Field]bool
}

// NewTracker returns a Tracker with every latch unset.
func NewTracker() *Tracker {
	return &Tracker{latches: make(map[Field]bool)}
}

// Observe records the current focus state of field and returns its latch.
func (t *Tracker) Observe(field Field, focused bool) bool {
	if focused {
		t.latches[field] = true
	}

	return t.latches[field]
}

// HasEverFocused returns the latch of field without changing it.
func (t *Tracker) HasEverFocused(field Field) bool {
	return t.latches[field]
}
