// Package validation wires card number and CVC input events into the outputs
// that drive a payment form: error highlighting, the card type label, submit
// enablement and the error message.
//
// A Graph is one form session. Text inputs start out empty, so every output
// that does not depend on focus is published as soon as the graph is built.
// The highlight outputs are published once the field has reported focus at
// least once, and are only raised for a field that has been focused before,
// is not focused now and holds an invalid value.
package validation

import (
	"cardvalidator/internal/focus"
	"cardvalidator/internal/signal"
	"cardvalidator/pkg/domain"
	"cardvalidator/pkg/logger"
	"cardvalidator/pkg/luhn"
	"cardvalidator/pkg/metrics"
	"cardvalidator/pkg/serrors"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Input names, also used as metric labels.
const (
	InputNumberText  = "numberText"
	InputNumberFocus = "numberFocus"
	InputCvcText     = "cvcText"
	InputCvcFocus    = "cvcFocus"
)

// Error message lines, listed in the order they appear in ErrorMessageText.
const (
	MessageUnknownType     = "Unknown card type"
	MessageInvalidChecksum = "Invalid checksum"
	MessageInvalidCvc      = "Invalid CVC code"
)

// Result is a snapshot of the derived validity flags.
type Result struct {
	CardType        domain.CardType
	IsKnownType     bool
	IsValidChecksum bool
	IsValidNumber   bool
	IsValidCvc      bool
	CanSubmit       bool
	ErrorMessage    string
}

// Option configures a Graph.
type Option func(g *Graph)

// WithMetrics records input, output and latency metrics on m.
func WithMetrics(m *metrics.Validation) Option {
	return func(g *Graph) { g.metrics = m }
}

// Graph is the validation dataflow for one form session. It is not safe for
// concurrent use: input events must come from a single goroutine.
type Graph struct {
	ctx     context.Context //nolint: containedctx
	session string
	metrics *metrics.Validation

	graph   *signal.Graph
	tracker *focus.Tracker

	numberText  *signal.Source[string]
	numberFocus *signal.Source[bool]
	cvcText     *signal.Source[string]
	cvcFocus    *signal.Source[bool]

	cardType        *signal.Signal[domain.CardType]
	isKnownType     *signal.Signal[bool]
	isValidChecksum *signal.Signal[bool]
	isValidNumber   *signal.Signal[bool]
	isValidCvc      *signal.Signal[bool]
	canSubmit       *signal.Signal[bool]
	errorMessage    *signal.Signal[string]
}

// New builds a graph publishing to sink and emits the initial outputs.
func New(ctx context.Context, sink Sink, opts ...Option) (*Graph, error) {
	g := &Graph{
		session: uuid.NewString(),
		graph:   signal.New(),
		tracker: focus.NewTracker(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.ctx = logger.WithFields(logger.Named(ctx, "validation"), zap.String("session", g.session))

	g.build(sink)
	if err := g.graph.Start(); err != nil {
		return nil, fmt.Errorf("could not start validation graph: %w", err)
	}
	logger.Debug(g.ctx, "validation graph started")

	return g, nil
}

func and(a, b bool) bool { return a && b }

func showError(hasEverFocused, focused, valid bool) bool {
	return hasEverFocused && !focused && !valid
}

// messageLine returns a mapper producing msg when the flag is false.
func messageLine(msg string) func(bool) string {
	return func(ok bool) string {
		if ok {
			return ""
		}

		return msg
	}
}

func joinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// checksum treats text the caller failed to filter as an invalid number; text
// entering through the Graph methods is checked for digits beforehand.
func checksum(number string) bool {
	ok, err := luhn.Check(number)

	return err == nil && ok
}

func cvcMatches(cardType domain.CardType, cvc string) bool {
	return utf8.RuneCountInString(cvc) == cardType.CvcLength()
}

func (g *Graph) latch(field focus.Field) func(bool) bool {
	return func(focused bool) bool { return g.tracker.Observe(field, focused) }
}

func (g *Graph) build(sink Sink) {
	sg := g.graph

	g.numberText = signal.NewSource[string](sg, InputNumberText).StartWith("")
	g.cvcText = signal.NewSource[string](sg, InputCvcText).StartWith("")
	g.numberFocus = signal.NewSource[bool](sg, InputNumberFocus)
	g.cvcFocus = signal.NewSource[bool](sg, InputCvcFocus)

	g.cardType = signal.Map("cardType", g.numberText, domain.Classify)
	cardTypeLabel := signal.Map(OutputCardTypeLabel, g.cardType, domain.CardType.String)
	g.isKnownType = signal.Map("isKnownType", g.cardType, domain.CardType.IsKnown)
	g.isValidChecksum = signal.Map("isValidChecksum", g.numberText, checksum)
	g.isValidNumber = signal.Combine2("isValidNumber", g.isKnownType, g.isValidChecksum, and)

	numberHasEverFocused := signal.Map("numberHasEverFocused", g.numberFocus, g.latch(focus.FieldNumber)).
		StartWith(false)
	cvcHasEverFocused := signal.Map("cvcHasEverFocused", g.cvcFocus, g.latch(focus.FieldCvc)).
		StartWith(false)

	g.isValidCvc = signal.Combine2("isValidCvc", g.cardType, g.cvcText, cvcMatches)

	showNumberError := signal.Combine3(OutputNumberHighlight,
		numberHasEverFocused, g.numberFocus, g.isValidNumber, showError)
	showCvcError := signal.Combine3(OutputCvcHighlight,
		cvcHasEverFocused, g.cvcFocus, g.isValidCvc, showError)

	g.canSubmit = signal.Combine2(OutputSubmitEnabled, g.isValidNumber, g.isValidCvc, and)

	g.errorMessage = signal.CombineAll(OutputErrorMessage, []signal.Input[string]{
		signal.Map("unknownTypeLine", g.isKnownType, messageLine(MessageUnknownType)),
		signal.Map("checksumLine", g.isValidChecksum, messageLine(MessageInvalidChecksum)),
		signal.Map("cvcLine", g.isValidCvc, messageLine(MessageInvalidCvc)),
	}, joinLines)

	publish(g, showNumberError, sink.NumberFieldErrorHighlight)
	publish(g, showCvcError, sink.CvcFieldErrorHighlight)
	publish(g, cardTypeLabel, sink.CardTypeLabel)
	publish(g, g.canSubmit, sink.SubmitEnabled)
	publish(g, g.errorMessage, sink.ErrorMessageText)
}

func publish[T any](g *Graph, s *signal.Signal[T], fn func(T)) {
	name := s.Name()
	s.Subscribe(func(v T) {
		if g.metrics != nil {
			g.metrics.Published.WithLabelValues(name).Inc()
		}
		logger.Debug(g.ctx, "publishing output", zap.String("output", name), zap.Any("value", v))
		fn(v)
	})
}

// Session returns the random identifier of this graph, attached to its logs.
func (g *Graph) Session() string { return g.session }

func set[T any](g *Graph, src *signal.Source[T], v T) error {
	start := time.Now()
	if err := src.Set(v); err != nil {
		return fmt.Errorf("could not update %s: %w", src.Name(), err)
	}
	if g.metrics != nil {
		g.metrics.Events.WithLabelValues(src.Name()).Inc()
		g.metrics.Propagation.Observe(time.Since(start).Seconds())
	}

	return nil
}

// NumberTextChanged pushes the full current text of the number field. Text
// containing anything but ASCII digits is rejected with serrors.ErrInvalidInput
// and leaves every output untouched.
func (g *Graph) NumberTextChanged(text string) error {
	if _, err := luhn.ParseDigits(text); err != nil {
		if g.metrics != nil {
			g.metrics.Rejected.WithLabelValues(InputNumberText).Inc()
		}
		logger.Warn(g.ctx, "rejected card number input", zap.Error(err))

		return fmt.Errorf("could not update %s: %w", InputNumberText, err)
	}

	return set(g, g.numberText, text)
}

// NumberFocusChanged pushes a focus or blur of the number field.
func (g *Graph) NumberFocusChanged(focused bool) error {
	return set(g, g.numberFocus, focused)
}

// CvcTextChanged pushes the full current text of the CVC field.
func (g *Graph) CvcTextChanged(text string) error {
	return set(g, g.cvcText, text)
}

// CvcFocusChanged pushes a focus or blur of the CVC field.
func (g *Graph) CvcFocusChanged(focused bool) error {
	return set(g, g.cvcFocus, focused)
}

// TextChanged routes a text event to the field's input.
func (g *Graph) TextChanged(field focus.Field, text string) error {
	switch field {
	case focus.FieldNumber:
		return g.NumberTextChanged(text)
	case focus.FieldCvc:
		return g.CvcTextChanged(text)
	default:
		return serrors.With(serrors.ErrInvalidInput, "unknown field %q", field)
	}
}

// FocusChanged routes a focus event to the field's input.
func (g *Graph) FocusChanged(field focus.Field, focused bool) error {
	switch field {
	case focus.FieldNumber:
		return g.NumberFocusChanged(focused)
	case focus.FieldCvc:
		return g.CvcFocusChanged(focused)
	default:
		return serrors.With(serrors.ErrInvalidInput, "unknown field %q", field)
	}
}

// HasEverFocused reports the focus latch of field.
func (g *Graph) HasEverFocused(field focus.Field) bool {
	return g.tracker.HasEverFocused(field)
}

// Result returns the current validity flags.
func (g *Graph) Result() Result {
	cardType, _ := g.cardType.Value()
	isKnownType, _ := g.isKnownType.Value()
	isValidChecksum, _ := g.isValidChecksum.Value()
	isValidNumber, _ := g.isValidNumber.Value()
	isValidCvc, _ := g.isValidCvc.Value()
	canSubmit, _ := g.canSubmit.Value()
	errorMessage, _ := g.errorMessage.Value()

	return Result{
		CardType:        cardType,
		IsKnownType:     isKnownType,
		IsValidChecksum: isValidChecksum,
		IsValidNumber:   isValidNumber,
		IsValidCvc:      isValidCvc,
		CanSubmit:       canSubmit,
		ErrorMessage:    errorMessage,
	}
}

// Close releases the sink. Input events after Close fail with serrors.ErrClosed.
func (g *Graph) Close() {
	if g.graph.Closed() {
		return
	}
	g.graph.Close()
	logger.Debug(g.ctx, "validation graph closed")
}
