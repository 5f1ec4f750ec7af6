// Package dispatch moves validation outputs onto a consumer goroutine.
//
// A validation.Graph publishes synchronously on the goroutine that pushes
// input events. When the consumer has to run on its own context, wrap it in
// a Dispatcher: outputs are queued in publish order and delivered one by one
// on the dispatcher's goroutine.
package dispatch

import (
	"cardvalidator/internal/validation"
	"cardvalidator/pkg/logger"
	"cardvalidator/pkg/metrics"
	"context"
	"sync"

	"go.uber.org/zap"
)

// Option configures a Dispatcher.
type Option func(d *Dispatcher)

// WithMetrics counts outputs dropped after Close on m.Dropped.
func WithMetrics(m *metrics.Validation) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// Dispatcher is a validation.Sink that forwards every output to a target
// sink on a dedicated goroutine. Publishing blocks once bufferSize outputs
// are waiting.
type Dispatcher struct {
	ctx     context.Context //nolint: containedctx
	target  validation.Sink
	metrics *metrics.Validation

	// mu guards closed and sends on queue, so nothing is sent after close.
	mu     sync.Mutex
	closed bool
	queue  chan func()
	done   chan struct{}
}

var _ validation.Sink = (*Dispatcher)(nil)

// New starts a dispatcher delivering to target.
func New(ctx context.Context, target validation.Sink, bufferSize int, opts ...Option) *Dispatcher {
	if bufferSize < 0 {
		bufferSize = 0
	}
	d := &Dispatcher{
		ctx:    logger.Named(ctx, "dispatch"),
		target: target,
		queue:  make(chan func(), bufferSize),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	go d.loop()

	return d
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for deliver := range d.queue {
		deliver()
	}
}

func (d *Dispatcher) enqueue(output string, deliver func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		if d.metrics != nil {
			d.metrics.Dropped.Inc()
		}
		logger.Warn(d.ctx, "dropping output published after close", zap.String("output", output))

		return
	}
	d.queue <- deliver
}

func (d *Dispatcher) NumberFieldErrorHighlight(show bool) {
	d.enqueue(validation.OutputNumberHighlight, func() { d.target.NumberFieldErrorHighlight(show) })
}

func (d *Dispatcher) CvcFieldErrorHighlight(show bool) {
	d.enqueue(validation.OutputCvcHighlight, func() { d.target.CvcFieldErrorHighlight(show) })
}

func (d *Dispatcher) CardTypeLabel(label string) {
	d.enqueue(validation.OutputCardTypeLabel, func() { d.target.CardTypeLabel(label) })
}

func (d *Dispatcher) SubmitEnabled(enabled bool) {
	d.enqueue(validation.OutputSubmitEnabled, func() { d.target.SubmitEnabled(enabled) })
}

func (d *Dispatcher) ErrorMessageText(text string) {
	d.enqueue(validation.OutputErrorMessage, func() { d.target.ErrorMessageText(text) })
}

// Close delivers everything already queued, then stops the goroutine. It is
// safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
