package mailer

import (
	"context"
	"sync"
	"time"

	"github.com/ametelin/veriauth/internal/config"
	"github.com/ametelin/veriauth/internal/logger"
)

// Dispatcher delivers queued messages on a background goroutine.
//
// Registration enqueues the verification email and returns immediately:
// delivery failures are retried up to the configured attempt bound and are
// reported through structured logs, never through the registration response.
// The queue is bounded; a full queue fails the enqueue rather than blocking
// the caller.
type Dispatcher struct {
	sender      Sender
	queue       chan Message
	maxAttempts int
	sendTimeout time.Duration
	logger      *logger.Logger

	closeOnce sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

// NewDispatcher constructs a Dispatcher with the queue capacity and retry
// bound taken from the mail configuration. Run must be called for messages
// to be delivered.
func NewDispatcher(sender Sender, cfg config.Mail, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		queue:       make(chan Message, cfg.QueueSize),
		maxAttempts: cfg.MaxAttempts,
		sendTimeout: 10 * time.Second,
		logger:      logger,
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
}

// Enqueue places a message on the dispatch queue without blocking.
//
// Returns ErrQueueFull when the queue has no free capacity and
// ErrDispatcherClosed after Shutdown has been called.
func (d *Dispatcher) Enqueue(msg Message) error {
	select {
	case <-d.done:
		return ErrDispatcherClosed
	default:
	}

	select {
	case d.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run delivers queued messages until Shutdown is called, then drains the
// remaining queue and returns. It blocks for the lifetime of the dispatcher
// and is intended to be started once on its own goroutine.
func (d *Dispatcher) Run() {
	defer close(d.stopped)

	for {
		select {
		case msg := <-d.queue:
			d.deliver(msg)
		case <-d.done:
			// drain what registration already promised to send
			for {
				select {
				case msg := <-d.queue:
					d.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

// Shutdown stops the dispatcher and waits for the Run loop to drain the
// queue and exit.
func (d *Dispatcher) Shutdown() {
	d.closeOnce.Do(func() {
		close(d.done)
	})
	<-d.stopped
}

// deliver attempts to send one message, retrying with a growing delay up to
// the configured attempt bound.
func (d *Dispatcher) deliver(msg Message) {
	var err error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		err = d.sender.Send(ctx, msg)
		cancel()

		if err == nil {
			d.logger.Debug().Str("to", msg.To).Int("attempt", attempt).Msg("email delivered")
			return
		}

		d.logger.Warn().Err(err).Str("to", msg.To).Int("attempt", attempt).Msg("email delivery attempt failed")

		if attempt < d.maxAttempts {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	d.logger.Error().Err(err).Str("to", msg.To).Int("attempts", d.maxAttempts).Msg("email delivery abandoned")
}
