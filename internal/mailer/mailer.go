// Package mailer implements outbound email delivery for the application.
//
// It defines the Sender contract implemented by provider API clients, and a
// Dispatcher that delivers messages from an in-process queue on a background
// goroutine, so that mail delivery never blocks or fails the request that
// produced the message.
package mailer

import (
	"context"
	"errors"
)

// Message is a single outbound email.
type Message struct {
	// To is the recipient address.
	To string

	// Subject is the message subject line.
	Subject string

	// HTML is the message body as HTML.
	HTML string
}

// Sender delivers a single message to the mail provider.
// Implementations are expected to be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Sentinel errors returned by [Dispatcher.Enqueue].
var (
	// ErrQueueFull is returned when the dispatch queue has no free capacity.
	// The message is dropped; the caller decides whether that is fatal.
	ErrQueueFull = errors.New("mail dispatch queue is full")

	// ErrDispatcherClosed is returned when the dispatcher has been shut down.
	ErrDispatcherClosed = errors.New("mail dispatcher is closed")
)
