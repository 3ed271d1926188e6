package mailer

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Sender delivers a single password-reset notification.
type Sender interface {
	SendReset(ctx context.Context, notification ports.ResetNotification) error
}

// LogSender writes notifications to the log instead of a mail provider.
// It is the default when no SMTP relay is configured.
type LogSender struct {
	Log zerolog.Logger
}

func (s LogSender) SendReset(_ context.Context, notification ports.ResetNotification) error {
	s.Log.Info().
		Str("email", notification.Email).
		Str("token_id", notification.TokenID).
		Time("expires_at", notification.ExpiresAt).
		Msg("password reset notification")
	return nil
}

// Dispatcher routes reset notifications to a fixed set of workers using
// consistent hashing on the recipient address, so notifications for the
// same user are delivered in the order they were requested.
type Dispatcher struct {
	workers []chan ports.ResetNotification
	sender  Sender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender Sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ResetNotification, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ResetNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// EnqueueReset hands the notification to the worker responsible for its
// recipient. The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) EnqueueReset(notification ports.ResetNotification) {
	d.workers[d.shardIndex(notification.Email)] <- notification
}

// QueueDepth reports the number of notifications waiting across all workers.
func (d *Dispatcher) QueueDepth() int {
	depth := 0
	for _, ch := range d.workers {
		depth += len(ch)
	}
	return depth
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ResetNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.SendReset(ctx, notification); err != nil {
				d.log.Error().Err(err).
					Str("email", notification.Email).
					Int("worker_id", id).
					Msg("reset notification delivery failed")
			}
		}
	}
}
