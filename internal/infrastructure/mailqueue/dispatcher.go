// Package mailqueue takes OTP delivery off the request path. It wraps a real
// sender behind the same ports.Mailer interface, so the registration flow
// cannot tell whether delivery is queued or direct.
package mailqueue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelane/commerce-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

type job struct {
	to       string
	code     string
	validFor time.Duration
}

// Dispatcher routes outbound OTP mail to a fixed set of workers using
// consistent hashing on the recipient address, guaranteeing per-recipient
// delivery ordering.
type Dispatcher struct {
	workers []chan job
	sender  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// SendOTP enqueues the delivery and returns immediately. The call is
// non-blocking up to channelBuffer capacity, so the registration response
// never waits on SMTP.
func (d *Dispatcher) SendOTP(_ context.Context, to, code string, validFor time.Duration) error {
	d.workers[d.shardIndex(to)] <- job{to: to, code: code, validFor: validFor}
	return nil
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.SendOTP(ctx, j.to, j.code, j.validFor); err != nil {
				d.log.Warn().Err(err).
					Str("email", j.to).
					Int("worker_id", id).
					Msg("OTP delivery failed")
			}
		}
	}
}
