package printrelay

import (
	"log"
	"sync"
)

// Sender is the outbound side of the dispatcher. The settlement flow only
// depends on this interface, so tests can capture jobs without a socket.
type Sender interface {
	Enqueue(job Message)
}

// Dispatcher decouples settlement from print delivery: jobs are buffered on
// a channel and pushed to the relay by a single worker goroutine. Delivery
// failures are logged and the job dropped; a bill is already persisted by
// the time its receipt is enqueued, so printing never blocks or rolls back
// a settlement.
type Dispatcher struct {
	client *Client
	jobs   chan Message
	done   chan struct{}
	once   sync.Once
}

// NewDispatcher creates a dispatcher and starts its worker.
func NewDispatcher(client *Client, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		client: client,
		jobs:   make(chan Message, queueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue submits a print job without blocking. When the queue is full the
// job is dropped and logged.
func (d *Dispatcher) Enqueue(job Message) {
	select {
	case d.jobs <- job:
	default:
		log.Printf("printrelay: queue full, dropping job for %s", job.PrinterAddr)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for job := range d.jobs {
		if err := d.client.Send(job); err != nil {
			log.Printf("printrelay: delivery to %s failed: %v", job.PrinterAddr, err)
		}
	}
}

// Close stops accepting jobs, drains the queue and closes the relay
// connection.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.jobs)
		<-d.done
		_ = d.client.Close()
	})
}

// nopSender discards all jobs; used when no relay is configured.
type nopSender struct{}

func (nopSender) Enqueue(Message) {}

// NewNopSender returns a Sender that discards every job.
func NewNopSender() Sender {
	return nopSender{}
}
