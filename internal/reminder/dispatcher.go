package reminder

import (
	"context"
	"log"

	"github.com/rantevou-app/gateway/internal/backend"
)

// Job marks one appointment's reminder as sent upstream.
type Job struct {
	AppointmentID uint
	Token         string
}

// Dispatcher decouples the sweep from the upstream calls: jobs go through a
// buffered channel to a single worker, and a full queue drops the job
// instead of blocking (a missed mark is retried on the next sweep).
type Dispatcher struct {
	api   *backend.Client
	queue chan Job
}

func NewDispatcher(api *backend.Client) *Dispatcher {
	d := &Dispatcher{
		api:   api,
		queue: make(chan Job, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for job := range d.queue {
		if err := d.api.MarkReminderSent(context.Background(), job.Token, job.AppointmentID); err != nil {
			log.Println("reminder: mark sent failed:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(job Job) {
	select {
	case d.queue <- job:
	default:
		log.Println("reminder: queue full, dropping job")
	}
}
