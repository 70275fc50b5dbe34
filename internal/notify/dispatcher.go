package notify

import (
	"context"
	"time"

	"github.com/shamsy/home-services-api/internal/logger"
	"github.com/shamsy/home-services-api/internal/models"
)

type Sender interface {
	Send(ctx context.Context, text string) error
}

// Dispatcher decouples notification delivery from the request transaction.
// Dispatch never blocks and delivery failures never reach the caller.
type Dispatcher struct {
	sender Sender
	tz     string
	queue  chan *models.ServiceRequest
}

func NewDispatcher(sender Sender, tz string) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		tz:     tz,
		queue:  make(chan *models.ServiceRequest, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for req := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := d.sender.Send(ctx, FormatServiceRequestMessage(req, d.tz))
		cancel()

		if err != nil {
			logger.GetLogger().
				WithError(err).
				WithField("service_request_id", req.ID).
				Warn("failed to send service request notification")
		}
	}
}

func (d *Dispatcher) Dispatch(req *models.ServiceRequest) {
	select {
	case d.queue <- req:
	default:
		// Queue full, drop rather than stall the API.
		logger.GetLogger().
			WithField("service_request_id", req.ID).
			Warn("notification queue full, dropping event")
	}
}
