package notify

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Dispatcher hands emails to a background goroutine so the caller never
// waits on SMTP. Errors are captured in the log only.
type Dispatcher struct {
	sender Sender
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher around the given sender.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// Dispatch sends one email without blocking the caller.
func (d *Dispatcher) Dispatch(to, subject, htmlBody string) {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		if err := d.sender.Send(to, subject, htmlBody); err != nil {
			log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("email send error")
			return
		}

		log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	}()
}

// Wait blocks until all dispatched emails finished. Used during shutdown
// and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
