package reminder

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/domain/appointment"
)

// Sweeper periodically walks the upcoming appointments and flags due email
// reminders as sent. It authenticates with a service token from the token
// provider; an empty token disables the sweep entirely.
type Sweeper struct {
	api        *backend.Client
	dispatcher *Dispatcher
	token      func() string
	loc        *time.Location
}

func NewSweeper(api *backend.Client, dispatcher *Dispatcher, token func() string, loc *time.Location) *Sweeper {
	return &Sweeper{
		api:        api,
		dispatcher: dispatcher,
		token:      token,
		loc:        loc,
	}
}

// Start schedules the sweep with the given cron spec and returns the
// running scheduler, or nil when the sweep is disabled.
func (s *Sweeper) Start(spec string) *cron.Cron {
	if s.token() == "" {
		log.Println("reminder: no service token configured, sweep disabled")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, s.Run); err != nil {
		log.Printf("reminder: invalid cron spec %q: %v", spec, err)
		return nil
	}
	c.Start()
	return c
}

// Run executes one sweep. Failures are logged and the next run tries again;
// nothing here is fatal to the process.
func (s *Sweeper) Run() {
	tok := s.token()
	if tok == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dtos, err := s.api.UpcomingAppointments(ctx, tok)
	if err != nil {
		log.Println("reminder: upcoming fetch failed:", err)
		return
	}

	now := time.Now().In(s.loc)
	due := 0
	for _, a := range appointment.FromBackendList(dtos, s.loc) {
		if !a.EmailReminder || a.ReminderSent || a.ReminderAt == nil {
			continue
		}
		if a.ReminderAt.After(now) {
			continue
		}
		s.dispatcher.Dispatch(Job{AppointmentID: a.ID, Token: tok})
		due++
	}

	if due > 0 {
		log.Printf("reminder: dispatched %d due reminder(s)", due)
	}
}
