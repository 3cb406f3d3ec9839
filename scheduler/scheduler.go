// ABOUTME: Recurring timer that invokes the check cycle on the configured interval
// ABOUTME: Re-reads the interval after every cycle so settings changes take effect

package scheduler

import (
	"context"
	"time"

	"mangawatch/core/domain"
	"mangawatch/core/interfaces"
	"mangawatch/core/tracker"
)

// Service is the slice of the tracker the scheduler needs
type Service interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	RunCheckCycle(ctx context.Context) (tracker.CycleStats, error)
}

// Scheduler fires the check cycle on a recurring timer
type Scheduler struct {
	service Service
	logger  interfaces.Logger
	stop    chan struct{}
	done    chan struct{}
}

// New creates a stopped scheduler
func New(service Service, logger interfaces.Logger) *Scheduler {
	return &Scheduler{
		service: service,
		logger:  logger,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the timer loop in its own goroutine
func (s *Scheduler) Start() {
	go s.loop()
}

// Stop halts the timer loop and waits for it to exit. A cycle already
// running is allowed to finish.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)

	for {
		timer := time.NewTimer(s.interval())

		select {
		case <-timer.C:
			if _, err := s.service.RunCheckCycle(context.Background()); err != nil {
				s.logger.Error("scheduled check cycle failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

// interval reads the configured check interval, falling back to the
// default when settings are unreadable
func (s *Scheduler) interval() time.Duration {
	settings, err := s.service.GetSettings(context.Background())
	if err != nil {
		s.logger.Warn("settings unreadable, using default interval", map[string]interface{}{
			"error": err.Error(),
		})
		settings = domain.DefaultSettings()
	}
	return time.Duration(settings.CheckIntervalMinutes) * time.Minute
}
