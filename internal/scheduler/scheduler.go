package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/relocateiq/country-analyzer/internal/analysis"
)

// Scheduler periodically warms the cache for configured countries.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *analysis.Service
	countries []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(countries []string, interval time.Duration, service *analysis.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		countries: countries,
		interval:  interval,
	}
}

// Start schedules the periodic warming job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.countries) == 0 {
		log.Println("scheduler: no warm countries configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: warming country cache")

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		s.service.Warm(ctx, s.countries)
		log.Println("scheduler: completed cache warm")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
