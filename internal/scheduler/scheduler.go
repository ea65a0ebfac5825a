package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-co-op/gocron"

	drepo "MarketBell/internal/domain/repository"
	"MarketBell/pkg/logger"
)

// Trigger describes one wall-clock firing rule. The clock is read in Zone,
// so a trigger follows its market through DST shifts.
type Trigger struct {
	Name     string // job name used in logs and metrics
	Zone     string // IANA zone name
	Hours    []int
	Minute   int
	Weekdays bool // restrict to Monday through Friday
}

// CronExpr compiles the trigger to a five field cron expression.
func (t Trigger) CronExpr() string {
	hours := make([]string, len(t.Hours))
	for i, h := range t.Hours {
		hours[i] = strconv.Itoa(h)
	}
	dow := "*"
	if t.Weekdays {
		dow = "1-5"
	}
	return fmt.Sprintf("%d %s * * %s", t.Minute, strings.Join(hours, ","), dow)
}

// Scheduler fires registered jobs on their triggers. One gocron scheduler
// runs per distinct zone; cron semantics give at most one firing per job
// per matching minute. A failing or panicking job is recorded and the
// schedule keeps running.
type Scheduler struct {
	metrics drepo.Metrics
	logger  *logger.Logger
	byZone  map[string]*gocron.Scheduler
	ctx     context.Context
}

// New creates an empty scheduler.
func New(metrics drepo.Metrics, log *logger.Logger) *Scheduler {
	return &Scheduler{
		metrics: metrics,
		logger:  log,
		byZone:  make(map[string]*gocron.Scheduler),
		ctx:     context.Background(),
	}
}

// Register adds fn under the trigger.
func (s *Scheduler) Register(trig Trigger, fn func(context.Context) error) error {
	sched, ok := s.byZone[trig.Zone]
	if !ok {
		loc, err := time.LoadLocation(trig.Zone)
		if err != nil {
			return fmt.Errorf("trigger %s: %w", trig.Name, err)
		}
		sched = gocron.NewScheduler(loc)
		s.byZone[trig.Zone] = sched
	}

	name := trig.Name
	_, err := sched.Cron(trig.CronExpr()).Tag(name).Do(func() {
		s.run(name, fn)
	})
	if err != nil {
		return fmt.Errorf("trigger %s: %w", trig.Name, err)
	}
	return nil
}

func (s *Scheduler) run(name string, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.RecordError("job_panic")
			s.metrics.RecordJobRun(name, "panic")
			s.logger.Error("job panicked",
				logger.String("job", name),
				logger.Any("panic", r),
			)
		}
	}()

	start := time.Now()
	if err := fn(s.ctx); err != nil {
		s.metrics.RecordJobRun(name, "error")
		s.logger.Error("job failed",
			logger.String("job", name),
			logger.Error(err),
		)
		return
	}
	s.metrics.RecordJobRun(name, "ok")
	s.logger.Info("job completed",
		logger.String("job", name),
		logger.Duration("duration_ms", time.Since(start)),
	)
}

// Start launches every zone scheduler without blocking. Jobs run with ctx,
// so an app shutdown cancels in-flight provider calls.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	for zone, sched := range s.byZone {
		sched.StartAsync()
		s.logger.Info("scheduler started",
			logger.String("zone", zone),
			logger.Int("jobs", sched.Len()),
		)
	}
}

// Stop halts all zone schedulers and waits for running jobs to return.
func (s *Scheduler) Stop() {
	for _, sched := range s.byZone {
		sched.Stop()
	}
	s.logger.Info("scheduler stopped")
}

// Zones returns the number of distinct zone schedulers.
func (s *Scheduler) Zones() int { return len(s.byZone) }

// Len returns the total number of registered jobs.
func (s *Scheduler) Len() int {
	n := 0
	for _, sched := range s.byZone {
		n += sched.Len()
	}
	return n
}
