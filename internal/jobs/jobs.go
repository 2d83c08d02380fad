package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MrJamesThe3rd/gigzen/internal/income"
)

// DefaultSchedule fires at the start of each Sydney week.
const DefaultSchedule = "CRON_TZ=Australia/Sydney 0 0 * * MON"

//go:generate mockgen -source=jobs.go -destination=jobs_mock.go -package=jobs

type IncomeArchiver interface {
	ArchiveActive(ctx context.Context) (income.ArchiveResult, error)
}

type ExpenseArchiver interface {
	ArchiveActive(ctx context.Context) (int64, error)
}

// ResetResult counts the rows archived by one weekly reset.
type ResetResult struct {
	Records  int64 `json:"records"`
	Entries  int64 `json:"entries"`
	Expenses int64 `json:"expenses"`
}

// WeeklyReset archives everything active so a new week starts empty.
// Archived rows stay in the database for history.
type WeeklyReset struct {
	incomes  IncomeArchiver
	expenses ExpenseArchiver
	timeout  time.Duration

	mu sync.Mutex
}

func NewWeeklyReset(incomes IncomeArchiver, expenses ExpenseArchiver) *WeeklyReset {
	return &WeeklyReset{incomes: incomes, expenses: expenses, timeout: time.Minute}
}

// RunNow performs the reset immediately. Concurrent calls are serialised.
func (w *WeeklyReset) RunNow(ctx context.Context) (*ResetResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inc, err := w.incomes.ArchiveActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("weekly reset: %w", err)
	}

	exp, err := w.expenses.ArchiveActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("weekly reset: %w", err)
	}

	res := &ResetResult{Records: inc.Records, Entries: inc.Entries, Expenses: exp}

	slog.Info("weekly reset finished", "records", res.Records, "entries", res.Entries, "expenses", res.Expenses)

	return res, nil
}

func (w *WeeklyReset) run() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if _, err := w.RunNow(ctx); err != nil {
		slog.Error("scheduled weekly reset failed", "error", err)
	}
}

type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// ScheduleWeeklyReset registers reset on spec. An empty spec uses DefaultSchedule.
func (s *Scheduler) ScheduleWeeklyReset(spec string, reset *WeeklyReset) error {
	if spec == "" {
		spec = DefaultSchedule
	}

	if _, err := s.cron.AddFunc(spec, reset.run); err != nil {
		return fmt.Errorf("schedule weekly reset %q: %w", spec, err)
	}

	slog.Info("weekly reset scheduled", "schedule", spec)

	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
