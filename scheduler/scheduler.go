// Package scheduler 는 관보 스캔을 주기적으로 실행하는 트리거이다.
package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"tramibot/config"
)

// Job 은 트리거가 호출하는 작업이다. 에러와 패닉은 로그로만 남고 다음 실행을 막지 않는다.
type Job func(ctx context.Context) error

// NextFunc 는 now 이후의 다음 실행 시각을 계산한다.
type NextFunc func(now time.Time) time.Time

// fallbackWait 는 다음 실행 시각이 과거로 계산되었을 때의 대기 시간이다.
const fallbackWait = time.Minute

// Daily 는 매일 loc 기준 hour:minute 에 실행되는 NextFunc 이다.
func Daily(hour, minute int, loc *time.Location) NextFunc {
	if loc == nil {
		loc = time.Local
	}
	return func(now time.Time) time.Time {
		now = now.In(loc)
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)
		if !next.After(now) {
			next = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, loc)
		}
		return next
	}
}

// Every 는 고정 간격 NextFunc 이다.
func Every(d time.Duration) NextFunc {
	return func(now time.Time) time.Time {
		return now.Add(d)
	}
}

// ParseDailyAt 는 "HH:MM" 을 시, 분으로 나눈다.
func ParseDailyAt(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid daily_at %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid daily_at %q: hour out of range", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid daily_at %q: minute out of range", s)
	}
	return hour, minute, nil
}

// FromConfig 는 scheduler 설정으로 Daily NextFunc 를 만든다.
func FromConfig(cfg config.SchedulerConfig) (NextFunc, error) {
	hour, minute, err := ParseDailyAt(cfg.DailyAt)
	if err != nil {
		return nil, err
	}
	loc := time.Local
	if cfg.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("failed to load timezone %s: %w", cfg.Timezone, err)
		}
	}
	return Daily(hour, minute, loc), nil
}

type Option func(*Trigger)

// WithRunOnStart 는 Run 시작 직후 한 번 즉시 실행한다.
func WithRunOnStart(enabled bool) Option {
	return func(t *Trigger) { t.runOnStart = enabled }
}

func WithName(name string) Option {
	return func(t *Trigger) { t.name = name }
}

// Trigger 는 job 을 동기적으로 호출하므로 실행이 겹치지 않는다.
type Trigger struct {
	job        Job
	next       NextFunc
	name       string
	runOnStart bool
	now        func() time.Time
}

func New(job Job, next NextFunc, opts ...Option) *Trigger {
	t := &Trigger{
		job:  job,
		next: next,
		name: "scheduler",
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run 은 ctx 가 취소될 때까지 블록하며 due 시각마다 job 을 실행한다. 항상 ctx.Err() 를 반환한다.
func (t *Trigger) Run(ctx context.Context) error {
	if t.runOnStart {
		t.invoke(ctx)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := t.now()
		due := t.next(now)
		wait := due.Sub(now)
		if wait <= 0 {
			wait = fallbackWait
		}
		config.Logger.Infof("%s sleeping until %s (%s)", t.name, due.Format(time.RFC3339), wait.Round(time.Second))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		t.invoke(ctx)
	}
}

// invoke 는 job 을 한 번 실행한다. 에러와 패닉을 삼킨다.
func (t *Trigger) invoke(ctx context.Context) {
	start := t.now()
	defer func() {
		if r := recover(); r != nil {
			config.ErrorWithFields(t.name+" run panicked", config.Fields{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			})
		}
	}()

	if err := t.job(ctx); err != nil {
		config.Logger.Errorf("%s run error: %v", t.name, err)
		return
	}
	config.Logger.Infof("%s run completed in %s", t.name, time.Since(start))
}
