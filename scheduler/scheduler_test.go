package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"tramibot/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDaily(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	next := Daily(9, 0, madrid)

	before := time.Date(2025, 10, 13, 8, 30, 0, 0, madrid)
	assert.Equal(t, time.Date(2025, 10, 13, 9, 0, 0, 0, madrid), next(before))

	exactly := time.Date(2025, 10, 13, 9, 0, 0, 0, madrid)
	assert.Equal(t, time.Date(2025, 10, 14, 9, 0, 0, 0, madrid), next(exactly))

	after := time.Date(2025, 12, 31, 23, 0, 0, 0, madrid)
	assert.Equal(t, time.Date(2026, 1, 1, 9, 0, 0, 0, madrid), next(after))

	// UTC 로 주어져도 Madrid 기준으로 계산한다.
	utc := time.Date(2025, 10, 13, 6, 0, 0, 0, time.UTC) // 08:00 CEST
	assert.True(t, next(utc).Equal(time.Date(2025, 10, 13, 9, 0, 0, 0, madrid)))
}

func TestParseDailyAt(t *testing.T) {
	h, m, err := ParseDailyAt("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	for _, bad := range []string{"", "9", "24:00", "10:60", "aa:bb", "1:2:3"} {
		_, _, err := ParseDailyAt(bad)
		assert.Error(t, err, bad)
	}
}

func TestFromConfig(t *testing.T) {
	next, err := FromConfig(config.SchedulerConfig{DailyAt: "09:00", Timezone: "Europe/Madrid"})
	require.NoError(t, err)
	assert.NotNil(t, next)

	_, err = FromConfig(config.SchedulerConfig{DailyAt: "09:00", Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}

// 실패하거나 패닉한 실행 이후에도 다음 실행이 이루어져야 한다.
func TestRun_FailuresDoNotStopLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan struct{})
	job := func(ctx context.Context) error {
		switch runs.Add(1) {
		case 1:
			return errors.New("feed unavailable")
		case 2:
			panic("boom")
		case 3:
			close(done)
		}
		return nil
	}

	trigger := New(job, Every(5*time.Millisecond), WithName("test"))
	errCh := make(chan error, 1)
	go func() { errCh <- trigger.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("third run did not happen")
	}
	cancel()

	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestRun_RunOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var runs atomic.Int32
	job := func(ctx context.Context) error {
		runs.Add(1)
		cancel()
		return nil
	}

	err := New(job, Every(time.Hour), WithRunOnStart(true)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 1, runs.Load())
}

func TestRun_CancelWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := New(func(context.Context) error { called = true; return nil }, Every(time.Hour)).Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
}

func TestRun_PastDueUsesFallbackWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var runs atomic.Int32
	past := func(now time.Time) time.Time { return now.Add(-time.Hour) }
	err := New(func(context.Context) error { runs.Add(1); return nil }, past).Run(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.EqualValues(t, 0, runs.Load())
}
