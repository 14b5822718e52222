package quota

import (
	"context"
	"sync"
	"time"

	"tramibot/config"
)

// SummaryQuotaLimiter 는 영향 분석용 LLM 호출에 대한 분당/일일 한도를 관리한다.
// 인메모리로 동작하므로 프로세스가 재시작되면 카운터가 초기화된다.
// nil 또는 한도가 모두 0 인 limiter 는 항상 호출을 허용한다.
type SummaryQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewSummaryQuotaLimiter 는 summary_quota 설정으로 limiter 를 만든다.
// 설정 값이 0 이하인 경우에는 해당 방향의 제한을 두지 않는다.
func NewSummaryQuotaLimiter(q config.SummaryQuotaConfig) *SummaryQuotaLimiter {
	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	requestsPerMinute := q.RequestsPerMinute
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &SummaryQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

// Unlimited 는 한도가 설정되지 않았는지 여부이다.
func (l *SummaryQuotaLimiter) Unlimited() bool {
	return l == nil || (l.dailyLimit <= 0 && l.interval <= 0)
}

// Remaining 은 오늘 남은 호출 수를 반환한다. 일일 한도가 없으면 -1 이다.
func (l *SummaryQuotaLimiter) Remaining() int {
	if l == nil || l.dailyLimit <= 0 {
		return -1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rollDay(l.now().UTC())
	return l.dailyLimit - l.usedToday
}

// WaitAndReserve 는 LLM 호출 전에 분당/일일 한도를 적용한다.
// - 일일 한도를 초과한 경우: (false, nil) 을 반환하고 호출자는 LLM 호출을 건너뛴다.
// - 컨텍스트 취소 시: (false, ctx.Err()) 를 반환한다.
func (l *SummaryQuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	if l.Unlimited() {
		return true, nil
	}

	for {
		l.mu.Lock()

		now := l.now().UTC()
		l.rollDay(now)

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		// 락을 풀고 대기한 뒤 상태를 다시 평가한다.
		l.mu.Unlock()
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		}
	}
}

func (l *SummaryQuotaLimiter) rollDay(now time.Time) {
	todayKey := now.Format("2006-01-02")
	if l.dayKey != todayKey {
		l.dayKey = todayKey
		l.usedToday = 0
	}
}
