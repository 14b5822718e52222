package scanner

import (
	"context"
	"strings"
	"time"

	"tramibot/config"
	"tramibot/models"
	"tramibot/relevance"
)

// DefaultDisplayLimit 는 화면/응답에 노출할 최대 분석 결과 수이다.
const DefaultDisplayLimit = 10

// urgentTerms 가 분석 텍스트에 포함되면 긴급 항목으로 표시한다.
var urgentTerms = []string{"urgent", "immediate", "critical", "major change"}

// FeedReader 는 관보 피드를 읽는다. feeder.Reader 가 구현한다.
type FeedReader interface {
	Fetch(ctx context.Context, feedURL string) ([]models.BulletinEntry, error)
}

// Assessor 는 항목 하나의 영향 분석을 만든다. summarizer.Summarizer 가 구현하며 실패하지 않는다.
type Assessor interface {
	Assess(ctx context.Context, entry models.BulletinEntry, userContext string) models.ImpactAssessment
}

// Result 는 스캔 한 번의 결과이다.
type Result struct {
	Assessments []models.ImpactAssessment
	ScannedAt   time.Time
	// Scanned 는 피드에서 읽은 항목 수이다(필터 이전).
	Scanned int
	// FeedError 는 피드 조회 실패 원인이다. 이 경우 Assessments 는 비어 있다.
	FeedError error
}

// Urgent 는 긴급 항목 수를 반환한다.
func (r Result) Urgent() int {
	n := 0
	for _, a := range r.Assessments {
		if a.Urgent {
			n++
		}
	}
	return n
}

// Scanner 는 피드 조회 → 키워드 필터 → 영향 분석을 순차로 수행한다.
type Scanner struct {
	reader   FeedReader
	filter   *relevance.Filter
	assessor Assessor
	feedURL  string
	now      func() time.Time
}

func New(reader FeedReader, filter *relevance.Filter, assessor Assessor, feedURL string) *Scanner {
	if filter == nil {
		filter = relevance.New(nil)
	}
	return &Scanner{
		reader:   reader,
		filter:   filter,
		assessor: assessor,
		feedURL:  feedURL,
		now:      time.Now,
	}
}

// Scan 은 파이프라인을 한 번 실행한다. 에러를 반환하지 않는다.
// 피드 조회 실패는 빈 결과와 FeedError 로, 분석 실패는 각 항목의 대체 문구로 표현된다.
func (s *Scanner) Scan(ctx context.Context) Result {
	return s.ScanWithContext(ctx, "")
}

// ScanWithContext 는 사용자 상황을 분석 요청에 포함해 스캔한다.
func (s *Scanner) ScanWithContext(ctx context.Context, userContext string) Result {
	res := Result{
		Assessments: []models.ImpactAssessment{},
		ScannedAt:   s.now(),
	}

	entries, err := s.reader.Fetch(ctx, s.feedURL)
	if err != nil {
		config.ErrorWithFields("bulletin feed fetch failed", config.Fields{
			"feed_url": s.feedURL,
			"error":    err.Error(),
		})
		res.FeedError = err
		return res
	}
	res.Scanned = len(entries)

	for _, entry := range entries {
		if ctx.Err() != nil {
			config.Logger.Warnf("scan interrupted after %d assessments: %v", len(res.Assessments), ctx.Err())
			break
		}
		if !s.filter.Match(entry) {
			continue
		}

		config.DebugWithFields("relevant bulletin entry", config.Fields{
			"title":    entry.Title,
			"keywords": s.filter.MatchedKeywords(entry.Title),
		})

		a := s.assessor.Assess(ctx, entry, userContext)
		a.Urgent = IsUrgent(a)
		if a.Err != nil {
			config.Logger.Warnf("impact analysis fell back for %q: %v", entry.Title, a.Err)
		}
		res.Assessments = append(res.Assessments, a)
	}

	config.InfoWithFields("bulletin scan completed", config.Fields{
		"scanned":  res.Scanned,
		"relevant": len(res.Assessments),
		"urgent":   res.Urgent(),
	})
	return res
}

// IsUrgent 는 분석 텍스트에 긴급 표현이 있는지 검사한다. 대체 문구는 긴급으로 보지 않는다.
func IsUrgent(a models.ImpactAssessment) bool {
	if a.Err != nil {
		return false
	}
	text := strings.ToLower(a.AnalysisText)
	for _, term := range urgentTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// Display 는 최대 limit 개의 분석 결과를 반환한다. limit 이 0 이하면 DefaultDisplayLimit 을 쓴다.
func Display(assessments []models.ImpactAssessment, limit int) []models.ImpactAssessment {
	if limit <= 0 {
		limit = DefaultDisplayLimit
	}
	if len(assessments) <= limit {
		return assessments
	}
	return assessments[:limit]
}
