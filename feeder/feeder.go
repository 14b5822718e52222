package feeder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"tramibot/httpclient"
	"tramibot/models"
)

const (
	FEEDER_TIMEOUT          = 10 * time.Second
	DefaultLimit            = 15
	DefaultSummaryMaxRunes  = 300
	maxFeedBodyBytes        = 10 << 20
	defaultBulletinSourceID = "BOE"
)

// rssUserAgent 는 피드를 요청할 때 사용할 브라우저 유사 User-Agent 이다.
// 일부 관공서 사이트는 기본 Go HTTP 클라이언트 UA를 차단한다.
const rssUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

type ReaderConfig struct {
	// Source 는 항목에 기록할 출처 이름이다. (예: "BOE")
	Source string
	// Limit 는 반환할 최대 항목 수이다. 0 이하면 DefaultLimit 를 사용한다.
	Limit           int
	Timeout         time.Duration
	SummaryMaxRunes int
}

// Reader 는 관보 피드를 한 번에 한 번씩 조회해 BulletinEntry 목록으로 바꾼다.
// 재시도는 하지 않는다.
type Reader struct {
	client          *http.Client
	source          string
	limit           int
	summaryMaxRunes int
}

// NewReader 는 Reader 를 생성한다. client 가 nil 이면 로깅/트레이싱이 포함된 기본 클라이언트를 만든다.
func NewReader(cfg ReaderConfig, client *http.Client) *Reader {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = FEEDER_TIMEOUT
	}
	if cfg.SummaryMaxRunes <= 0 {
		cfg.SummaryMaxRunes = DefaultSummaryMaxRunes
	}
	if cfg.Source == "" {
		cfg.Source = defaultBulletinSourceID
	}
	if client == nil {
		client = httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	}

	return &Reader{
		client:          client,
		source:          cfg.Source,
		limit:           cfg.Limit,
		summaryMaxRunes: cfg.SummaryMaxRunes,
	}
}

func (r *Reader) Limit() int {
	return r.limit
}

// Fetch 는 feedURL 의 피드를 가져와 피드 순서(최신순)를 유지한 채 최대 limit 개의 항목을 반환한다.
// 네트워크/상태 코드/파싱 실패는 모두 에러로 반환하며, 빈 목록으로 대체하는 것은 호출자의 몫이다.
func (r *Reader) Fetch(ctx context.Context, feedURL string) ([]models.BulletinEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("User-Agent", rssUserAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9,en;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodySample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return nil, fmt.Errorf("failed to fetch feed: status code %d, url: %s, body: %s", resp.StatusCode, feedURL, string(bodySample))
	}

	cleanedReader, err := cleanControlCharacters(io.LimitReader(resp.Body, maxFeedBodyBytes))
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(cleanedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := feed.Items
	if len(items) > r.limit {
		items = items[:r.limit]
	}

	entries := make([]models.BulletinEntry, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		entries = append(entries, r.toEntry(item))
	}
	return entries, nil
}

func (r *Reader) toEntry(item *gofeed.Item) models.BulletinEntry {
	published := item.Published
	parsed := item.PublishedParsed
	if published == "" {
		published = item.Updated
	}
	if parsed == nil {
		parsed = item.UpdatedParsed
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	return models.BulletinEntry{
		Source:          r.source,
		PublishedAt:     published,
		PublishedParsed: parsed,
		Title:           strings.TrimSpace(item.Title),
		Summary:         truncate(plainText(summary), r.summaryMaxRunes),
		Link:            strings.TrimSpace(item.Link),
	}
}

// XML에서 허용되지 않는 제어 문자 범위 (0x00-0x1F 중 탭, LF, CR 제외).
var invalidControlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

func cleanControlCharacters(r io.Reader) (io.Reader, error) {
	bodyBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body for cleaning: %w", err)
	}

	cleanedBytes := invalidControlCharRegex.ReplaceAll(bodyBytes, []byte(""))

	return bytes.NewReader(cleanedBytes), nil
}

// plainText 는 요약문에 섞인 HTML 태그를 제거하고 공백을 하나로 정리한다.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(z.Text())
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
