package scanner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tramibot/config"
	"tramibot/models"
	"tramibot/relevance"
	"tramibot/summarizer"
)

type stubReader struct {
	entries []models.BulletinEntry
	err     error
	gotURL  string
}

func (r *stubReader) Fetch(_ context.Context, feedURL string) ([]models.BulletinEntry, error) {
	r.gotURL = feedURL
	return r.entries, r.err
}

type stubAssessor struct {
	text   string
	err    error
	titles []string
}

func (a *stubAssessor) Assess(_ context.Context, entry models.BulletinEntry, _ string) models.ImpactAssessment {
	a.titles = append(a.titles, entry.Title)
	if a.err != nil {
		return models.ImpactAssessment{Entry: entry, AnalysisText: summarizer.FallbackText, Err: a.err}
	}
	return models.ImpactAssessment{Entry: entry, AnalysisText: a.text, Backend: "stub"}
}

func entries(titles ...string) []models.BulletinEntry {
	out := make([]models.BulletinEntry, len(titles))
	for i, t := range titles {
		out[i] = models.BulletinEntry{Source: "BOE", Title: t, Link: fmt.Sprintf("https://www.boe.es/%d", i)}
	}
	return out
}

func TestScan_FiltersAndAssessesInOrder(t *testing.T) {
	reader := &stubReader{entries: entries(
		"Resolución sobre residencia de larga duración",
		"Presupuestos generales del Estado",
		"Orden de VISADO para estudiantes",
	)}
	assessor := &stubAssessor{text: "Moderate impact"}

	res := New(reader, relevance.New(nil), assessor, "https://feed").Scan(context.Background())

	assert.Equal(t, "https://feed", reader.gotURL)
	assert.NoError(t, res.FeedError)
	assert.Equal(t, 3, res.Scanned)
	require.Len(t, res.Assessments, 2)
	assert.Equal(t, []string{
		"Resolución sobre residencia de larga duración",
		"Orden de VISADO para estudiantes",
	}, assessor.titles)
	assert.False(t, res.ScannedAt.IsZero())
}

func TestScan_FeedFailureYieldsEmptyResult(t *testing.T) {
	reader := &stubReader{err: errors.New("status code 503")}
	assessor := &stubAssessor{text: "x"}

	res := New(reader, nil, assessor, "https://feed").Scan(context.Background())

	assert.EqualError(t, res.FeedError, "status code 503")
	assert.NotNil(t, res.Assessments)
	assert.Empty(t, res.Assessments)
	assert.Empty(t, assessor.titles)
}

func TestScan_NoRelevantEntries(t *testing.T) {
	reader := &stubReader{entries: entries("Real Decreto de costas", "")}
	res := New(reader, nil, &stubAssessor{}, "u").Scan(context.Background())

	assert.NoError(t, res.FeedError)
	assert.Equal(t, 2, res.Scanned)
	assert.NotNil(t, res.Assessments)
	assert.Empty(t, res.Assessments)
}

func TestScan_FallbackIsNeverUrgent(t *testing.T) {
	reader := &stubReader{entries: entries("Cambio urgente en extranjería")}
	res := New(reader, nil, &stubAssessor{err: summarizer.ErrNotConfigured}, "u").Scan(context.Background())

	require.Len(t, res.Assessments, 1)
	assert.Equal(t, summarizer.FallbackText, res.Assessments[0].AnalysisText)
	assert.False(t, res.Assessments[0].Urgent)
	assert.Equal(t, 0, res.Urgent())
}

func TestIsUrgent(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"IMMEDIATE action required for NIE holders", true},
		{"This is a Major Change to TIE renewals", true},
		{"Critical deadline", true},
		{"Minor editorial correction", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUrgent(models.ImpactAssessment{AnalysisText: tt.text}), tt.text)
	}
}

func TestDisplay(t *testing.T) {
	list := make([]models.ImpactAssessment, 15)
	assert.Len(t, Display(list, 0), DefaultDisplayLimit)
	assert.Len(t, Display(list, 3), 3)
	assert.Len(t, Display(list[:2], 10), 2)
}

// 피드와 LLM 모두 httptest 로 대체한 전체 경로 검증.
func TestScan_EndToEndNoUpdates(t *testing.T) {
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>BOE</title>` +
			`<item><title>Ley de pesca marítima</title><link>https://www.boe.es/a</link><description>Pesca</description></item>` +
			`</channel></rss>`))
	}))
	defer feedSrv.Close()

	cfg := config.Defaults()
	cfg.Feed.URL = feedSrv.URL
	s, sum, err := NewFromConfig(context.Background(), cfg, config.Secrets{})
	require.NoError(t, err)
	assert.Empty(t, sum.Backends())

	res := s.Scan(context.Background())
	assert.NoError(t, res.FeedError)
	assert.Equal(t, 1, res.Scanned)
	assert.Empty(t, res.Assessments)
}

func TestScan_EndToEndWithHuggingFace(t *testing.T) {
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>BOE</title>` +
			`<item><title>Orden sobre tarjetas TIE</title><link>https://www.boe.es/b</link><description>&lt;p&gt;Texto&lt;/p&gt;</description></item>` +
			`<item><title>Subvenciones agrarias</title><link>https://www.boe.es/c</link></item>` +
			`</channel></rss>`))
	}))
	defer feedSrv.Close()

	llmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/models/"))
		_, _ = w.Write([]byte(`[{"generated_text":"Immediate impact on TIE card processing"}]`))
	}))
	defer llmSrv.Close()

	cfg := config.Defaults()
	cfg.Feed.URL = feedSrv.URL
	cfg.Summarizer.HuggingFaceURL = llmSrv.URL + "/models"
	cfg.Summarizer.Timeout = 5 * time.Second

	s, _, err := NewFromConfig(context.Background(), cfg, config.Secrets{HuggingFaceToken: "hf"})
	require.NoError(t, err)

	res := s.Scan(context.Background())
	require.Len(t, res.Assessments, 1)
	a := res.Assessments[0]
	assert.Equal(t, "Orden sobre tarjetas TIE", a.Entry.Title)
	assert.Equal(t, "Texto", a.Entry.Summary)
	assert.Equal(t, "Immediate impact on TIE card processing", a.AnalysisText)
	assert.Equal(t, summarizer.BackendHuggingFace, a.Backend)
	assert.True(t, a.Urgent)
}
