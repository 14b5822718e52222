package scanner

import (
	"context"

	"tramibot/config"
	"tramibot/feeder"
	"tramibot/relevance"
	"tramibot/summarizer"
)

// NewFromConfig 는 설정과 자격 증명으로 전체 파이프라인을 조립한다.
// API 와 스케줄러가 같은 조립 경로를 쓰도록 하기 위한 것이며, summarizer 도 함께 반환한다.
func NewFromConfig(ctx context.Context, cfg config.AppConfig, secrets config.Secrets) (*Scanner, *summarizer.Summarizer, error) {
	reader := feeder.NewReader(feeder.ReaderConfig{
		Source:          cfg.Feed.Source,
		Limit:           cfg.Feed.Limit,
		Timeout:         cfg.Feed.Timeout,
		SummaryMaxRunes: cfg.Feed.SummaryMaxRunes,
	}, nil)

	var filterOpts []relevance.Option
	if cfg.Relevance.MatchSummary {
		filterOpts = append(filterOpts, relevance.WithSummary())
	}
	filter := relevance.New(cfg.Relevance.Keywords, filterOpts...)

	sum, err := summarizer.FromConfig(ctx, cfg.Summarizer, secrets)
	if err != nil {
		return nil, nil, err
	}

	return New(reader, filter, sum, cfg.Feed.URL), sum, nil
}
