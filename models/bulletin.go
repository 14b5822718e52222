package models

import "time"

// BulletinEntry 는 공식 관보 피드의 항목 하나이다.
// 스캔마다 새로 만들어지며 저장되지 않는다.
type BulletinEntry struct {
	Source string `json:"source"`
	// PublishedAt 은 피드가 제공한 원문 그대로의 게시일 문자열이다.
	PublishedAt     string     `json:"published_at"`
	PublishedParsed *time.Time `json:"published_parsed,omitempty"`
	Title           string     `json:"title"`
	Summary         string     `json:"summary"`
	Link            string     `json:"link"`
}

// Text 는 영향 분석 요청에 사용할 제목 + 요약 문자열이다.
func (e BulletinEntry) Text() string {
	if e.Summary == "" {
		return e.Title
	}
	if e.Title == "" {
		return e.Summary
	}
	return e.Title + " " + e.Summary
}

// ImpactAssessment 는 관련 항목 하나에 대한 영향 분석 결과이다.
// AnalysisText 는 항상 비어 있지 않다. 분석에 실패하면 고정 안내 문구가 들어가고 Err 에 원인이 남는다.
type ImpactAssessment struct {
	Entry        BulletinEntry
	AnalysisText string
	Backend      string
	Urgent       bool
	Err          error
}

// Failed 는 분석이 대체 문구로 채워졌는지 여부를 반환한다.
func (a ImpactAssessment) Failed() bool {
	return a.Err != nil
}
