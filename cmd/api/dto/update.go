package dto

import "time"

// ScanRequestDTO 는 "지금 스캔" 요청 바디이다. 바디는 생략할 수 있다.
type ScanRequestDTO struct {
	UserContext string `json:"user_context" example:"non-EU student renewing a TIE"`
}

// UpdateDTO 는 관련 관보 항목 하나와 그 영향 분석이다.
type UpdateDTO struct {
	Source      string `json:"source" example:"BOE"`
	PublishedAt string `json:"published_at"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Link        string `json:"link"`
	Analysis    string `json:"analysis"`
	Backend     string `json:"backend,omitempty"`
	Urgent      bool   `json:"urgent"`
	ErrorKind   string `json:"error_kind,omitempty"`
}

// ScanResponseDTO 는 스캔 한 번의 결과이다. Updates 는 비어 있어도 null 이 아닌 빈 배열이다.
type ScanResponseDTO struct {
	ScannedAt time.Time   `json:"scanned_at"`
	Scanned   int         `json:"scanned"`
	Count     int         `json:"count"`
	Urgent    int         `json:"urgent"`
	Updates   []UpdateDTO `json:"updates"`
	Message   string      `json:"message,omitempty" example:"no updates found"`
	FeedError string      `json:"feed_error,omitempty"`
}

// ActionsRequestDTO 는 권장 조치 생성 요청이다.
type ActionsRequestDTO struct {
	Title    string `json:"title" binding:"required"`
	Analysis string `json:"analysis"`
}
