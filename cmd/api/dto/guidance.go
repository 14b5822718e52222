package dto

import "time"

type ProceduresResponseDTO struct {
	Procedures []string `json:"procedures"`
}

type GuideRequestDTO struct {
	Procedure   string `json:"procedure" binding:"required" example:"Student Visas"`
	UserContext string `json:"user_context"`
}

type GuideResponseDTO struct {
	Procedure      string    `json:"procedure"`
	GeneratedAt    time.Time `json:"generated_at"`
	Guidance       string    `json:"guidance"`
	SourcesChecked []string  `json:"sources_checked"`
	Backend        string    `json:"backend,omitempty"`
	ErrorKind      string    `json:"error_kind,omitempty"`
}

type ProcedureImpactRequestDTO struct {
	Procedure string `json:"procedure" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Analysis  string `json:"analysis"`
}

// PredictionsResponseDTO 는 향후 4~6주 예측이다. 공식 정보가 아니다.
type PredictionsResponseDTO struct {
	TextResponseDTO
	Disclaimer string `json:"disclaimer"`
}
