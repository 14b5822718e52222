package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid_request"`
}

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"no updates found"`
}

// HealthResponseDTO 는 서버 상태와 활성화된 분석 백엔드를 알려준다.
type HealthResponseDTO struct {
	Status   string   `json:"status" example:"ok"`
	Backends []string `json:"backends"`
}

// TextResponseDTO 는 생성된 텍스트 응답이다.
// 생성에 실패하면 Text 에 고정 안내 문구가, ErrorKind 에 실패 분류가 담긴다.
type TextResponseDTO struct {
	Text      string `json:"text"`
	Backend   string `json:"backend,omitempty" example:"openrouter"`
	ErrorKind string `json:"error_kind,omitempty" example:"service_failed"`
}
