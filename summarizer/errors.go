package summarizer

import (
	"errors"
	"fmt"
)

// ErrorKind 는 영향 분석 실패의 원인 분류이다.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindNotConfigured 는 사용할 수 있는 백엔드가 하나도 없는 경우이다.
	KindNotConfigured
	// KindServiceFailed 는 네트워크 실패, 타임아웃, 200 이 아닌 응답이다.
	KindServiceFailed
	// KindMalformedResponse 는 응답에 기대한 필드가 없거나 텍스트가 비어 있는 경우이다.
	KindMalformedResponse
	// KindQuotaExceeded 는 로컬 호출 한도를 소진한 경우이다.
	KindQuotaExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotConfigured:
		return "not_configured"
	case KindServiceFailed:
		return "service_failed"
	case KindMalformedResponse:
		return "malformed_response"
	case KindQuotaExceeded:
		return "quota_exceeded"
	default:
		return "unknown"
	}
}

// Error 는 백엔드 호출 실패를 분류와 함께 감싼다.
type Error struct {
	Kind    ErrorKind
	Backend string
	Err     error
}

func (e *Error) Error() string {
	msg := "summarizer: " + e.Kind.String()
	if e.Backend != "" {
		msg += " (" + e.Backend + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 는 같은 Kind 의 *Error 와 일치한다. errors.Is(err, ErrServiceFailed) 형태로 사용한다.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Backend == "" || t.Backend == e.Backend)
}

var (
	ErrNotConfigured      = &Error{Kind: KindNotConfigured}
	ErrServiceFailed      = &Error{Kind: KindServiceFailed}
	ErrMalformedResponse  = &Error{Kind: KindMalformedResponse}
	ErrQuotaExceeded      = &Error{Kind: KindQuotaExceeded}
	errEmptyGeneratedText = errors.New("generated text is empty")
)

// KindOf 는 err 체인에서 ErrorKind 를 꺼낸다. nil 이면 KindUnknown 이다.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func serviceFailed(backend string, format string, args ...any) *Error {
	return &Error{Kind: KindServiceFailed, Backend: backend, Err: fmt.Errorf(format, args...)}
}

func malformed(backend string, err error) *Error {
	return &Error{Kind: KindMalformedResponse, Backend: backend, Err: err}
}
