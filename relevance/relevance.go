// Package relevance decides whether a bulletin entry concerns immigration procedures.
package relevance

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"tramibot/models"
)

// DefaultKeywords 는 이민 절차 관련 여부를 판단하는 기본 어휘이다.
// 짧은 약어(nie, tie)도 부분 문자열로 비교하므로 "tiene" 같은 단어에도 걸린다.
var DefaultKeywords = []string{"extranjería", "inmigración", "residencia", "nie", "tie", "visado"}

// Filter 는 고정 어휘에 대한 대소문자 무시 부분 문자열 검사이다.
// 상태가 없으므로 여러 고루틴에서 동시에 사용해도 된다.
type Filter struct {
	keywords     []string
	folded       []string
	matchSummary bool
}

type Option func(*Filter)

// WithSummary 는 제목 외에 요약문도 검사하도록 한다.
func WithSummary() Option {
	return func(f *Filter) { f.matchSummary = true }
}

// New 는 keywords 로 Filter 를 만든다. 비어 있으면 DefaultKeywords 를 사용한다.
// 공백 키워드와 중복은 제거된다.
func New(keywords []string, opts ...Option) *Filter {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	f := &Filter{}
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		key := fold(kw)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		f.keywords = append(f.keywords, kw)
		f.folded = append(f.folded, key)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) Keywords() []string {
	out := make([]string, len(f.keywords))
	copy(out, f.keywords)
	return out
}

// Match 는 항목의 제목(옵션에 따라 요약문 포함)에 어휘가 하나라도 들어 있으면 true 이다.
// 제목이 비어 있는 항목은 조용히 걸러진다.
func (f *Filter) Match(entry models.BulletinEntry) bool {
	if f.MatchText(entry.Title) {
		return true
	}
	return f.matchSummary && f.MatchText(entry.Summary)
}

func (f *Filter) MatchText(text string) bool {
	if text == "" {
		return false
	}
	folded := fold(text)
	for _, kw := range f.folded {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// MatchedKeywords 는 text 에 포함된 어휘를 설정 순서대로 반환한다.
func (f *Filter) MatchedKeywords(text string) []string {
	if text == "" {
		return nil
	}
	folded := fold(text)
	var found []string
	for i, kw := range f.folded {
		if strings.Contains(folded, kw) {
			found = append(found, f.keywords[i])
		}
	}
	return found
}

// fold 는 NFC 로 합성한 뒤 case folding 한다.
// 분해형 악센트(i + U+0301)도 "í" 와 같게 비교된다.
// cases.Caser 는 상태를 가질 수 있어 호출마다 새로 만든다.
func fold(s string) string {
	return norm.NFC.String(cases.Fold().String(norm.NFC.String(s)))
}
