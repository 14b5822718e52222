package summarizer

import (
	"fmt"
	"strings"
)

const IMPACT_INSTRUCTION = `
Analyze this Spanish legal update for immigration impact:
%s

Provide brief analysis of:
- Which procedures are affected
- Key changes
- Urgency level
`

// ImpactPrompt 는 관보 텍스트(제목 + 요약)와 선택적인 사용자 상황으로 분석 요청문을 만든다.
func ImpactPrompt(bulletinText, userContext string) string {
	prompt := fmt.Sprintf(IMPACT_INSTRUCTION, strings.TrimSpace(bulletinText))
	if uc := strings.TrimSpace(userContext); uc != "" {
		prompt += "\nUser context: " + uc + "\nFocus the analysis on this situation.\n"
	}
	return prompt
}
