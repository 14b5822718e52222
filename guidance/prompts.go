package guidance

import (
	"fmt"
	"strings"
)

const GUIDE_INSTRUCTION = `
As a Spanish immigration expert, provide CURRENT guidance for: %s

User context: %s

Include:
1. Current requirements and documents
2. Step-by-step process
3. Processing times and costs
4. Common issues and solutions

Base on official Spanish government sources.
`

const ACTIONS_INSTRUCTION = `
Based on this legal update: %s
And this impact analysis: %s

Provide 3-5 specific actionable steps for people affected by this change.
Focus on practical, immediate actions they should take.
`

const PROCEDURE_IMPACT_INSTRUCTION = `
How does this legal change specifically affect %s?
Update: %s
Analysis: %s

Provide a bullet-point summary of specific impacts on applicants.
`

const PREDICTION_INSTRUCTION = `
Based on recent Spanish immigration trends and typical seasonal patterns,
predict what changes might occur in Spanish immigration procedures in the next 4-6 weeks.

Consider:
- Typical annual procedure updates
- Recent political developments
- EU directive implementations
- Seasonal application patterns

Provide 3-5 specific predictions with confidence levels.
State clearly that these are estimates and not official information.
`

func guidePrompt(procedure, userContext string) string {
	uc := strings.TrimSpace(userContext)
	if uc == "" {
		uc = "not provided"
	}
	return fmt.Sprintf(GUIDE_INSTRUCTION, strings.TrimSpace(procedure), uc)
}

func actionsPrompt(title, analysis string) string {
	return fmt.Sprintf(ACTIONS_INSTRUCTION, strings.TrimSpace(title), strings.TrimSpace(analysis))
}

func procedureImpactPrompt(procedure, title, analysis string) string {
	return fmt.Sprintf(PROCEDURE_IMPACT_INSTRUCTION, strings.TrimSpace(procedure), strings.TrimSpace(title), strings.TrimSpace(analysis))
}
