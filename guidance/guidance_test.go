package guidance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tramibot/summarizer"
)

type recordingGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *recordingGenerator) Generate(_ context.Context, prompt string) (string, string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", "", g.err
	}
	return g.text, "fake", nil
}

func TestProcedureGuide(t *testing.T) {
	gen := &recordingGenerator{text: "1. Book an appointment"}
	svc := NewService(gen)
	fixed := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	g, err := svc.ProcedureGuide(context.Background(), "Student Visas", "non-EU student in Madrid")
	require.NoError(t, err)
	assert.Equal(t, "Student Visas", g.Procedure)
	assert.Equal(t, fixed, g.GeneratedAt)
	assert.Equal(t, "1. Book an appointment", g.Guidance.Text)
	assert.Equal(t, "fake", g.Guidance.Backend)
	assert.Equal(t, []string{"BOE", "Ministry of Inclusion"}, g.SourcesChecked)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "guidance for: Student Visas")
	assert.Contains(t, gen.prompts[0], "User context: non-EU student in Madrid")
}

func TestProcedureGuide_EmptyProcedure(t *testing.T) {
	_, err := NewService(&recordingGenerator{}).ProcedureGuide(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptyProcedure)
}

func TestFallbackOnGeneratorError(t *testing.T) {
	svc := NewService(&recordingGenerator{err: summarizer.ErrQuotaExceeded})

	actions := svc.RecommendedActions(context.Background(), "Orden TIE", "Affects renewals")
	assert.Equal(t, summarizer.FallbackText, actions.Text)
	assert.ErrorIs(t, actions.Err, summarizer.ErrQuotaExceeded)

	impact, err := svc.ProcedureImpact(context.Background(), "TIE Card Processing", "Orden TIE", "Affects renewals")
	require.NoError(t, err)
	assert.Equal(t, summarizer.FallbackText, impact.Text)

	pred := svc.Predictions(context.Background())
	assert.Equal(t, summarizer.FallbackText, pred.Text)
	assert.Empty(t, pred.Backend)
}

func TestNilGenerator(t *testing.T) {
	a := NewService(nil).Predictions(context.Background())
	assert.Equal(t, summarizer.FallbackText, a.Text)
	assert.Equal(t, summarizer.KindNotConfigured, summarizer.KindOf(a.Err))
}

func TestPrompts(t *testing.T) {
	gen := &recordingGenerator{text: "ok"}
	svc := NewService(gen)

	svc.RecommendedActions(context.Background(), " Orden TIE ", "Affects renewals")
	_, _ = svc.ProcedureImpact(context.Background(), "Work Permits", "Real Decreto", "New quota")
	svc.Predictions(context.Background())

	require.Len(t, gen.prompts, 3)
	assert.Contains(t, gen.prompts[0], "Based on this legal update: Orden TIE\n")
	assert.Contains(t, gen.prompts[0], "3-5 specific actionable steps")
	assert.Contains(t, gen.prompts[1], "specifically affect Work Permits?")
	assert.Contains(t, gen.prompts[2], "next 4-6 weeks")
}

func TestProcedures_ReturnsCopy(t *testing.T) {
	svc := NewService(nil)
	list := svc.Procedures()
	require.Len(t, list, 8)
	list[0] = "changed"
	assert.Equal(t, "NIE Applications", svc.Procedures()[0])
}
