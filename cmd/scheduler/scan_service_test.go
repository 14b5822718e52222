package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tramibot/cmd/scheduler/services"
	"tramibot/eventbus"
	"tramibot/events"
	"tramibot/models"
	"tramibot/scanner"
)

type stubReader struct {
	entries []models.BulletinEntry
	err     error
}

func (r stubReader) Fetch(context.Context, string) ([]models.BulletinEntry, error) {
	return r.entries, r.err
}

type stubAssessor struct{}

func (stubAssessor) Assess(_ context.Context, e models.BulletinEntry, _ string) models.ImpactAssessment {
	return models.ImpactAssessment{Entry: e, AnalysisText: "Critical change for NIE", Backend: "stub"}
}

func TestRunOnce_PublishesScanCompleted(t *testing.T) {
	reader := stubReader{entries: []models.BulletinEntry{
		{Source: "BOE", Title: "Orden sobre el NIE"},
		{Source: "BOE", Title: "Ley de montes"},
	}}
	pub := &eventbus.NoopPublisher{}
	svc := NewScanService(scanner.New(reader, nil, stubAssessor{}, "u"), services.NewEventService(pub), 10)

	require.NoError(t, svc.RunOnce(context.Background()))

	published := pub.Events()
	require.Len(t, published, 1)
	assert.Equal(t, string(events.BulletinScanCompleted), published[0].Type)

	var evt events.BulletinScanCompletedEvent
	require.NoError(t, json.Unmarshal(published[0].Payload, &evt))
	assert.Equal(t, published[0].ID, evt.ID)
	assert.Equal(t, "scheduler", evt.Source)
	assert.Equal(t, 2, evt.Scanned)
	assert.Equal(t, 1, evt.Relevant)
	assert.Equal(t, 1, evt.Urgent)
	require.Len(t, evt.Assessments, 1)
	assert.Equal(t, "Orden sobre el NIE", evt.Assessments[0].Title)
}

func TestRunOnce_FeedErrorIsReportedAndPublished(t *testing.T) {
	pub := &eventbus.NoopPublisher{}
	svc := NewScanService(scanner.New(stubReader{err: errors.New("timeout")}, nil, stubAssessor{}, "u"), services.NewEventService(pub), 10)

	err := svc.RunOnce(context.Background())
	assert.ErrorContains(t, err, "bulletin feed unavailable: timeout")

	require.Len(t, pub.Events(), 1)
	var evt events.BulletinScanCompletedEvent
	require.NoError(t, json.Unmarshal(pub.Events()[0].Payload, &evt))
	assert.Equal(t, "timeout", evt.FeedError)
}

func TestRunOnce_PublishFailureDoesNotFailRun(t *testing.T) {
	pub := &eventbus.NoopPublisher{}
	pub.Close()
	svc := NewScanService(scanner.New(stubReader{}, nil, stubAssessor{}, "u"), services.NewEventService(pub), 10)

	assert.NoError(t, svc.RunOnce(context.Background()))
}
