package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// MetricSource supplies metric snapshots per campaign. The engine never
// computes metrics itself; ingestion is owned elsewhere.
type MetricSource interface {
	// LatestSnapshot returns the newest snapshot for the campaign, or
	// (nil, nil) when none has been recorded yet.
	LatestSnapshot(ctx context.Context, campaignID string) (*domain.CampaignMetricSnapshot, error)
	// RecentSnapshots returns up to limit snapshots, newest first;
	// used for trend scoring.
	RecentSnapshots(ctx context.Context, campaignID string, limit int) ([]domain.CampaignMetricSnapshot, error)
}

// CampaignRegistry owns the external run state of campaigns. The engine
// re-reads it before every decision and never caches it across ticks.
type CampaignRegistry interface {
	RunState(ctx context.Context, campaignID string) (domain.RunState, error)
	// SetRunState is invoked only through the executor after approval.
	SetRunState(ctx context.Context, campaignID string, state domain.RunState) error
}

// ActionExecutor applies an approved action to the external campaign.
// A returned error settles the action to failed; the engine does not
// retry.
type ActionExecutor interface {
	Execute(ctx context.Context, action domain.AutomationAction) error
}
