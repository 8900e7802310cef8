package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const snapshotColumns = `id, campaign_id, acos, tacos, margin, cpc, ctr, conversion_rate,
        impressions, clicks, conversions, spend, revenue, recorded_at`

// MetricStore reads campaign metric snapshots written by the
// metrics-ingestion pipeline. Snapshots are append-only; this adapter
// never writes.
type MetricStore struct {
	pool *pgxpool.Pool
}

// NewMetricStore returns a new store instance.
func NewMetricStore(pool *pgxpool.Pool) *MetricStore {
	return &MetricStore{pool: pool}
}

var _ port.MetricSource = (*MetricStore)(nil)

// LatestSnapshot returns the newest snapshot for a campaign, or
// (nil, nil) when none has been recorded yet.
func (s *MetricStore) LatestSnapshot(ctx context.Context, campaignID string) (*domain.CampaignMetricSnapshot, error) {
	row := s.pool.QueryRow(ctx, `
        SELECT `+snapshotColumns+`
        FROM campaign_snapshots
        WHERE campaign_id = $1
        ORDER BY recorded_at DESC
        LIMIT 1`, campaignID)
	snap, err := scanSnapshot(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// RecentSnapshots returns up to limit snapshots, newest first.
func (s *MetricStore) RecentSnapshots(ctx context.Context, campaignID string, limit int) ([]domain.CampaignMetricSnapshot, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT `+snapshotColumns+`
        FROM campaign_snapshots
        WHERE campaign_id = $1
        ORDER BY recorded_at DESC
        LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignMetricSnapshot, error) {
		return scanSnapshot(row)
	})
}

func scanSnapshot(row pgx.Row) (domain.CampaignMetricSnapshot, error) {
	var sn domain.CampaignMetricSnapshot
	err := row.Scan(
		&sn.ID,
		&sn.CampaignID,
		&sn.ACOS,
		&sn.TACOS,
		&sn.Margin,
		&sn.CPC,
		&sn.CTR,
		&sn.ConversionRate,
		&sn.Impressions,
		&sn.Clicks,
		&sn.Conversions,
		&sn.Spend,
		&sn.Revenue,
		&sn.RecordedAt,
	)
	return sn, err
}
