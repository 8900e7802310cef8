package domain

import "time"

// MetricType identifies a campaign performance metric tracked by the
// snapshot pipeline. The set is closed; rules referencing anything else
// are treated as malformed configuration.
type MetricType string

const (
	MetricACOS           MetricType = "acos"
	MetricTACOS          MetricType = "tacos"
	MetricMargin         MetricType = "margin"
	MetricCPC            MetricType = "cpc"
	MetricCTR            MetricType = "ctr"
	MetricConversionRate MetricType = "conversion_rate"
)

// Valid reports whether m is one of the known metric types.
func (m MetricType) Valid() bool {
	switch m {
	case MetricACOS, MetricTACOS, MetricMargin, MetricCPC, MetricCTR, MetricConversionRate:
		return true
	}
	return false
}

// CampaignMetricSnapshot is a point-in-time measurement for a campaign.
// Snapshots are written by the metrics-ingestion pipeline and never
// mutated; older snapshots are retained for trend scoring.
type CampaignMetricSnapshot struct {
	ID             int64
	CampaignID     string
	ACOS           float64
	TACOS          float64
	Margin         float64
	CPC            float64
	CTR            float64
	ConversionRate float64
	Impressions    int64
	Clicks         int64
	Conversions    int64
	Spend          float64
	Revenue        float64
	RecordedAt     time.Time
}

// Value returns the snapshot field addressed by the metric type. The
// second return is false for unknown metric types.
func (s CampaignMetricSnapshot) Value(m MetricType) (float64, bool) {
	switch m {
	case MetricACOS:
		return s.ACOS, true
	case MetricTACOS:
		return s.TACOS, true
	case MetricMargin:
		return s.Margin, true
	case MetricCPC:
		return s.CPC, true
	case MetricCTR:
		return s.CTR, true
	case MetricConversionRate:
		return s.ConversionRate, true
	}
	return 0, false
}
