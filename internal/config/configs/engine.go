package configs

import "time"

// Engine tunes the automation engine. TickInterval drives the periodic
// evaluation pass, PendingTTL bounds how long an action may await a
// decision, AutoApproveSchedule lets schedule-triggered actions bypass
// the human gate (off by default; rule-triggered actions always wait),
// HistoryDepth is the number of trailing snapshots used for trend
// scoring.
type Engine struct {
	TickInterval        time.Duration `env:"TICK_INTERVAL" envDefault:"1m"`
	PendingTTL          time.Duration `env:"PENDING_TTL" envDefault:"6h"`
	AutoApproveSchedule bool          `env:"AUTO_APPROVE_SCHEDULE" envDefault:"false"`
	HistoryDepth        int           `env:"HISTORY_DEPTH" envDefault:"5"`
}
