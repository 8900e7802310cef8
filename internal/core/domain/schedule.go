package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// GridCells is a 7x24 desired-activation matrix indexed by
// time.Weekday (Sunday = 0) and hour of day. Hour granularity only.
type GridCells [7][24]bool

// UnmarshalJSON enforces the exact 7x24 shape so a truncated or padded
// grid from storage is rejected instead of silently reindexed.
func (g *GridCells) UnmarshalJSON(data []byte) error {
	var rows [][]bool
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) != 7 {
		return fmt.Errorf("schedule grid: want 7 rows, got %d", len(rows))
	}
	for day, hours := range rows {
		if len(hours) != 24 {
			return fmt.Errorf("schedule grid: day %d: want 24 hours, got %d", day, len(hours))
		}
		copy(g[day][:], hours)
	}
	return nil
}

// ScheduleGrid is the per-campaign weekly activation schedule, edited
// only by operators and read every evaluation tick.
type ScheduleGrid struct {
	CampaignID string
	Cells      GridCells
	UpdatedAt  time.Time
}

// DesiredActive returns the grid cell for the wall-clock moment t.
func (g ScheduleGrid) DesiredActive(t time.Time) bool {
	return g.Cells[t.Weekday()][t.Hour()]
}
