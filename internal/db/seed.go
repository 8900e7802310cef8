package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo automation configuration and snapshot history so a
// fresh environment produces pending actions on the first ticks.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= 5; i++ {
		campaignID := fmt.Sprintf("camp-%d", i)

		// pause when ACOS runs hot, lower bids when CPC does
		_, err := db.Exec(ctx, `INSERT INTO campaign_rules
    (campaign_id, metric, threshold, direction, action, is_active, created_at)
VALUES ($1,'acos',0.25,NULL,'pause',TRUE,now()) ON CONFLICT DO NOTHING`, campaignID)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO campaign_rules
    (campaign_id, metric, threshold, direction, action, is_active, created_at)
VALUES ($1,'cpc',1.50,'above','adjust_bid',TRUE,now()) ON CONFLICT DO NOTHING`, campaignID)
		if err != nil {
			return err
		}

		// business-hours grid: active 08:00-22:00 every day
		var cells [7][24]bool
		for day := 0; day < 7; day++ {
			for hour := 8; hour < 22; hour++ {
				cells[day][hour] = true
			}
		}
		cellsJSON, _ := json.Marshal(cells)
		_, err = db.Exec(ctx, `INSERT INTO schedule_grids (campaign_id, cells, updated_at)
VALUES ($1, $2, now()) ON CONFLICT DO NOTHING`, campaignID, cellsJSON)
		if err != nil {
			return err
		}

		// a day of hourly snapshots ending now
		for h := 24; h >= 0; h-- {
			acos := 0.15 + r.Float64()*0.2
			cpc := 0.8 + r.Float64()*1.2
			ctr := 0.01 + r.Float64()*0.04
			cvr := 0.02 + r.Float64()*0.08
			impressions := int64(1000 + r.Intn(9000))
			clicks := int64(float64(impressions) * ctr)
			conversions := int64(float64(clicks) * cvr)
			spend := float64(clicks) * cpc
			revenue := spend / acos
			_, err = db.Exec(ctx, `INSERT INTO campaign_snapshots
(campaign_id, acos, tacos, margin, cpc, ctr, conversion_rate, impressions, clicks, conversions, spend, revenue, recorded_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) ON CONFLICT DO NOTHING`,
				campaignID, acos, acos*0.8, 0.3-acos/2, cpc, ctr, cvr,
				impressions, clicks, conversions, spend, revenue,
				time.Now().UTC().Add(-time.Duration(h)*time.Hour))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
