package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignRegistry stores campaign run state in Redis under
// campaign:<id>:state keys. The engine reads it fresh every tick; the
// executor writes it after an approved status change.
type CampaignRegistry struct {
	rdb *redis.Client
}

// NewCampaignRegistry returns a registry backed by the given client.
func NewCampaignRegistry(rdb *redis.Client) *CampaignRegistry {
	return &CampaignRegistry{rdb: rdb}
}

var _ port.CampaignRegistry = (*CampaignRegistry)(nil)

func stateKey(campaignID string) string {
	return fmt.Sprintf("campaign:%s:state", campaignID)
}

// RunState returns the campaign's run state. A campaign without a
// recorded state is reported as paused: a campaign the registry has
// never seen running should not be treated as active.
func (r *CampaignRegistry) RunState(ctx context.Context, campaignID string) (domain.RunState, error) {
	val, err := r.rdb.Get(ctx, stateKey(campaignID)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.RunStatePaused, nil
	}
	if err != nil {
		return "", fmt.Errorf("read run state: %w", err)
	}
	state := domain.RunState(val)
	if !state.Valid() {
		return "", fmt.Errorf("campaign %s: unknown run state %q", campaignID, val)
	}
	return state, nil
}

// SetRunState records the campaign's run state.
func (r *CampaignRegistry) SetRunState(ctx context.Context, campaignID string, state domain.RunState) error {
	if !state.Valid() {
		return fmt.Errorf("campaign %s: unknown run state %q", campaignID, state)
	}
	return r.rdb.Set(ctx, stateKey(campaignID), string(state), 0).Err()
}
