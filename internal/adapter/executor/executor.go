package executor

import (
	"context"
	"fmt"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// RegistryExecutor applies approved actions. Status changes go to the
// campaign registry; bid and keyword suggestions are handed off to the
// marketplace integration, which is outside this subsystem, so they are
// acknowledged and logged here.
type RegistryExecutor struct {
	registry port.CampaignRegistry
	logger   *slog.Logger
}

// NewRegistryExecutor returns an executor writing through the registry.
func NewRegistryExecutor(registry port.CampaignRegistry, logger *slog.Logger) *RegistryExecutor {
	return &RegistryExecutor{registry: registry, logger: logger}
}

var _ port.ActionExecutor = (*RegistryExecutor)(nil)

// Execute applies one approved action in a single bounded call. Any
// error settles the action to failed upstream; there is no retry here.
func (x *RegistryExecutor) Execute(ctx context.Context, action domain.AutomationAction) error {
	switch s := action.Suggestion.(type) {
	case domain.StatusChange:
		return x.registry.SetRunState(ctx, action.CampaignID, s.Status)
	case domain.BidAdjustment:
		x.logger.Info("bid adjustment handed off",
			slog.String("campaign_id", action.CampaignID),
			slog.Float64("factor", s.Factor))
		return nil
	case domain.KeywordOptimization:
		x.logger.Info("keyword optimization handed off",
			slog.String("campaign_id", action.CampaignID),
			slog.Int("max_keywords", s.MaxKeywords))
		return nil
	case nil:
		return fmt.Errorf("action %s carries no suggestion", action.ID)
	default:
		return fmt.Errorf("action %s: unsupported suggestion kind %q", action.ID, s.Kind())
	}
}
