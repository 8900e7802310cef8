package httpadapter

import (
	"encoding/json"
	"time"

	"adpilot/internal/core/domain"
)

// actionResponse is the JSON shape of an automation action. Reason and
// confidence are always present so operators can judge a pending action;
// exec_error surfaces the executor failure on failed actions.
type actionResponse struct {
	ID               string          `json:"id"`
	CampaignID       string          `json:"campaign_id"`
	ActionType       string          `json:"action_type"`
	Source           string          `json:"source"`
	Reason           string          `json:"reason"`
	Suggestion       json.RawMessage `json:"suggestion,omitempty"`
	Confidence       float64         `json:"confidence"`
	RequiresApproval bool            `json:"requires_approval"`
	Status           string          `json:"status"`
	Note             string          `json:"note,omitempty"`
	ExecError        string          `json:"exec_error,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toActionResponse(a domain.AutomationAction) actionResponse {
	resp := actionResponse{
		ID:               a.ID,
		CampaignID:       a.CampaignID,
		ActionType:       string(a.Type),
		Source:           string(a.Source),
		Reason:           a.Reason,
		Confidence:       a.Confidence,
		RequiresApproval: a.RequiresApproval,
		Status:           string(a.Status),
		Note:             a.Note,
		ExecError:        a.ExecError,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if a.Suggestion != nil {
		if raw, err := domain.EncodeSuggestion(a.Suggestion); err == nil {
			resp.Suggestion = raw
		}
	}
	return resp
}

func toActionResponses(actions []domain.AutomationAction) []actionResponse {
	out := make([]actionResponse, 0, len(actions))
	for _, a := range actions {
		out = append(out, toActionResponse(a))
	}
	return out
}
