package processor

import (
	"fmt"

	"coordinator-console/internal/clients/backend"
)

// transitions lists the statuses reachable from each status. Deactivated is terminal.
var transitions = map[backend.CampaignStatus][]backend.CampaignStatus{
	backend.CampaignStatusDraft: {backend.CampaignStatusUAT, backend.CampaignStatusDeactivated},
	backend.CampaignStatusUAT:   {backend.CampaignStatusProd, backend.CampaignStatusDeactivated},
	backend.CampaignStatusProd:  {backend.CampaignStatusDeactivated},
}

// Editable reports whether campaign fields may still change in status.
func Editable(status backend.CampaignStatus) bool {
	return status == backend.CampaignStatusDraft || status == backend.CampaignStatusUAT
}

// AllowedTransitions returns the statuses a campaign in status may move to.
func AllowedTransitions(status backend.CampaignStatus) []backend.CampaignStatus {
	next := transitions[status]
	out := make([]backend.CampaignStatus, len(next))
	copy(out, next)
	return out
}

// CheckTransition validates a lifecycle move from one status to another.
func CheckTransition(from, to backend.CampaignStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%q: %w", to, ErrUnknownStatus)
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%s to %s: %w", from, to, ErrInvalidStatusTransition)
}
