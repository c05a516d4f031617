// Package analytics builds the usage report served by /api/analytics.
package analytics

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
)

// Report is the analytics payload. The headline figures are the fixed
// dashboard numbers the web frontend renders; Live is present only when the
// event log is enabled.
type Report struct {
	TotalConversations  int            `json:"total_conversations"`
	ResolutionRate      int            `json:"resolution_rate"`
	Escalations         int            `json:"escalations"`
	Satisfaction        float64        `json:"satisfaction"`
	AverageResponseTime string         `json:"average_response_time"`
	CommonIntents       map[string]int `json:"common_intents"`
	Live                *chatlog.Stats `json:"live,omitempty"`
}

// StatsSource supplies live counters.
type StatsSource interface {
	Stats(ctx context.Context) (chatlog.Stats, error)
}

// Static returns the fixed dashboard figures.
func Static() Report {
	return Report{
		TotalConversations:  1247,
		ResolutionRate:      89,
		Escalations:         137,
		Satisfaction:        4.7,
		AverageResponseTime: "2.3s",
		CommonIntents: map[string]int{
			"order_status":      45,
			"technical_support": 30,
			"refund_returns":    15,
			"billing":           10,
		},
	}
}

// Build returns the static report, adding live counters when src is set.
func Build(ctx context.Context, src StatsSource) (Report, error) {
	r := Static()
	if src == nil {
		return r, nil
	}
	st, err := src.Stats(ctx)
	if err != nil {
		return r, fmt.Errorf("reading live stats: %w", err)
	}
	r.Live = &st
	return r, nil
}
