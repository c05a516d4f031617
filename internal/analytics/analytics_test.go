package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/intent"
)

func TestStaticFigures(t *testing.T) {
	r := Static()
	assert.Equal(t, 1247, r.TotalConversations)
	assert.Equal(t, 89, r.ResolutionRate)
	assert.Equal(t, 137, r.Escalations)
	assert.Equal(t, 4.7, r.Satisfaction)
	assert.Equal(t, "2.3s", r.AverageResponseTime)
	assert.Equal(t, 45, r.CommonIntents["order_status"])
	assert.Equal(t, 30, r.CommonIntents["technical_support"])
	assert.Equal(t, 15, r.CommonIntents["refund_returns"])
	assert.Equal(t, 10, r.CommonIntents["billing"])
	assert.Nil(t, r.Live)
}

func TestStaticJSONOmitsLive(t *testing.T) {
	data, err := json.Marshal(Static())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "live")
	assert.EqualValues(t, 1247, m["total_conversations"])
}

func TestBuildWithoutSource(t *testing.T) {
	r, err := Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, Static(), r)
}

func TestBuildWithStore(t *testing.T) {
	s, err := chatlog.OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Record(ctx, chatlog.Event{Channel: chatlog.ChannelHTTP, Intent: intent.IntentFAQ, Confidence: 85}))
	require.NoError(t, s.Record(ctx, chatlog.Event{Channel: chatlog.ChannelHTTP, Intent: intent.IntentOrderStatus, Confidence: 90}))

	r, err := Build(ctx, s)
	require.NoError(t, err)
	require.NotNil(t, r.Live)
	assert.Equal(t, 2, r.Live.Total)
	assert.Equal(t, 1, r.Live.ByIntent[intent.IntentFAQ])
	assert.Equal(t, 1247, r.TotalConversations)
}

type failingSource struct{}

func (failingSource) Stats(context.Context) (chatlog.Stats, error) {
	return chatlog.Stats{}, errors.New("disk on fire")
}

func TestBuildSourceError(t *testing.T) {
	r, err := Build(context.Background(), failingSource{})
	assert.Error(t, err)
	assert.Nil(t, r.Live)
	assert.Equal(t, 1247, r.TotalConversations)
}
