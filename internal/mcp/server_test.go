package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/faq"
	"github.com/ziadkadry99/support-bot/internal/intent"
	"github.com/ziadkadry99/support-bot/internal/orders"
)

func newTestServer(t *testing.T) (*Server, *chatlog.Store) {
	t.Helper()
	c, err := faq.Load("../../data/faqs.json")
	require.NoError(t, err)
	store, err := chatlog.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	table := orders.SampleTable()
	router := intent.NewRouter(table, faq.NewScorer(c))
	return NewServer(chatlog.NewRecording(router, store, zerolog.Nop()), table, c), store
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	switch c := result.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content type %T", result.Content[0])
	return ""
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"classify_message", classifyMessageTool, "classify_message"},
		{"lookup_order", lookupOrderTool, "lookup_order"},
		{"search_faq", searchFAQTool, "search_faq"},
		{"list_faq_categories", listFAQCategoriesTool, "list_faq_categories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.tool.Name)
			assert.NotEmpty(t, tt.tool.Description)
		})
	}
}

func TestNewServer(t *testing.T) {
	srv, _ := newTestServer(t)
	require.NotNil(t, srv.mcp)
	assert.NotZero(t, srv.catalog.Len())
	assert.Equal(t, 3, srv.orders.Len())
}

func TestNewServerNilData(t *testing.T) {
	srv := NewServer(nil, nil, nil)
	require.NotNil(t, srv.mcp)

	result, err := srv.handleListFAQCategories(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "The FAQ catalog is empty.", resultText(t, result))
}

func TestHandleClassifyMessage(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	t.Run("order status", func(t *testing.T) {
		result, err := srv.handleClassifyMessage(ctx, callRequest(map[string]any{"message": "order ORD-12345"}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var resp intent.Response
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
		assert.Equal(t, intent.IntentOrderStatus, resp.Intent)
		assert.Equal(t, 90, resp.Confidence)
		require.NotNil(t, resp.OrderInfo)
		assert.Equal(t, orders.StatusShipped, resp.OrderInfo.Status)
	})

	t.Run("empty message", func(t *testing.T) {
		result, err := srv.handleClassifyMessage(ctx, callRequest(map[string]any{"message": ""}))
		require.NoError(t, err)
		require.False(t, result.IsError)
		assert.Contains(t, resultText(t, result), `"intent": "empty"`)
	})

	t.Run("missing message", func(t *testing.T) {
		result, err := srv.handleClassifyMessage(ctx, callRequest(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	st, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.ByChannel[chatlog.ChannelMCP])
}

func TestHandleLookupOrder(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		result, err := srv.handleLookupOrder(ctx, callRequest(map[string]any{"order_number": "#11111"}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var body struct {
			OrderNumber string        `json:"order_number"`
			Details     orders.Record `json:"details"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &body))
		assert.Equal(t, "ORD-11111", body.OrderNumber)
		assert.Equal(t, orders.StatusProcessing, body.Details.Status)
		assert.Equal(t, "USPS", body.Details.Carrier)
	})

	t.Run("not found", func(t *testing.T) {
		result, err := srv.handleLookupOrder(ctx, callRequest(map[string]any{"order_number": "ORD-00000"}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "ORD-12345, ORD-67890, ORD-11111")
	})

	t.Run("missing parameter", func(t *testing.T) {
		result, err := srv.handleLookupOrder(ctx, callRequest(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestHandleSearchFAQ(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()

	t.Run("match", func(t *testing.T) {
		result, err := srv.handleSearchFAQ(ctx, callRequest(map[string]any{"query": "What is your return policy?", "limit": 2}))
		require.NoError(t, err)
		require.False(t, result.IsError)
		text := resultText(t, result)
		assert.Contains(t, text, "### 1. What is your return policy?")
		assert.Contains(t, text, "return_refund")
	})

	t.Run("no match", func(t *testing.T) {
		result, err := srv.handleSearchFAQ(ctx, callRequest(map[string]any{"query": "Tell me a joke"}))
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Contains(t, resultText(t, result), "No FAQ entry matched")
	})

	t.Run("missing query", func(t *testing.T) {
		result, err := srv.handleSearchFAQ(ctx, callRequest(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestHandleListFAQCategories(t *testing.T) {
	srv, _ := newTestServer(t)

	result, err := srv.handleListFAQCategories(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "## order_related (4)")
	assert.Contains(t, text, "- How can I track my order?")
	assert.Less(t, strings.Index(text, "order_related"), strings.Index(text, "product_questions"))
}

func TestFormatMatches(t *testing.T) {
	out := formatMatches([]faq.Match{{
		Category: "billing_payment",
		Entry:    faq.Entry{Question: "Why was I charged twice?", Answer: "We refund duplicates."},
		Score:    faq.Breakdown{Total: 6, KeywordHits: 2, PhraseBonus: 3},
	}})
	assert.Contains(t, out, "Found 1 matching FAQ entries")
	assert.Contains(t, out, "**Category:** billing_payment | **Score:** 6")
	assert.Contains(t, out, "We refund duplicates.")
}
