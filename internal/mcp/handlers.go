package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/faq"
	"github.com/ziadkadry99/support-bot/internal/orders"
)

// handleClassifyMessage runs a message through the intent router.
func (s *Server) handleClassifyMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	resp := s.classifier.Classify(ctx, chatlog.ChannelMCP, message)
	return jsonResult(resp)
}

// handleLookupOrder returns the stored record for an order reference.
func (s *Server) handleLookupOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number, err := request.RequireString("order_number")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: order_number"), nil
	}

	rec, err := s.orders.Lookup(number)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"Order %q not found. Known orders: %s", number, strings.Join(s.orders.Keys(), ", "),
			)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}

	key, _ := orders.Normalize(number)
	return jsonResult(map[string]any{
		"order_number": key,
		"details":      rec,
	})
}

// handleSearchFAQ ranks catalog entries against the query.
func (s *Server) handleSearchFAQ(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 3)
	if limit <= 0 {
		limit = 3
	}

	matches := s.scorer.Rank(query, limit)
	if len(matches) == 0 {
		return mcp.NewToolResultText("No FAQ entry matched. The bot would answer with a generic reply."), nil
	}

	return mcp.NewToolResultText(formatMatches(matches)), nil
}

// handleListFAQCategories lists catalog categories and their questions.
func (s *Server) handleListFAQCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats := s.catalog.Categories()
	if len(cats) == 0 {
		return mcp.NewToolResultText("The FAQ catalog is empty."), nil
	}

	var b strings.Builder
	for _, cat := range cats {
		fmt.Fprintf(&b, "## %s (%d)\n", cat.Name, len(cat.Entries))
		for _, e := range cat.Entries {
			fmt.Fprintf(&b, "- %s\n", e.Question)
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

// formatMatches renders ranked matches as markdown.
func formatMatches(matches []faq.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matching FAQ entries:\n\n", len(matches))
	for i, m := range matches {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, m.Entry.Question)
		fmt.Fprintf(&b, "**Category:** %s | **Score:** %d (keywords %d, phrase +%d, penalty -%d)\n\n",
			m.Category, m.Score.Total, m.Score.KeywordHits, m.Score.PhraseBonus, m.Score.Penalty)
		b.WriteString(m.Entry.Answer)
		b.WriteString("\n\n")
	}
	return b.String()
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
