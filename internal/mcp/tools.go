package mcp

import "github.com/mark3labs/mcp-go/mcp"

// classifyMessageTool defines the classify_message MCP tool.
var classifyMessageTool = mcp.NewTool("classify_message",
	mcp.WithDescription("Classify a customer support message and return the bot's reply with its intent and confidence."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The customer's chat message"),
	),
)

// lookupOrderTool defines the lookup_order MCP tool.
var lookupOrderTool = mcp.NewTool("lookup_order",
	mcp.WithDescription("Look up an order by number. Accepts forms like ORD-12345, #12345, order 12345 or 12345."),
	mcp.WithString("order_number",
		mcp.Required(),
		mcp.Description("Order reference as written by the customer"),
	),
)

// searchFAQTool defines the search_faq MCP tool.
var searchFAQTool = mcp.NewTool("search_faq",
	mcp.WithDescription("Rank FAQ entries against a message using the keyword scorer. Returns entries that clear the match threshold."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Message or question to match"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 3)"),
	),
)

// listFAQCategoriesTool defines the list_faq_categories MCP tool.
var listFAQCategoriesTool = mcp.NewTool("list_faq_categories",
	mcp.WithDescription("List the FAQ categories in catalog order with their questions."),
)
