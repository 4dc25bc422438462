package mcp

import "github.com/mark3labs/mcp-go/mcp"

// newTextResult wraps rendered output as a successful tool result.
func newTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// newToolError reports a rejected request to the caller with IsError set,
// keeping the failure inside the tool invocation instead of the transport.
func newToolError(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
		IsError: true,
	}
}
