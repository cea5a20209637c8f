// Package bridge executes model-requested tool calls against an MCP
// session and normalizes the outcome so a turn can always continue.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcplink/mcplink/logger"
)

// ToolCaller is the slice of the MCP client session the bridge needs.
// *mcp.ClientSession satisfies it; tests substitute fakes.
type ToolCaller interface {
	CallTool(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error)
}

// Result is the normalized outcome of one tool call: either Content is
// set (success) or Err carries the failure message. Never both.
type Result struct {
	Content any
	Err     string
}

// Success returns a successful result carrying the tool's content.
func Success(content any) Result {
	return Result{Content: content}
}

// Failure returns a failed result carrying the error message.
func Failure(message string) Result {
	return Result{Err: message}
}

// Failed reports whether the tool call failed.
func (r Result) Failed() bool {
	return r.Err != ""
}

// Payload returns the result in the shape re-injected into the model
// conversation: {"result": content} or {"error": message}.
func (r Result) Payload() map[string]any {
	if r.Failed() {
		return map[string]any{"error": r.Err}
	}
	return map[string]any{"result": r.Content}
}

// Executor invokes remote tools over an MCP session.
type Executor struct {
	caller ToolCaller
	log    *slog.Logger
}

// NewExecutor creates an Executor over the given session.
func NewExecutor(caller ToolCaller) *Executor {
	return &Executor{
		caller: caller,
		log:    logger.WithComponent("bridge"),
	}
}

// Execute performs one blocking tool call. Every failure mode — transport
// error, unknown tool, tool-side error, even a panic in the transport —
// becomes a Failure result; Execute never propagates to its caller.
func (e *Executor) Execute(ctx context.Context, name string, args map[string]any) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Failure(fmt.Sprintf("tool call panicked: %v", r))
		}
	}()

	e.log.Info("calling tool", "tool", name, "args", args)

	res, err := e.caller.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		e.log.Warn("tool call failed", "tool", name, "error", err)
		return Failure(err.Error())
	}

	text := contentText(res.Content)
	if res.IsError {
		if text == "" {
			text = fmt.Sprintf("tool %s reported an error", name)
		}
		e.log.Warn("tool reported error", "tool", name, "message", text)
		return Failure(text)
	}

	e.log.Debug("tool call succeeded", "tool", name, "bytes", len(text))
	return Success(text)
}

// contentText joins the text content items of a tool result.
// Non-text content is ignored; the terminal tools only produce text.
func contentText(items []mcp.Content) string {
	var parts []string
	for _, c := range items {
		if tc, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
