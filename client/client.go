// Package client manages the MCP session with a tool server: it spawns
// the server subprocess over the stdio transport, discovers its tools
// once, and releases the transport deterministically on shutdown.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	osexec "os/exec"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcplink/mcplink/gemini"
	"github.com/mcplink/mcplink/logger"
)

const (
	clientName    = "mcplink"
	clientVersion = "0.1.0"
)

// launcherFor picks the runtime for a server script by filename suffix.
// Python and JavaScript scripts get their interpreters; anything else is
// treated as an executable and run directly.
func launcherFor(path string) (name string, args []string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return "python3", []string{path}
	case ".js", ".mjs":
		return "node", []string{path}
	default:
		return path, nil
	}
}

// Connection is a live MCP session plus the tool descriptors fetched at
// connect time. The descriptor set is read-only for the session's life.
type Connection struct {
	session *mcp.ClientSession
	tools   []gemini.ToolDescriptor
	log     *slog.Logger
}

// Connect launches the server at serverPath as a subprocess, establishes
// the stdio transport, and lists its tools. The caller must Close the
// returned Connection.
func Connect(ctx context.Context, serverPath string) (*Connection, error) {
	return connect(ctx, transportFor(ctx, serverPath))
}

// transportFor builds the subprocess stdio transport for a server script.
func transportFor(ctx context.Context, serverPath string) *mcp.CommandTransport {
	name, args := launcherFor(serverPath)
	cmd := osexec.CommandContext(ctx, name, args...)
	return &mcp.CommandTransport{Command: cmd}
}

// connect finishes session setup over any transport.
func connect(ctx context.Context, transport mcp.Transport) (*Connection, error) {
	log := logger.WithComponent("client")

	c := mcp.NewClient(&mcp.Implementation{Name: clientName, Version: clientVersion}, nil)
	session, err := c.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	tools := make([]gemini.ToolDescriptor, 0, len(res.Tools))
	for _, t := range res.Tools {
		tools = append(tools, gemini.ToolDescriptor{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schemaValue(t.InputSchema),
		})
	}

	log.Info("connected to server", "tools", toolNames(tools))

	return &Connection{
		session: session,
		tools:   tools,
		log:     log,
	}, nil
}

// Session returns the live MCP session for tool execution.
func (c *Connection) Session() *mcp.ClientSession {
	return c.session
}

// Tools returns the tool descriptors discovered at connect time.
func (c *Connection) Tools() []gemini.ToolDescriptor {
	return c.tools
}

// ToolNames returns the discovered tool names in listing order.
func (c *Connection) ToolNames() []string {
	return toolNames(c.tools)
}

// Close shuts down the session and its transport. Safe to defer around
// the whole session lifetime.
func (c *Connection) Close() error {
	c.log.Info("closing connection")
	return c.session.Close()
}

func toolNames(tools []gemini.ToolDescriptor) []string {
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	return names
}

// schemaValue converts the SDK's typed schema into the generic mapping
// the translator sanitizes. A schema that cannot round-trip through JSON
// is dropped rather than failing discovery.
func schemaValue(schema any) any {
	if schema == nil {
		return nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	return v
}
