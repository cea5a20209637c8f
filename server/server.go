// Package server implements the terminal MCP server: two tools that run
// a shell command or write a file inside a fixed workspace directory.
// Tool failures are reported in-band as text results, never as protocol
// errors, so the client's conversation can always continue.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	osexec "os/exec"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcplink/mcplink/exec"
	"github.com/mcplink/mcplink/logger"
)

const (
	serverName    = "terminal"
	serverVersion = "0.1.0"

	// logOutputLimit truncates captured output in log lines.
	logOutputLimit = 200
)

// RunCommandArgs are the arguments for the run_command tool.
type RunCommandArgs struct {
	Command string `json:"command" jsonschema:"the shell command to run"`
}

// CreateFileArgs are the arguments for the create_file tool.
type CreateFileArgs struct {
	Filename string `json:"filename" jsonschema:"the name of the file to create"`
	Content  string `json:"content" jsonschema:"the file contents to write"`
}

// Server exposes the terminal tools over MCP.
type Server struct {
	workspace string
	exec      exec.CommandExecutor
	mcp       *mcp.Server
	log       *slog.Logger
}

// New creates the terminal server operating in the given workspace
// directory, creating it if needed. The executor runs the shell
// commands; production passes exec.NewRealExecutor().
func New(workspace string, executor exec.CommandExecutor) (*Server, error) {
	if err := os.MkdirAll(workspace, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace %s: %w", workspace, err)
	}

	s := &Server{
		workspace: workspace,
		exec:      executor,
		log:       logger.WithComponent("server"),
	}

	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "run_command",
		Description: "Run a terminal command inside the workspace directory.",
	}, s.runCommand)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_file",
		Description: "Create a file with the given filename and content inside the workspace.",
	}, s.createFile)
	s.mcp = srv

	return s, nil
}

// Workspace returns the directory the tools operate in.
func (s *Server) Workspace() string {
	return s.workspace
}

// Run serves on the given transport until the client disconnects.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	s.log.Info("terminal server starting", "workspace", s.workspace)
	err := s.mcp.Run(ctx, transport)
	s.log.Info("terminal server stopped", "error", err)
	return err
}

// RunStdio serves on the process's stdin/stdout.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

// runCommand executes a shell command in the workspace and returns its
// captured stdout, falling back to stderr when stdout is empty. A
// command that exits non-zero is not an error; a command that cannot be
// started is reported as its error string.
func (s *Server) runCommand(ctx context.Context, req *mcp.CallToolRequest, args RunCommandArgs) (*mcp.CallToolResult, any, error) {
	s.log.Info("received command", "command", args.Command)

	stdout, stderr, err := s.exec.Run(ctx, s.workspace, "sh", "-c", args.Command)

	var exitErr *osexec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		s.log.Error("error running command", "command", args.Command, "error", err)
		return textResult(err.Error()), nil, nil
	}

	exitCode := 0
	if exitErr != nil {
		exitCode = exitErr.ExitCode()
	}

	output := string(stdout)
	if output == "" {
		output = string(stderr)
	}

	s.log.Info("command executed",
		"command", args.Command,
		"exitCode", exitCode,
		"output", truncate(output, logOutputLimit))

	return textResult(output), nil, nil
}

// createFile writes a file under the workspace and returns a success or
// error message string. Filenames are trusted as-is.
func (s *Server) createFile(ctx context.Context, req *mcp.CallToolRequest, args CreateFileArgs) (*mcp.CallToolResult, any, error) {
	path := filepath.Join(s.workspace, args.Filename)

	if err := os.WriteFile(path, []byte(args.Content), 0644); err != nil {
		s.log.Error("error creating file", "filename", args.Filename, "error", err)
		return textResult(fmt.Sprintf("Error creating file: %v", err)), nil, nil
	}

	s.log.Info("file created", "filename", args.Filename, "bytes", len(args.Content))
	return textResult(fmt.Sprintf("File %q created successfully in workspace.", args.Filename)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
