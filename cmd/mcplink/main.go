// Command mcplink bridges a Gemini model to the tools of an MCP server.
// It spawns the server given on the command line, discovers its tools,
// and runs an interactive query loop.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mcplink/mcplink/bridge"
	"github.com/mcplink/mcplink/chat"
	"github.com/mcplink/mcplink/client"
	"github.com/mcplink/mcplink/config"
	"github.com/mcplink/mcplink/gemini"
	"github.com/mcplink/mcplink/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: mcplink <path-to-server-script>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(serverPath string) error {
	if err := config.LoadEnvFile(); err != nil {
		return err
	}

	// Fatal before any session starts
	apiKey, err := config.APIKey()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logPath, err := logger.ClientLogPath()
	if err != nil {
		return err
	}
	if err := logger.Init(logPath); err != nil {
		return err
	}
	defer logger.Close()
	logger.SetDebug(cfg.GetDebug())

	ctx := context.Background()

	gen, err := gemini.NewClient(ctx, apiKey, cfg.GetModel())
	if err != nil {
		return err
	}

	conn, err := client.Connect(ctx, serverPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Connected to server. Tools: %s\n", strings.Join(conn.ToolNames(), ", "))

	decls := gemini.Translate(conn.Tools())
	orch := chat.NewOrchestrator(gen, bridge.NewExecutor(conn.Session()), decls)
	shell := chat.NewShell(orch, os.Stdin, os.Stdout)

	return shell.Run(ctx)
}
