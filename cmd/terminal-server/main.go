// Command terminal-server is the MCP server exposing the run_command
// and create_file tools over stdio. Logs go to a file; stdout belongs
// to the transport.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mcplink/mcplink/config"
	"github.com/mcplink/mcplink/exec"
	"github.com/mcplink/mcplink/logger"
	"github.com/mcplink/mcplink/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logPath, err := logger.ServerLogPath()
	if err != nil {
		return err
	}
	if err := logger.Init(logPath); err != nil {
		return err
	}
	defer logger.Close()
	logger.SetDebug(cfg.GetDebug())

	workspace, err := cfg.GetWorkspace()
	if err != nil {
		return err
	}

	srv, err := server.New(workspace, exec.NewRealExecutor())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return srv.RunStdio(ctx)
}
