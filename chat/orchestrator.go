package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mcplink/mcplink/bridge"
	"github.com/mcplink/mcplink/gemini"
	"github.com/mcplink/mcplink/logger"
)

// ToolExecutor resolves a model-requested tool call into a normalized
// result. *bridge.Executor satisfies it.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, args map[string]any) bridge.Result
}

// Orchestrator holds the read-only tool declarations and the two
// collaborators a turn needs. It carries no state between turns.
type Orchestrator struct {
	gen   gemini.Generator
	tools ToolExecutor
	decls []gemini.Declaration
}

// NewOrchestrator creates an Orchestrator over the given model client,
// tool executor, and translated tool set.
func NewOrchestrator(gen gemini.Generator, tools ToolExecutor, decls []gemini.Declaration) *Orchestrator {
	return &Orchestrator{
		gen:   gen,
		tools: tools,
		decls: decls,
	}
}

// RunTurn resolves one user query to a final textual answer.
//
// The model is called once with the query and the full tool set. Text
// parts are collected in emission order. The first function-call part
// triggers exactly one tool execution and one follow-up model call whose
// first text part closes the turn; further function calls in the same
// turn are ignored. A turn therefore issues at most two model calls.
// An empty return with nil error means the model produced no answer.
func (o *Orchestrator) RunTurn(ctx context.Context, query string) (string, error) {
	log := logger.WithTurn(uuid.New().String()).With("component", "chat")
	log.Info("turn started", "query", query)

	userMsg := gemini.UserMessage(query)

	resp, err := o.gen.Generate(ctx, []gemini.Message{userMsg}, o.decls)
	if err != nil {
		return "", fmt.Errorf("initial model call: %w", err)
	}

	var fragments []string
	resolved := false

	for _, cand := range resp.Candidates {
		for _, part := range cand.Parts {
			switch {
			case part.Call != nil:
				if resolved {
					log.Warn("ignoring additional tool call", "tool", part.Call.Name)
					continue
				}
				resolved = true
				answer, err := o.resolveToolCall(ctx, log, userMsg, part)
				if err != nil {
					return "", err
				}
				if answer != "" {
					fragments = append(fragments, answer)
				}
			case part.IsText():
				if part.Text != "" {
					fragments = append(fragments, part.Text)
				}
			}
		}
	}

	answer := strings.Join(fragments, "\n")
	log.Info("turn finished", "toolCall", resolved, "answerLen", len(answer))
	return answer, nil
}

// resolveToolCall executes the requested tool and issues the follow-up
// model call with the conversation so far. Only the first text part of
// the follow-up response is returned; the turn never chains further.
func (o *Orchestrator) resolveToolCall(ctx context.Context, log *slog.Logger, userMsg gemini.Message, callPart gemini.Part) (string, error) {
	call := callPart.Call
	result := o.tools.Execute(ctx, call.Name, call.Args)
	if result.Failed() {
		log.Warn("tool call resolved with failure", "tool", call.Name, "error", result.Err)
	}

	conversation := []gemini.Message{
		userMsg,
		{Role: gemini.RoleModel, Parts: []gemini.Part{callPart}},
		{Role: gemini.RoleTool, Parts: []gemini.Part{
			gemini.ResultPart(&gemini.FunctionResponse{
				Name:     call.Name,
				Response: result.Payload(),
			}),
		}},
	}

	resp, err := o.gen.Generate(ctx, conversation, o.decls)
	if err != nil {
		return "", fmt.Errorf("follow-up model call: %w", err)
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Parts {
			if part.IsText() {
				return part.Text, nil
			}
		}
	}
	return "", nil
}
