package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/mcplink/mcplink/logger"
)

// Client is the Gemini-backed Generator. One Client serves the whole
// process lifetime; it holds no per-turn state.
type Client struct {
	genai *genai.Client
	model string
	log   *slog.Logger
}

// NewClient creates a Gemini client for the given API key and model ID.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &Client{
		genai: gc,
		model: model,
		log:   logger.WithComponent("gemini"),
	}, nil
}

// Model returns the model ID this client generates with.
func (c *Client) Model() string {
	return c.model
}

// Generate sends the conversation and tool declarations to the model
// and returns its response as tagged parts.
func (c *Client) Generate(ctx context.Context, messages []Message, tools []Declaration) (*Response, error) {
	contents := toContents(messages)

	var cfg *genai.GenerateContentConfig
	if len(tools) > 0 {
		cfg = &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{FunctionDeclarations: toDeclarations(tools)}},
		}
	}

	c.log.Debug("generate content", "model", c.model, "messages", len(messages), "tools", len(tools))

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	return fromResponse(resp), nil
}

// toContents converts tagged messages to SDK content.
func toContents(messages []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		parts := make([]*genai.Part, 0, len(m.Parts))
		for _, p := range m.Parts {
			switch {
			case p.Call != nil:
				parts = append(parts, &genai.Part{FunctionCall: &genai.FunctionCall{
					Name: p.Call.Name,
					Args: p.Call.Args,
				}})
			case p.Result != nil:
				parts = append(parts, &genai.Part{FunctionResponse: &genai.FunctionResponse{
					Name:     p.Result.Name,
					Response: p.Result.Response,
				}})
			default:
				parts = append(parts, &genai.Part{Text: p.Text})
			}
		}
		contents = append(contents, &genai.Content{Role: m.Role, Parts: parts})
	}
	return contents
}

// toDeclarations converts translated tools to SDK function declarations.
// The sanitized schema is passed through as raw JSON schema rather than
// rebuilt field by field, so nested structure survives untouched.
func toDeclarations(tools []Declaration) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:                 t.Name,
			Description:          t.Description,
			ParametersJsonSchema: t.Parameters,
		})
	}
	return decls
}

// fromResponse converts an SDK response into tagged parts, preserving
// candidate and part order.
func fromResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		c := Candidate{}
		for _, p := range cand.Content.Parts {
			if p == nil {
				continue
			}
			switch {
			case p.FunctionCall != nil:
				c.Parts = append(c.Parts, CallPart(&FunctionCall{
					Name: p.FunctionCall.Name,
					Args: p.FunctionCall.Args,
				}))
			default:
				c.Parts = append(c.Parts, TextPart(p.Text))
			}
		}
		out.Candidates = append(out.Candidates, c)
	}
	return out
}
