// Package gemini is the LLM collaborator layer: it models conversation
// messages as explicit tagged variants, translates discovered tool
// schemas into Gemini function declarations, and wraps the Gemini SDK
// behind a narrow Generator interface the orchestrator depends on.
package gemini

import "context"

// Conversation roles on the Gemini wire.
const (
	RoleUser  = "user"
	RoleModel = "model"
	RoleTool  = "tool"
)

// FunctionCall is a tool invocation requested by the model.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// FunctionResponse carries a tool result back to the model.
// Response is keyed "result" on success or "error" on failure.
type FunctionResponse struct {
	Name     string
	Response map[string]any
}

// Part is one content fragment of a message. Exactly one of the
// variant fields is set; a Part with neither Call nor Result is text.
type Part struct {
	Text   string
	Call   *FunctionCall
	Result *FunctionResponse
}

// TextPart returns a plain-text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// CallPart returns a function-call part.
func CallPart(call *FunctionCall) Part {
	return Part{Call: call}
}

// ResultPart returns a function-response part.
func ResultPart(result *FunctionResponse) Part {
	return Part{Result: result}
}

// IsText reports whether the part is a plain text fragment.
func (p Part) IsText() bool {
	return p.Call == nil && p.Result == nil
}

// Message is a single conversational entry exchanged with the model.
type Message struct {
	Role  string
	Parts []Part
}

// UserMessage builds a user-role message from a query string.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Parts: []Part{TextPart(text)}}
}

// Candidate is one alternative completion in a model response.
type Candidate struct {
	Parts []Part
}

// Response is a model response with zero or more candidates, each
// holding ordered content parts.
type Response struct {
	Candidates []Candidate
}

// Declaration describes one callable tool in the provider's
// function-calling format. Parameters holds the sanitized JSON schema.
type Declaration struct {
	Name        string
	Description string
	Parameters  any
}

// Generator is the LLM surface the orchestrator depends on. The
// production implementation is Client; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, messages []Message, tools []Declaration) (*Response, error)
}
