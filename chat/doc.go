// Package chat drives the conversation between the user, the Gemini
// model, and the remote MCP tools.
//
// # Turn lifecycle
//
// Each user query is one turn, resolved independently:
//
//	Shell.Run()
//	    ↓ (one line of input)
//	Orchestrator.RunTurn()
//	    ↓ (query + translated tool set)
//	Gemini generate call #1
//	    ↓ (text parts collected; first function call, if any)
//	ToolExecutor.Execute() ← one tool call at most
//	    ↓ ({"result": ...} or {"error": ...} payload)
//	Gemini generate call #2 ← terminal for the turn
//	    ↓ (first text part only)
//	answer printed by Shell
//
// A turn issues at most two model calls: a second response that itself
// requests a tool is never chained further. Tool failures are folded
// into the payload of the second call so the model can explain them;
// they never abort the turn.
//
// # State
//
// Nothing persists across turns. The Orchestrator holds only the
// read-only tool declarations and its two collaborators; conversation
// history is rebuilt from the raw query each turn.
package chat
