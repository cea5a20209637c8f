package gemini

// ToolDescriptor is the provider-independent shape of a tool discovered
// from an MCP server: name, description, and raw JSON input schema.
// Descriptors are immutable once fetched at connection time.
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema any
}

// Translate converts discovered tool descriptors into Gemini function
// declarations, sanitizing each input schema. It is deterministic and
// leaves its input untouched.
func Translate(tools []ToolDescriptor) []Declaration {
	decls := make([]Declaration, 0, len(tools))
	for _, t := range tools {
		decls = append(decls, Declaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  CleanSchema(t.InputSchema),
		})
	}
	return decls
}

// CleanSchema removes the "title" key from a JSON schema node and from
// every nested node under its "properties" map. Gemini's function-calling
// schema rejects the extraneous metadata some MCP servers attach. All
// other fields pass through verbatim. A schema that is not a mapping is
// returned unchanged so one malformed tool cannot block the rest of the
// registration.
func CleanSchema(schema any) any {
	m, ok := schema.(map[string]any)
	if !ok {
		return schema
	}

	cleaned := make(map[string]any, len(m))
	for k, v := range m {
		if k == "title" {
			continue
		}
		cleaned[k] = v
	}

	if props, ok := cleaned["properties"].(map[string]any); ok {
		cleanedProps := make(map[string]any, len(props))
		for name, sub := range props {
			cleanedProps[name] = CleanSchema(sub)
		}
		cleaned["properties"] = cleanedProps
	}

	return cleaned
}
