package mcp

import "github.com/mark3labs/mcp-go/mcp"

func executeCommandTool() mcp.Tool {
	return mcp.NewTool("execute_command",
		mcp.WithDescription("Run a natural-language style command (\"make the background blue\", \"more rounded\", \"dark mode\") against the live theme tokens. Returns the changes made or a structured error with suggestions."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The command, as a user would type or say it"),
		),
		mcp.WithObject("selection",
			mcp.Description("What is selected in the editor. Commands like \"make this red\" apply to it."),
			mcp.Properties(map[string]any{
				"kind": map[string]any{
					"type": "string",
					"enum": []string{"page", "component", "dataModel", "flow"},
				},
				"id":            map[string]any{"type": "string"},
				"componentKind": map[string]any{"type": "string", "description": "e.g. button, card, input"},
				"name":          map[string]any{"type": "string"},
			}),
		),
		mcp.WithBoolean("persist",
			mcp.Description("Schedule the change to be saved to the theme file (default true)"),
		),
	)
}

func parseCommandTool() mcp.Tool {
	return mcp.NewTool("parse_command",
		mcp.WithDescription("Classify a style command without applying it. Returns the parsed intent: type, target, value, delta, scope and confidence."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The command to parse"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func listTargetsTool() mcp.Tool {
	return mcp.NewTool("list_targets",
		mcp.WithDescription("List the canonical style targets (background, primary, radius, ...) with their token, category and description."),
		mcp.WithString("category",
			mcp.Description("Only targets in this category"),
			mcp.Enum("color", "typography", "spacing", "layout", "mode"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getTokensTool() mcp.Tool {
	return mcp.NewTool("get_tokens",
		mcp.WithDescription("Current token values for the active mode, optionally limited to the given token names."),
		mcp.WithArray("names",
			mcp.Description("Token IDs to return, e.g. [\"primary\", \"radius\"]"),
			mcp.WithStringItems(),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getHelpTool() mcp.Tool {
	return mcp.NewTool("get_help",
		mcp.WithDescription("Examples of the commands execute_command understands."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}
