package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"transmission-mcp/internal/tools"
)

func toolFromDefinition(def tools.Definition) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(def.Description),
		mcp.WithReadOnlyHintAnnotation(def.ReadOnly),
		mcp.WithDestructiveHintAnnotation(def.Destructive),
	}
	for _, param := range def.Parameters {
		opts = append(opts, propertyFor(param))
	}
	return mcp.NewTool(def.Name, opts...)
}

func propertyFor(param tools.Parameter) mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(param.Description)}
	if param.Required {
		props = append(props, mcp.Required())
	}
	if len(param.Enum) > 0 {
		props = append(props, mcp.Enum(param.Enum...))
	}
	switch param.Type {
	case tools.TypeBoolean:
		if def, ok := param.Default.(bool); ok {
			props = append(props, mcp.DefaultBool(def))
		}
		return mcp.WithBoolean(param.Name, props...)
	case tools.TypeInteger:
		props = append(props, integerType)
		return mcp.WithNumber(param.Name, props...)
	default:
		if def, ok := param.Default.(string); ok {
			props = append(props, mcp.DefaultString(def))
		}
		return mcp.WithString(param.Name, props...)
	}
}

// integerType narrows a number property to JSON Schema "integer".
func integerType(schema map[string]any) {
	schema["type"] = "integer"
}
