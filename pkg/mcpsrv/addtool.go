package mcpsrv

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/internal/mcp/tools"
)

// AddTool is [sdkmcp.AddTool] plus the registration-time output check the
// builtin tools get: it panics when the zero value of Out does not satisfy
// the schema the SDK infers for Out, typically because a slice or map field
// without omitzero marshals as null.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	tools.AddTool(srv, t, h)
}
