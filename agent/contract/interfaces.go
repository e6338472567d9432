package contract

import "context"

// Engine is the execution-engine collaborator: it carries out a plan,
// possibly calling tools through a gateway, and returns one aggregate text.
// Retry policy belongs to the caller, not implementations.
type Engine interface {
	Run(ctx context.Context, plan Plan) (string, error)
}

// ToolGateway executes tool requests on behalf of a persona, enforcing the
// persona's allow-list. Denied or failed tools surface as soft result errors.
type ToolGateway interface {
	Execute(ctx context.Context, persona PersonaID, reqs []ToolRequest) ([]ToolResult, error)
}

// Notifier delivers a booking notification. Failures are non-fatal to the
// booking; the returned status string is appended to the confirmation text.
type Notifier interface {
	Send(ctx context.Context, phone string, message string) (string, error)
}
