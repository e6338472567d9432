package tool

import (
	"context"
	"fmt"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
	personax "github.com/premierbarber/barber-crew/agent/persona"
	storex "github.com/premierbarber/barber-crew/agent/store"
)

// Set binds the tool operations to a store and a notifier.
type Set struct {
	store    *storex.Store
	notifier contractx.Notifier
}

func NewSet(store *storex.Store, notifier contractx.Notifier) *Set {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Set{store: store, notifier: notifier}
}

type noopNotifier struct{}

func (noopNotifier) Send(context.Context, string, string) (string, error) {
	return "notifications not configured", nil
}

// Gateway executes tool requests on behalf of a persona. Requests for tools
// outside the persona's allow-list come back as soft result errors, matching
// the rule that routing and tool failures never escalate.
type Gateway struct {
	tools *Set
}

var _ contractx.ToolGateway = (*Gateway)(nil)

func NewGateway(tools *Set) *Gateway {
	return &Gateway{tools: tools}
}

func (g *Gateway) Execute(ctx context.Context, persona contractx.PersonaID, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		name := contractx.ToolName(req.Tool)
		if !personax.Allows(persona, name) {
			results = append(results, contractx.ToolResult{
				Tool:  req.Tool,
				Error: fmt.Sprintf("tool=%s is not allowed for persona=%s", req.Tool, persona),
			})
			continue
		}
		results = append(results, g.dispatch(ctx, name, req))
	}
	return results, nil
}

func (g *Gateway) dispatch(ctx context.Context, name contractx.ToolName, req contractx.ToolRequest) contractx.ToolResult {
	switch name {
	case contractx.ToolGetCustomerInfo:
		identifier := stringArg(req.Args, "identifier")
		if identifier == "" {
			identifier = stringArg(req.Args, "name")
		}
		return contractx.ToolResult{Tool: req.Tool, Result: g.tools.GetCustomerInfo(identifier)}
	case contractx.ToolSearchKnowledgeBase:
		return contractx.ToolResult{Tool: req.Tool, Result: g.tools.SearchKnowledgeBase(stringArg(req.Args, "query"))}
	case contractx.ToolGetAppointmentStatus:
		return contractx.ToolResult{Tool: req.Tool, Result: g.tools.GetAppointmentStatus(
			stringArg(req.Args, "customer_name"),
			stringArg(req.Args, "appointment_id"),
		)}
	case contractx.ToolMakeAppointment:
		return contractx.ToolResult{Tool: req.Tool, Result: g.tools.MakeAppointment(ctx,
			stringArg(req.Args, "customer_name"),
			stringArg(req.Args, "service"),
			stringArg(req.Args, "preferred_date"),
			stringArg(req.Args, "preferred_time"),
			stringArg(req.Args, "barber_preference"),
		)}
	case contractx.ToolCheckAvailability:
		return contractx.ToolResult{Tool: req.Tool, Result: g.tools.CheckAvailability(
			stringArg(req.Args, "date"),
			stringArg(req.Args, "barber_name"),
		)}
	case contractx.ToolGetServicesAndPrices:
		return contractx.ToolResult{Tool: req.Tool, Result: g.tools.ServicesAndPrices()}
	default:
		return contractx.ToolResult{
			Tool:  req.Tool,
			Error: fmt.Sprintf("unknown tool=%s", req.Tool),
		}
	}
}

func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}
	return s
}
