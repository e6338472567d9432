package persona

import (
	"github.com/cloudwego/eino/schema"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

func toolInfo(name contractx.ToolName) *schema.ToolInfo {
	switch name {
	case contractx.ToolGetCustomerInfo:
		return &schema.ToolInfo{
			Name: string(name),
			Desc: "Fetch a customer record by name, phone, or email.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"identifier": {Type: schema.String, Desc: "Customer name, phone, or email", Required: true},
			}),
		}
	case contractx.ToolSearchKnowledgeBase:
		return &schema.ToolInfo{
			Name: string(name),
			Desc: "Search hair care tips, styling advice, and shop policies.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {Type: schema.String, Desc: "Customer question", Required: true},
			}),
		}
	case contractx.ToolGetAppointmentStatus:
		return &schema.ToolInfo{
			Name: string(name),
			Desc: "Check a customer's appointments, or one appointment by id.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_name":  {Type: schema.String, Desc: "Customer display name", Required: true},
				"appointment_id": {Type: schema.String, Desc: "Appointment id, e.g. apt001"},
			}),
		}
	case contractx.ToolMakeAppointment:
		return &schema.ToolInfo{
			Name: string(name),
			Desc: "Book an appointment for a known customer.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_name":     {Type: schema.String, Desc: "Customer name", Required: true},
				"service":           {Type: schema.String, Desc: "Requested service", Required: true},
				"preferred_date":    {Type: schema.String, Desc: "Weekday name or YYYY-MM-DD", Required: true},
				"preferred_time":    {Type: schema.String, Desc: "Time slot, e.g. 10:00 AM", Required: true},
				"barber_preference": {Type: schema.String, Desc: "Preferred barber"},
			}),
		}
	case contractx.ToolCheckAvailability:
		return &schema.ToolInfo{
			Name: string(name),
			Desc: "List open time slots for a date, optionally for one barber.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"date":        {Type: schema.String, Desc: "Weekday name or YYYY-MM-DD", Required: true},
				"barber_name": {Type: schema.String, Desc: "Barber display name"},
			}),
		}
	case contractx.ToolGetServicesAndPrices:
		return &schema.ToolInfo{
			Name: string(name),
			Desc: "List all services with prices and durations.",
		}
	default:
		return nil
	}
}

// ToolInfos returns the eino tool definitions for a persona's allow-list,
// in the persona's declared tool order.
func ToolInfos(id contractx.PersonaID) []*schema.ToolInfo {
	p, ok := personas[id]
	if !ok {
		return nil
	}
	infos := make([]*schema.ToolInfo, 0, len(p.Tools))
	for _, name := range p.Tools {
		if info := toolInfo(name); info != nil {
			infos = append(infos, info)
		}
	}
	return infos
}
