package crewnode

import (
	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

type GraphOutput struct {
	Reply string
}

// GraphState threads one request through the pipeline: validate -> route ->
// compose -> run engine -> finalize.
type GraphState struct {
	Request     contractx.Request
	LoweredText string

	Categories []contractx.Category
	Fallback   bool

	Plan  contractx.Plan
	Reply string
}
