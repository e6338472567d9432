package crewnode

import (
	"fmt"
	"strings"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: engine returned an empty result", contractx.ErrSchemaViolation)
	}
	return GraphOutput{Reply: reply}, nil
}
