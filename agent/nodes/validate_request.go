package crewnode

import (
	"strings"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

func ValidateRequest(in contractx.Request) (*GraphState, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, contractx.ErrInvalidRequest
	}

	return &GraphState{
		Request: contractx.Request{
			CustomerName: strings.TrimSpace(in.CustomerName),
			Text:         text,
			Details:      in.Details,
		},
		LoweredText: strings.ToLower(text),
	}, nil
}
