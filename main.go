package main

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
	"github.com/premierbarber/barber-crew/agent/crew"
	"github.com/premierbarber/barber-crew/agent/engine"
	llmx "github.com/premierbarber/barber-crew/agent/llm"
	storex "github.com/premierbarber/barber-crew/agent/store"
	toolx "github.com/premierbarber/barber-crew/agent/tool"
	configx "github.com/premierbarber/barber-crew/pkg/config"
	_ "github.com/premierbarber/barber-crew/pkg/logger/autoload"
	notifyx "github.com/premierbarber/barber-crew/pkg/notify"
	"github.com/premierbarber/barber-crew/server"
)

func main() {
	ctx := context.Background()

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	if err := llmCfg.Validate(); err != nil {
		panic(err)
	}

	// Notifications are optional; bookings still confirm without them.
	var notifier contractx.Notifier
	if notifyCfg, err := configx.New[notifyx.Config]("NOTIFY"); err == nil {
		notifier = notifyx.MustNew(*notifyCfg)
	} else {
		log.Warn().Err(err).Msg("notifier not configured, booking notifications disabled")
	}

	store := storex.New()
	tools := toolx.NewSet(store, notifier)
	gateway := toolx.NewGateway(tools)

	eng, err := engine.New(ctx, *llmCfg, gateway)
	if err != nil {
		panic(err)
	}

	crw, err := crew.New(eng)
	if err != nil {
		panic(err)
	}

	serverCfg := configx.MustNew[server.Config]("SERVER")
	srv := server.New(*serverCfg, crw)
	if err := srv.Run(); err != nil {
		panic(err)
	}
}
