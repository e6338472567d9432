// Package autoload initializes the global logger from LOG_* environment
// variables as a blank-import side effect.
package autoload

import (
	configx "github.com/premierbarber/barber-crew/pkg/config"
	logx "github.com/premierbarber/barber-crew/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*cfg)
}
