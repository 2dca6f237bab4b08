package main

import (
	"context"

	"github.com/sbilibin2017/gamepeaks/internal/apps"
	"github.com/sbilibin2017/gamepeaks/internal/configs"
)

// run starts the proxy with the given configuration and blocks until ctx is
// cancelled, a termination signal arrives or a component fails.
func run(ctx context.Context, config *configs.ServerConfig) error {
	return apps.RunServer(ctx, config)
}
