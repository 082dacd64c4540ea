// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package client

import (
	"context"
	"errors"

	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/internal/service"
	"github.com/adenikin/go-note-keeper/internal/tui"
	"github.com/adenikin/go-note-keeper/internal/workers"
)

// App glues the client runtime together: the terminal UI, the client
// services, and the background sync job.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run drives the whole client session: authenticate, perform an initial
// sync, start the periodic sync job, and hand control to the main screen.
// A logout loops back to the login flow; quitting exits cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		userID, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		if err := a.services.SyncService.FullSync(ctx, userID); err != nil {
			// без сети работаем с локальной копией
			a.logger.Warn().Err(err).Msg("initial sync failed, continuing offline")
		}

		a.workers.Start(ctx, userID)

		logout, err := a.ui.MainLoop(ctx, userID)
		a.workers.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}
