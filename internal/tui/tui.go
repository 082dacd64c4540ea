package tui

import (
	"context"

	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the note keeper. It owns no state of its
// own: every screen delegates to the client service layer.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// LoginFlow runs the welcome/login/register screens and blocks until the user
// authenticates or quits. Returns ErrUserQuit when the user backs out.
func (t *TUI) LoginFlow(ctx context.Context) (int64, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return 0, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return 0, tea.ErrProgramKilled
	}
	if result.err != nil {
		return 0, result.err
	}

	return result.resultUserID, nil
}

// MainLoop runs the note list and its child screens for an authenticated
// user. Returns logout=true when the user chose to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, userID int64) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, userID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
