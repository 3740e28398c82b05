// Package tui is the terminal dashboard of the internship tracker.
//
// A single bubbletea program holds every screen. It starts in a loading
// state while the stored session is resolved, then routes to the login
// screen or to the dashboard. The dashboard renders the live record set
// delivered by [service.RecordSync]; every snapshot arrives as a message.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

type TUI struct {
	services  *service.ClientServices
	theme     config.Theme
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, theme config.Theme, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		theme:     theme,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.theme, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if result, ok := finalModel.(appModel); ok {
		result.closeSubscription()
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	return nil
}
