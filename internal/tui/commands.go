package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func (m appModel) cmdResolveSession() tea.Cmd {
	ctx, auth := m.ctx, m.services.Auth
	return func() tea.Msg {
		user, err := auth.CurrentUser(ctx)
		return sessionResolvedMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadTheme() tea.Cmd {
	ctx, prefs, def := m.ctx, m.services.Preferences, m.theme
	return func() tea.Msg {
		theme, err := prefs.LoadTheme(ctx, def)
		return themeLoadedMsg{theme: theme, err: err}
	}
}

func (m appModel) cmdSaveTheme(theme config.Theme) tea.Cmd {
	ctx, prefs := m.ctx, m.services.Preferences
	return func() tea.Msg {
		return themeSavedMsg{err: prefs.SaveTheme(ctx, theme)}
	}
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx, auth := m.ctx, m.services.Auth
	return func() tea.Msg {
		user, err := auth.Login(ctx, creds)
		return signedInMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx, auth := m.ctx, m.services.Auth
	return func() tea.Msg {
		user, err := auth.Register(ctx, reg)
		return signedInMsg{user: user, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx, auth := m.ctx, m.services.Auth
	return func() tea.Msg {
		return signedOutMsg{err: auth.SignOut(ctx)}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx, auth := m.ctx, m.services.Auth
	return func() tea.Msg {
		profile, err := auth.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdSubscribe(userID string) tea.Cmd {
	ctx, sync := m.ctx, m.services.Sync
	return func() tea.Msg {
		sub, err := sync.Subscribe(ctx, userID)
		return subscribedMsg{sub: sub, err: err}
	}
}

// waitForSnapshot delivers the next emission of sub as a message. It is
// re-issued after every snapshot, so at most one read is pending.
func waitForSnapshot(sub *service.Subscription) tea.Cmd {
	return func() tea.Msg {
		set, ok := <-sub.Snapshots()
		if !ok {
			return subscriptionEndedMsg{sub: sub, err: sub.Err()}
		}
		return snapshotMsg{sub: sub, set: set}
	}
}

// cmdCommit commits a copy of the edit session so the command goroutine
// never touches the model's session. The model resets its own session once
// savedMsg reports success.
func (m appModel) cmdCommit() tea.Cmd {
	ctx, sync := m.ctx, m.services.Sync
	session := *m.edit
	_, editing := session.State().(service.Editing)
	userID := m.list.user.UserID
	return func() tea.Msg {
		id, err := session.CommitEdit(ctx, sync, userID)
		return savedMsg{id: id, editing: editing, err: err}
	}
}

func (m appModel) cmdDelete(recordID string) tea.Cmd {
	ctx, sync := m.ctx, m.services.Sync
	return func() tea.Msg {
		return deletedMsg{err: sync.Delete(ctx, recordID)}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	ctx, server := m.ctx, m.services.Server
	return func() tea.Msg {
		version, err := server.Version(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
