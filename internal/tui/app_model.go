package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

type screen int

const (
	screenLoading screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenDashboard
	screenForm
)

// appModel routes between the screens. The dashboard is reachable only in
// the AuthSignedIn state; until the stored session is resolved the loading
// screen is shown.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	auth          models.AuthState
	currentScreen screen
	theme         config.Theme
	styles        styles

	loading  loadingModel
	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	form     formModel

	edit *service.EditSession
	sub  *service.Subscription

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	showBuildInfo bool
	serverVersion string
}

func newAppModel(ctx context.Context, services *service.ClientServices, theme config.Theme, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	theme = normalizeTheme(theme)
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		logger:        logger,
		auth:          models.AuthLoading,
		currentScreen: screenLoading,
		theme:         theme,
		styles:        newStyles(theme),
		loading:       newLoadingModel(),
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		edit:          service.NewEditSession(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.spinner.Tick, m.cmdLoadTheme(), m.cmdResolveSession())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}

	case spinner.TickMsg:
		if m.currentScreen == screenLoading {
			var cmd tea.Cmd
			m.loading.spinner, cmd = m.loading.spinner.Update(msg)
			return m, cmd
		}
		if m.currentScreen == screenDashboard && m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case sessionResolvedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("resolving stored session")
		}
		if msg.user == nil {
			m.auth = models.AuthSignedOut
			m.currentScreen = screenWelcome
			return m, nil
		}
		return m.enterDashboard(*msg.user)

	case signedInMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		m.login = newLoginModel()
		m.register = newRegisterModel()
		return m.enterDashboard(msg.user)

	case signedOutMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("signing out")
		}
		m.closeSubscription()
		m.auth = models.AuthSignedOut
		m.edit.CancelEdit()
		m.currentScreen = screenWelcome
		return m, nil

	case profileLoadedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("loading profile")
			return m, nil
		}
		m.list.firstName = msg.profile.FirstName
		return m, nil

	case subscribedMsg:
		if msg.err != nil {
			m.list.loading = false
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		if m.auth != models.AuthSignedIn {
			msg.sub.Close()
			return m, nil
		}
		m.closeSubscription()
		m.sub = msg.sub
		return m, waitForSnapshot(msg.sub)

	case snapshotMsg:
		if msg.sub != m.sub {
			return m, nil
		}
		m.list = m.list.setSnapshot(msg.set)
		return m, waitForSnapshot(msg.sub)

	case subscriptionEndedMsg:
		if msg.sub != m.sub {
			return m, nil
		}
		m.sub = nil
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
		}
		return m, nil

	case savedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		m.edit.CancelEdit()
		m.currentScreen = screenDashboard
		m.list.status = "Internship added."
		if msg.editing {
			m.list.status = "Internship updated."
		}
		return m, cmdClearStatus()

	case deletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		m.list.status = "Internship deleted."
		return m, cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.status = "Link copied to clipboard."
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.list.status = ""
		return m, nil

	case themeLoadedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("loading theme")
			return m, nil
		}
		m.setTheme(msg.theme)
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("saving theme")
		}
		return m, nil

	case serverVersionMsg:
		if msg.err != nil {
			m.serverVersion = ""
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return m.styles.app.Render(renderBuildInfoWindow(m.styles, m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.currentScreen {
	case screenLoading:
		body = m.loading.View()
	case screenWelcome:
		body = m.welcome.View(m.styles)
	case screenLogin:
		body = m.login.View(m.styles)
	case screenRegister:
		body = m.register.View(m.styles)
	case screenDashboard:
		body = m.list.View(m.styles)
	case screenForm:
		body = m.form.View(m.styles)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View(m.styles)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.styles)
	}

	return m.styles.app.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setTheme(theme config.Theme) {
	m.theme = normalizeTheme(theme)
	m.styles = newStyles(m.theme)
}

func (m *appModel) closeSubscription() {
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
}

// enterDashboard switches to the signed-in state and opens the live query.
func (m appModel) enterDashboard(user models.CurrentUser) (tea.Model, tea.Cmd) {
	m.auth = models.AuthSignedIn
	m.currentScreen = screenDashboard
	m.list = newListModel(user)
	return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadProfile(), m.cmdSubscribe(user.UserID))
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete == "" {
			return m, nil
		}
		return m, m.cmdDelete(m.pendingDelete)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		return m, m.cmdServerVersion()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.inputs, m.login.focus = cycleFocus(m.login.inputs, m.login.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.inputs, m.login.focus = cycleFocus(m.login.inputs, m.login.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(m.login.credentials())
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.inputs, m.register.focus = cycleFocus(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.inputs, m.register.focus = cycleFocus(m.register.inputs, m.register.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(m.register.registration())
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.view)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.filter):
		m.list = m.list.cycleFilter()
	case key.Matches(keyMsg, keys.sort):
		m.list = m.list.toggleOrder()
	case key.Matches(keyMsg, keys.newItem):
		m.edit.CancelEdit()
		m.form = newFormModel(m.edit)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		rec, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.edit.BeginEdit(rec)
		m.form = newFormModel(m.edit)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		rec, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = rec.Company + " - " + rec.Role
		m.pendingDelete = rec.ID
	case key.Matches(keyMsg, keys.copy):
		rec, ok := m.list.current()
		if !ok || rec.Link == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(rec.Link)
	case key.Matches(keyMsg, keys.accent):
		theme := m.theme
		theme.Color = NextAccent(theme.Color)
		m.setTheme(theme)
		return m, m.cmdSaveTheme(m.theme)
	case key.Matches(keyMsg, keys.dark):
		theme := m.theme
		theme.Dark = !theme.Dark
		m.setTheme(theme)
		return m, m.cmdSaveTheme(m.theme)
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		return m, m.cmdServerVersion()
	case key.Matches(keyMsg, keys.logout):
		m.closeSubscription()
		return m, m.cmdSignOut()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.edit.CancelEdit()
			m.currentScreen = screenDashboard
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down) && m.focusOnStatus():
			m.form = m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up) && m.focusOnStatus():
			m.form = m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.right) && m.focusOnStatus():
			m.form.status = m.form.status.Next()
			return m, nil
		case key.Matches(keyMsg, keys.left) && m.focusOnStatus():
			m.form.status = m.form.status.Prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.edit.SetFields(m.form.fields())
			m.form.submitting = true
			return m, m.cmdCommit()
		}
	}

	in, ok := m.form.inputs[m.form.focus]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	m.form.inputs[m.form.focus] = in
	return m, cmd
}

func (m appModel) focusOnStatus() bool {
	return m.form.focus == slotStatus
}
