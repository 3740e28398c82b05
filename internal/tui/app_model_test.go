package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/internship-tracker/internal/adapter"
	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/mock"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

var alice = models.CurrentUser{UserID: "u-1", Email: "alice@example.com"}

// fakeAuth is a ClientAuthService with canned answers.
type fakeAuth struct {
	current  *models.CurrentUser
	loginErr error
	signOuts int
}

func (f *fakeAuth) Register(_ context.Context, reg models.Registration) (models.CurrentUser, error) {
	return models.CurrentUser{UserID: "u-new", Email: reg.Email}, nil
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (models.CurrentUser, error) {
	if f.loginErr != nil {
		return models.CurrentUser{}, f.loginErr
	}
	return models.CurrentUser{UserID: "u-1", Email: creds.Email}, nil
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.CurrentUser, error) {
	return f.current, nil
}

func (f *fakeAuth) Profile(context.Context) (models.User, error) {
	return models.User{ID: "u-1", FirstName: "Alice"}, nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.signOuts++
	return nil
}

type testEnv struct {
	auth  *fakeAuth
	docs  *mock.MockServerAdapter
	prefs *mock.MockPreferenceRepository
	model appModel
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:  &fakeAuth{},
		docs:  mock.NewMockServerAdapter(ctrl),
		prefs: mock.NewMockPreferenceRepository(ctrl),
	}
	services := &service.ClientServices{
		Auth:        env.auth,
		Sync:        service.NewInternshipSync(env.docs, logger.Nop()),
		Preferences: service.NewPreferenceService(env.prefs),
		Server:      env.docs,
	}
	env.model = newAppModel(context.Background(), services, config.Theme{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	return env
}

// update feeds msg to m and returns the concrete model.
func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func record(id, company, deadline string, status models.Status) models.Internship {
	return models.Internship{
		ID:     id,
		UserID: alice.UserID,
		InternshipFields: models.InternshipFields{
			Company:  company,
			Role:     "Intern",
			Link:     "https://jobs.example.com/" + id,
			Deadline: deadline,
			Status:   status,
		},
	}
}

// signedIn returns a model on the dashboard that already shows set.
func signedIn(t *testing.T, env *testEnv, set models.RecordSet) appModel {
	t.Helper()
	m, _ := update(t, env.model, sessionResolvedMsg{user: &alice})
	m, _ = update(t, m, snapshotMsg{set: set})
	return m
}

func TestAppModel_AuthGate(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, screenLoading, env.model.currentScreen)
	assert.Equal(t, models.AuthLoading, env.model.auth)
	assert.Contains(t, env.model.View(), "Loading")

	t.Run("signed out goes to welcome", func(t *testing.T) {
		m, cmd := update(t, env.model, sessionResolvedMsg{})
		assert.Nil(t, cmd)
		assert.Equal(t, screenWelcome, m.currentScreen)
		assert.Equal(t, models.AuthSignedOut, m.auth)
		assert.Contains(t, m.View(), "Sign up")
	})

	t.Run("stored session opens the dashboard", func(t *testing.T) {
		m, cmd := update(t, env.model, sessionResolvedMsg{user: &alice})
		assert.NotNil(t, cmd)
		assert.Equal(t, screenDashboard, m.currentScreen)
		assert.Equal(t, models.AuthSignedIn, m.auth)
		assert.Equal(t, alice, m.list.user)
		assert.True(t, m.list.loading)
	})
}

func TestAppModel_Login(t *testing.T) {
	env := newTestEnv(t)
	m, _ := update(t, env.model, sessionResolvedMsg{})
	m, _ = update(t, m, keyPress("enter"))
	require.Equal(t, screenLogin, m.currentScreen)

	m = typeText(t, m, "alice@example.com")
	m, _ = update(t, m, keyPress("tab"))
	m = typeText(t, m, "secret1")
	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.login.submitting)

	msg := cmd()
	require.IsType(t, signedInMsg{}, msg)
	m, _ = update(t, m, msg)

	assert.Equal(t, screenDashboard, m.currentScreen)
	assert.Equal(t, "alice@example.com", m.list.user.Email)
}

func TestAppModel_LoginRejected(t *testing.T) {
	env := newTestEnv(t)
	env.auth.loginErr = &service.ServiceError{Op: "login", Err: service.ErrInvalidCredentials}

	m, _ := update(t, env.model, sessionResolvedMsg{})
	m, _ = update(t, m, keyPress("enter"))
	m, cmd := update(t, m, keyPress("enter"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgLoginFailed, m.errorOverlay.message)
	assert.False(t, m.login.submitting)

	m, _ = update(t, m, keyPress("esc"))
	assert.False(t, m.showError)
}

func TestAppModel_ProfileGreeting(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1})
	assert.Contains(t, m.View(), "Welcome, alice@example.com!")

	m, _ = update(t, m, profileLoadedMsg{profile: models.User{FirstName: "Alice"}})
	assert.Contains(t, m.View(), "Welcome, Alice!")
}

func TestAppModel_DashboardFilterAndSort(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1, Records: []models.Internship{
		record("a", "Acme", "2024-05-01", models.StatusApplied),
		record("b", "Globex", "2024-04-01", models.StatusInterviewing),
		record("c", "Initech", "2024-06-01", models.StatusApplied),
	}})

	ids := func(m appModel) []string {
		var out []string
		for _, r := range m.list.view {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []string{"b", "a", "c"}, ids(m))

	m, _ = update(t, m, keyPress("s"))
	assert.Equal(t, []string{"c", "a", "b"}, ids(m))

	m, _ = update(t, m, keyPress("f"))
	assert.Equal(t, models.StatusFilter(models.StatusApplied), m.list.filter)
	assert.Equal(t, []string{"c", "a"}, ids(m))

	m, _ = update(t, m, keyPress("f"))
	assert.Equal(t, []string{"b"}, ids(m))
}

func TestAppModel_SnapshotKeepsSelection(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1, Records: []models.Internship{
		record("a", "Acme", "2024-05-01", models.StatusApplied),
		record("b", "Globex", "2024-06-01", models.StatusApplied),
	}})
	m, _ = update(t, m, keyPress("down"))
	require.Equal(t, "b", m.list.view[m.list.idx].ID)

	m, _ = update(t, m, snapshotMsg{set: models.RecordSet{Seq: 2, Records: []models.Internship{
		record("c", "Hooli", "2024-01-01", models.StatusOffer),
		record("a", "Acme", "2024-05-01", models.StatusApplied),
		record("b", "Globex", "2024-06-01", models.StatusApplied),
	}}})

	assert.Equal(t, uint64(2), m.list.seq)
	assert.Equal(t, "b", m.list.view[m.list.idx].ID)
}

func TestAppModel_AddInternship(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1})

	m, _ = update(t, m, keyPress("n"))
	require.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, models.StatusApplied, m.form.status)

	m = typeText(t, m, "Acme")
	m, _ = update(t, m, keyPress("tab"))
	m = typeText(t, m, "Backend Intern")
	m, _ = update(t, m, keyPress("tab"))
	m = typeText(t, m, "https://acme.example.com/jobs/1")
	m, _ = update(t, m, keyPress("tab"))
	m = typeText(t, m, "2024-05-01")
	m, _ = update(t, m, keyPress("tab"))
	m, _ = update(t, m, keyPress("right"))
	assert.Equal(t, models.StatusInterviewing, m.form.status)

	env.docs.EXPECT().
		InsertInternship(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Internship) (string, error) {
			assert.Equal(t, alice.UserID, rec.UserID)
			assert.Equal(t, "Acme", rec.Company)
			assert.Equal(t, "Backend Intern", rec.Role)
			assert.Equal(t, "2024-05-01", rec.Deadline)
			assert.Equal(t, models.StatusInterviewing, rec.Status)
			return "rec-1", nil
		})

	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, savedMsg{id: "rec-1"}, msg)

	m, _ = update(t, m, msg)
	assert.Equal(t, screenDashboard, m.currentScreen)
	assert.Equal(t, "Internship added.", m.list.status)
	assert.Equal(t, service.Inactive{Draft: models.NewInternshipFields()}, m.edit.State())
}

func TestAppModel_AddInvalidKeepsForm(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1})

	m, _ = update(t, m, keyPress("n"))
	m, cmd := update(t, m, keyPress("enter"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenForm, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, "Company is required.", m.errorOverlay.message)
}

func TestAppModel_EditInternship(t *testing.T) {
	env := newTestEnv(t)
	rec := record("a", "Acme", "2024-05-01", models.StatusApplied)
	m := signedIn(t, env, models.RecordSet{Seq: 1, Records: []models.Internship{rec}})

	m, _ = update(t, m, keyPress("e"))
	require.Equal(t, screenForm, m.currentScreen)
	assert.True(t, m.form.editing)
	assert.Equal(t, "Acme", m.form.fields().Company)
	assert.Equal(t, service.Editing{RecordID: "a", WorkingCopy: rec.InternshipFields}, m.edit.State())

	m = typeText(t, m, " Corp")

	env.docs.EXPECT().
		UpdateInternship(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.Internship) error {
			assert.Equal(t, "a", got.ID)
			assert.Equal(t, "Acme Corp", got.Company)
			return nil
		})

	m, cmd := update(t, m, keyPress("enter"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenDashboard, m.currentScreen)
	assert.Equal(t, "Internship updated.", m.list.status)
	assert.IsType(t, service.Inactive{}, m.edit.State())
}

func TestAppModel_EditVanishedRecord(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1, Records: []models.Internship{
		record("a", "Acme", "2024-05-01", models.StatusApplied),
	}})

	m, _ = update(t, m, keyPress("e"))
	env.docs.EXPECT().UpdateInternship(gomock.Any(), gomock.Any()).Return(adapter.ErrNotFound)

	m, cmd := update(t, m, keyPress("enter"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, app.MsgRecordVanished, m.errorOverlay.message)
	assert.IsType(t, service.Editing{}, m.edit.State(), "failed commit keeps editing")
}

func TestAppModel_CancelEdit(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1, Records: []models.Internship{
		record("a", "Acme", "2024-05-01", models.StatusApplied),
	}})

	m, _ = update(t, m, keyPress("e"))
	m, _ = update(t, m, keyPress("esc"))

	assert.Equal(t, screenDashboard, m.currentScreen)
	assert.IsType(t, service.Inactive{}, m.edit.State())
}

func TestAppModel_DeleteAsksFirst(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1, Records: []models.Internship{
		record("a", "Acme", "2024-05-01", models.StatusApplied),
	}})

	m, _ = update(t, m, keyPress("d"))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Are you sure")

	m, cmd := update(t, m, keyPress("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, m.pendingDelete)

	m, _ = update(t, m, keyPress("d"))
	env.docs.EXPECT().DeleteInternship(gomock.Any(), "a").Return(nil)

	m, cmd = update(t, m, keyPress("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "Internship deleted.", m.list.status)
}

func TestAppModel_CopyLink(t *testing.T) {
	var (
		mu     sync.Mutex
		copied string
	)
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		mu.Lock()
		defer mu.Unlock()
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1, Records: []models.Internship{
		record("a", "Acme", "2024-05-01", models.StatusApplied),
	}})

	m, cmd := update(t, m, keyPress("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "https://jobs.example.com/a", copied)
	assert.Equal(t, "Link copied to clipboard.", m.list.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.list.status)
}

func TestAppModel_ThemeIsPersisted(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1})
	require.Equal(t, DefaultAccent, m.theme.Color)

	env.prefs.EXPECT().SetPreference(gomock.Any(), "theme.color", "#FF7D29").Return(nil)
	env.prefs.EXPECT().SetPreference(gomock.Any(), "theme.dark", "false").Return(nil)

	m, cmd := update(t, m, keyPress("t"))
	assert.Equal(t, "#FF7D29", m.theme.Color)
	assert.Equal(t, themeSavedMsg{}, cmd())

	env.prefs.EXPECT().SetPreference(gomock.Any(), "theme.color", "#FF7D29").Return(nil)
	env.prefs.EXPECT().SetPreference(gomock.Any(), "theme.dark", "true").Return(nil)

	m, cmd = update(t, m, keyPress("m"))
	assert.True(t, m.theme.Dark)
	assert.Equal(t, themeSavedMsg{}, cmd())
}

func TestAppModel_ThemeLoaded(t *testing.T) {
	env := newTestEnv(t)
	env.prefs.EXPECT().GetPreference(gomock.Any(), "theme.color").Return("#B13BFF", true, nil)
	env.prefs.EXPECT().GetPreference(gomock.Any(), "theme.dark").Return("true", true, nil)

	msg := env.model.cmdLoadTheme()()
	m, _ := update(t, env.model, msg)

	assert.Equal(t, config.Theme{Color: "#B13BFF", Dark: true}, m.theme)
}

func TestAppModel_LiveSubscription(t *testing.T) {
	env := newTestEnv(t)
	ctrl := gomock.NewController(t)
	stream := mock.NewMockSnapshotStream(ctrl)

	sets := make(chan models.RecordSet, 2)
	closed := make(chan struct{})
	var once sync.Once

	stream.EXPECT().Next().DoAndReturn(func() (models.RecordSet, error) {
		select {
		case set := <-sets:
			return set, nil
		case <-closed:
			return models.RecordSet{}, adapter.ErrStreamClosed
		}
	}).AnyTimes()
	stream.EXPECT().Close().DoAndReturn(func() error {
		once.Do(func() { close(closed) })
		return nil
	}).AnyTimes()
	env.docs.EXPECT().SubscribeInternships(gomock.Any(), models.OwnedBy(alice.UserID)).Return(stream, nil)

	m, _ := update(t, env.model, sessionResolvedMsg{user: &alice})

	sets <- models.RecordSet{Seq: 1, Records: []models.Internship{record("a", "Acme", "2024-05-01", models.StatusApplied)}}
	sets <- models.RecordSet{Seq: 2}

	m, wait := update(t, m, m.cmdSubscribe(alice.UserID)())
	require.NotNil(t, m.sub)

	m, wait = update(t, m, wait())
	assert.False(t, m.list.loading)
	assert.Len(t, m.list.view, 1)

	m, _ = update(t, m, wait())
	assert.Equal(t, uint64(2), m.list.seq)
	assert.Empty(t, m.list.view)
	assert.Contains(t, m.View(), "No internships found.")

	sub := m.sub
	m, cmd := update(t, m, keyPress("L"))
	assert.Nil(t, m.sub, "sign-out closes the live query")

	// A read still pending on the closed subscription is dropped.
	m, _ = update(t, m, subscriptionEndedMsg{sub: sub})
	assert.False(t, m.showError)

	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, env.auth.signOuts)
	assert.Equal(t, screenWelcome, m.currentScreen)
	assert.Equal(t, models.AuthSignedOut, m.auth)
}

func TestAppModel_BrokenSubscription(t *testing.T) {
	env := newTestEnv(t)
	m := signedIn(t, env, models.RecordSet{Seq: 1})

	m, _ = update(t, m, subscriptionEndedMsg{err: &service.ServiceError{Op: "subscribe", Err: adapter.ErrUnavailable}})

	assert.True(t, m.showError)
	assert.Equal(t, app.MsgServiceUnavailable, m.errorOverlay.message)
	assert.Equal(t, screenDashboard, m.currentScreen, "errors never leave the dashboard")
}

func TestAppModel_BuildInfo(t *testing.T) {
	env := newTestEnv(t)
	env.docs.EXPECT().Version(gomock.Any()).Return("2.0.0", nil)

	m, _ := update(t, env.model, sessionResolvedMsg{})
	m, cmd := update(t, m, keyPress("v"))
	require.True(t, m.showBuildInfo)
	m, _ = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Build version: 1.0.0")
	assert.Contains(t, view, "Server version: 2.0.0")

	m, _ = update(t, m, keyPress("esc"))
	assert.False(t, m.showBuildInfo)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	env := newTestEnv(t)
	_, cmd := update(t, env.model, keyPress("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestListModel_ViewRows(t *testing.T) {
	l := newListModel(alice).setSnapshot(models.RecordSet{Seq: 3, Records: []models.Internship{
		record("a", "A company with a very long name indeed", "2024-05-01", models.StatusOffer),
	}})

	view := l.View(newStyles(config.Theme{}))

	assert.Contains(t, view, "A company with a ...")
	assert.Contains(t, view, string(models.StatusOffer))
	assert.True(t, strings.Contains(view, "Filter: All"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "héllo", fitText("héllo", 5))
}

func TestErrorText(t *testing.T) {
	assert.Empty(t, errorText(nil))
	assert.Equal(t, "boom", errorText(errors.New("boom")))
}
