package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/internship-tracker/internal/adapter"
	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/internal/tui"
	"github.com/MKhiriev/internship-tracker/models"
)

const clientRole = "tracker-client"

var errNotSignedIn = errors.New("not signed in: run the login or register command first")

type App struct {
	buildInfo models.AppBuildInfo

	bootstrap Bootstrap
	newUI     UIFactory

	// overrides collects the persistent flags.
	overrides config.ClientConfig

	cfg      *config.ClientConfig
	services *service.ClientServices
	cleanup  func() error
	logger   *logger.Logger

	out    io.Writer
	errOut io.Writer
}

// Option customizes an [App].
type Option func(*App)

// WithBootstrap replaces how services are built.
func WithBootstrap(b Bootstrap) Option {
	return func(a *App) { a.bootstrap = b }
}

// WithUI replaces the interactive front end.
func WithUI(f UIFactory) Option {
	return func(a *App) { a.newUI = f }
}

// WithOutput redirects command output.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo: buildInfo,
		bootstrap: bootstrapServices,
		newUI: func(s *service.ClientServices, theme config.Theme, info models.AppBuildInfo, log *logger.Logger) UI {
			return tui.New(s, theme, info, log)
		},
		logger: logger.Nop(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command line args and reports failures on the error
// output in their user-facing form.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if a.cleanup != nil {
		if cerr := a.cleanup(); cerr != nil {
			a.logger.Err(cerr).Msg("releasing local storage")
		}
	}
	if err != nil {
		a.logger.Err(err).Msg("command failed")
		fmt.Fprintln(a.errOut, "Error:", service.UserMessage(err))
	}
	return err
}

// prepare loads the configuration and builds the services.
func (a *App) prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(a.overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.NewClientLogger(clientRole, cfg.DataDir, cfg.LogLevel)
	a.logger.Debug().Str("config", cfg.String()).Msg("client configured")

	services, cleanup, err := a.bootstrap(cmd.Context(), cfg, a.logger)
	if err != nil {
		return err
	}
	a.services = services
	a.cleanup = cleanup
	return nil
}

func bootstrapServices(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, func() error, error) {
	storages, err := store.NewClientStorages(ctx, cfg.DataDir, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create local storage: %w", err)
	}

	server, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		storages.Close()
		return nil, nil, fmt.Errorf("create server adapter: %w", err)
	}

	return service.NewClientServices(server, storages, log), storages.Close, nil
}

// currentUser resolves the stored session or fails with errNotSignedIn.
func (a *App) currentUser(ctx context.Context) (models.CurrentUser, error) {
	user, err := a.services.Auth.CurrentUser(ctx)
	if err != nil {
		return models.CurrentUser{}, err
	}
	if user == nil {
		return models.CurrentUser{}, errNotSignedIn
	}
	return *user, nil
}

// requestContext bounds one non-streaming command by the request timeout.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg == nil || a.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	// Register and delete are two calls; leave room for both.
	return context.WithTimeout(ctx, 2*a.cfg.RequestTimeout+time.Second)
}
