package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/internship-tracker/internal/adapter"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

// Command builds the command tree. A new tree is built per call so an App
// can be executed more than once in tests.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:               "tracker",
		Short:             "Track internship applications",
		Long:              "tracker keeps a live list of your internship applications. Run it without a command to open the dashboard.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, err := a.services.Preferences.LoadTheme(cmd.Context(), a.cfg.Theme)
			if err != nil {
				a.logger.Err(err).Msg("loading saved theme, using the configured one")
				theme = a.cfg.Theme
			}
			return a.newUI(a.services, theme, a.buildInfo, a.logger).Run(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.overrides.ServerAddress, "server", "a", "", "tracker server base URL")
	flags.StringVarP(&a.overrides.DataDir, "data-dir", "d", "", "directory for the local session and the log file")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVarP(&a.overrides.JSONFilePath, "config", "c", "", "path to a JSON config file")
	flags.DurationVar(&a.overrides.RequestTimeout, "timeout", 0, "timeout of a single request")

	root.AddCommand(
		a.versionCommand(),
		a.configCommand(),
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.listCommand(),
		a.watchCommand(),
		a.addCommand(),
		a.updateCommand(),
		a.deleteCommand(),
	)
	return root
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, a.buildInfo.String())

			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			version, err := a.services.Server.Version(ctx)
			if err != nil {
				a.logger.Err(err).Msg("fetching server version")
				version = "unavailable"
			}
			fmt.Fprintf(a.out, "Server version: %s\n", version)
			return nil
		},
	}
}

func (a *App) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, a.cfg.String())
			return nil
		},
	}
}

func (a *App) registerCommand() *cobra.Command {
	var reg models.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			user, err := a.services.Auth.Register(ctx, reg)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Signed up as %s.\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "account password, at least 6 characters")
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "last name")
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			user, err := a.services.Auth.Login(ctx, creds)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Signed in as %s.\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.Auth.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Signed out.")
			return nil
		},
	}
}

type viewFlags struct {
	status string
	sort   string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", string(models.FilterAll), "show only one status: All, Applied, Interviewing, Rejected or Offer")
	cmd.Flags().StringVar(&f.sort, "sort", string(models.SortDeadlineDesc), "deadline order: deadline-asc or deadline-desc")
}

func (f *viewFlags) parse() (models.StatusFilter, models.SortOrder, error) {
	filter, err := parseStatusFilter(f.status)
	if err != nil {
		return "", "", err
	}
	order := models.SortOrder(strings.ToLower(f.sort))
	if !order.Valid() {
		return "", "", fmt.Errorf("unknown sort order %q", f.sort)
	}
	return filter, order, nil
}

func (a *App) listCommand() *cobra.Command {
	var view viewFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print your internships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, order, err := view.parse()
			if err != nil {
				return err
			}
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			set, err := a.firstSnapshot(cmd.Context(), user.UserID)
			if err != nil {
				return err
			}
			printRecords(a.out, service.DeriveView(set.Records, filter, order))
			return nil
		},
	}

	view.register(cmd)
	return cmd
}

// firstSnapshot opens a subscription, takes its first emission and closes
// it again.
func (a *App) firstSnapshot(ctx context.Context, userID string) (models.RecordSet, error) {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	sub, err := a.services.Sync.Subscribe(ctx, userID)
	if err != nil {
		return models.RecordSet{}, err
	}
	defer sub.Close()

	select {
	case set, ok := <-sub.Snapshots():
		if !ok {
			if err = sub.Err(); err != nil {
				return models.RecordSet{}, err
			}
			return models.RecordSet{}, ctx.Err()
		}
		return set, nil
	case <-ctx.Done():
		return models.RecordSet{}, ctx.Err()
	}
}

func (a *App) watchCommand() *cobra.Command {
	var view viewFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print your internships again whenever they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, order, err := view.parse()
			if err != nil {
				return err
			}
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			sub, err := a.services.Sync.Subscribe(cmd.Context(), user.UserID)
			if err != nil {
				return err
			}
			defer sub.Close()

			for set := range sub.Snapshots() {
				fmt.Fprintf(a.out, "%s  snapshot #%d\n", time.Now().Format(time.TimeOnly), set.Seq)
				printRecords(a.out, service.DeriveView(set.Records, filter, order))
			}
			return sub.Err()
		},
	}

	view.register(cmd)
	return cmd
}

type fieldFlags struct {
	fields models.InternshipFields
	status string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.fields.Company, "company", "", "company name")
	cmd.Flags().StringVar(&f.fields.Role, "role", "", "position title")
	cmd.Flags().StringVar(&f.fields.Link, "link", "", "job posting URL")
	cmd.Flags().StringVar(&f.fields.Deadline, "deadline", "", "application deadline, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.status, "status", string(models.DefaultStatus), "Applied, Interviewing, Rejected or Offer")
	cmd.Flags().StringVar(&f.fields.Notes, "notes", "", "free text notes")
}

// apply copies the flags the user set onto fields.
func (f *fieldFlags) apply(cmd *cobra.Command, fields models.InternshipFields) models.InternshipFields {
	changed := cmd.Flags().Changed
	if changed("company") {
		fields.Company = f.fields.Company
	}
	if changed("role") {
		fields.Role = f.fields.Role
	}
	if changed("link") {
		fields.Link = f.fields.Link
	}
	if changed("deadline") {
		fields.Deadline = f.fields.Deadline
	}
	if changed("status") {
		fields.Status = parseStatus(f.status)
	}
	if changed("notes") {
		fields.Notes = f.fields.Notes
	}
	return fields
}

func (a *App) addCommand() *cobra.Command {
	var input fieldFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an internship",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			edit := service.NewEditSession()
			edit.SetFields(input.apply(cmd, edit.Fields()))

			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			id, err := edit.CommitEdit(ctx, a.services.Sync, user.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Internship added: %s\n", id)
			return nil
		},
	}

	input.register(cmd)
	return cmd
}

func (a *App) updateCommand() *cobra.Command {
	var input fieldFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an internship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			rec, err := a.services.Server.GetInternship(ctx, args[0])
			if err != nil {
				if errors.Is(err, adapter.ErrNotFound) {
					return &service.NotFoundError{ID: args[0]}
				}
				return &service.ServiceError{Op: "update", Err: err}
			}

			edit := service.NewEditSession()
			edit.BeginEdit(rec)
			edit.SetFields(input.apply(cmd, edit.Fields()))

			if _, err = edit.CommitEdit(ctx, a.services.Sync, user.UserID); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Internship updated: %s\n", rec.ID)
			return nil
		},
	}

	input.register(cmd)
	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an internship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentUser(cmd.Context()); err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd.Context())
			defer cancel()

			if err := a.services.Sync.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Internship deleted: %s\n", args[0])
			return nil
		},
	}
}

func parseStatusFilter(value string) (models.StatusFilter, error) {
	for _, f := range models.StatusFilters {
		if strings.EqualFold(string(f), value) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", value)
}

// parseStatus folds case; unknown values are passed through for the
// record validation to reject.
func parseStatus(value string) models.Status {
	for _, s := range models.Statuses {
		if strings.EqualFold(string(s), value) {
			return s
		}
	}
	return models.Status(value)
}
