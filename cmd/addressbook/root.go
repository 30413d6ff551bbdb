package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"addressbook/internal/config"
	"addressbook/internal/domain"
	"addressbook/internal/handler"
	"addressbook/internal/logger"
	"addressbook/internal/middleware"
	"addressbook/internal/repl"
	"addressbook/internal/repository"
	"addressbook/internal/service"
)

// options holds command-line overrides of the environment configuration.
type options struct {
	storage string
	path    string
	days    int
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "addressbook",
		Short: "Contact manager with upcoming birthday reminders",
		Long: `addressbook stores contacts with phone numbers and birthdays.

Run without arguments to start the interactive assistant. Commands:
  add <name> <phone>                  add a contact
  change <name> <old> <new>           replace a phone
  remove-phone <name> <phone>         remove a phone
  phone <name>                        show phones
  delete <name>                       delete a contact
  all                                 list all contacts
  add-birthday <name> <DD.MM.YYYY>    set a birthday
  show-birthday <name>                show a birthday
  birthdays [days]                    upcoming congratulation days
  hello | close | exit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.storage, "storage", "", "storage driver: file, sqlite or memory (overrides ADDRESSBOOK_STORAGE)")
	flags.StringVar(&opts.path, "path", "", "storage file path (overrides ADDRESSBOOK_PATH)")
	flags.IntVar(&opts.days, "days", 0, "default window for the birthdays command (overrides ADDRESSBOOK_BIRTHDAY_DAYS)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(opts))

	return root
}

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [command] [args...]",
		Short: "Execute a single command and save the address book",
		Example: `  addressbook run add John 0123456789
  addressbook run birthdays 14`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), opts, args, cmd.OutOrStdout())
		},
	}
	// Everything after the command name belongs to it, e.g. "birthdays -1".
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// session wires the configured storage, service and handler together.
type session struct {
	logger  *zap.Logger
	repo    repository.Repository
	service *service.ContactService
	handler *handler.Handler
}

func openSession(ctx context.Context, opts *options) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	cfg = applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Output:  cfg.Log.Output,
		Verbose: opts.verbose,
	})
	if err != nil {
		return nil, err
	}

	repo, err := repository.Open(ctx, cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	log.Debug("storage opened",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("path", cfg.Storage.Path),
	)

	svc := service.NewContactService(repo, domain.RealClock{}, log)
	if err := svc.Load(ctx); err != nil {
		_ = repo.Close()
		_ = log.Sync()
		return nil, err
	}

	h := handler.New(svc, handler.Config{DefaultDays: cfg.Birthdays.Days},
		middleware.Recovery(log),
		middleware.Timing(log),
	)

	return &session{
		logger:  log,
		repo:    repo,
		service: svc,
		handler: h,
	}, nil
}

// close saves the address book and releases the storage.
func (s *session) close(ctx context.Context) error {
	saveErr := s.service.Save(ctx)
	closeErr := s.repo.Close()
	if err := errors.Join(saveErr, closeErr); err != nil {
		s.logger.Error("closing session", zap.Error(err))
		_ = s.logger.Sync()
		return err
	}
	_ = s.logger.Sync()
	return nil
}

func applyOverrides(cfg config.Config, opts *options) config.Config {
	if opts.storage != "" {
		cfg.Storage.Driver = opts.storage
	}
	if opts.path != "" {
		cfg.Storage.Path = opts.path
	}
	if opts.days > 0 {
		cfg.Birthdays.Days = opts.days
	}
	return cfg
}

func runInteractive(ctx context.Context, opts *options, in io.Reader, out io.Writer) error {
	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}

	runErr := repl.New(repl.Config{}, s.handler, in, out, s.logger).Run(ctx)

	// Save even when the loop stopped on a signal or read error.
	return errors.Join(runErr, s.close(context.WithoutCancel(ctx)))
}

func runOnce(ctx context.Context, opts *options, args []string, out io.Writer) error {
	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}

	reply, _ := s.handler.Handle(strings.Join(args, " "))
	if reply != "" {
		_, _ = fmt.Fprintln(out, reply)
	}

	return s.close(ctx)
}
