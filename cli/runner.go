package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/edulearn"
	"github.com/viant/edulearn/client/auth/transport"
	"github.com/viant/edulearn/internal/config"
	"github.com/viant/edulearn/internal/logging"
)

// ErrLoginRequired is returned when the session ended and the user has to log in again.
var ErrLoginRequired = errors.New("session expired, run `edulearn login`")

// Run parses args and executes the selected command, writing results to stdout.
func Run(args []string) error {
	return RunWithIO(context.Background(), args, os.Stdin, os.Stdout)
}

// RunWithIO executes the command selected by args using the given streams
func RunWithIO(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "edulearn"
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if parser.Active == nil {
		return errors.New("command was not specified")
	}
	cfg, err := config.Load(options.EnvFile)
	if err != nil {
		return err
	}
	options.apply(cfg)
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cli, err := edulearn.NewClient(ctx, &edulearn.ClientOptions{
		URL:           cfg.APIURL,
		Store:         cfg.SessionStore,
		SecretKey:     cfg.SecretKey,
		RedisAddr:     cfg.RedisAddr,
		RedisKey:      cfg.RedisKey,
		Timeout:       cfg.Timeout,
		SharedRefresh: cfg.SharedRefresh,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	service := &Service{options: options, client: cli, in: in, out: out, logger: logger}
	err = service.Execute(ctx, parser.Active.Name)
	if errors.Is(err, transport.ErrSessionExpired) {
		logger.Debugw("session ended", "error", err)
		return ErrLoginRequired
	}
	if err != nil {
		return fmt.Errorf("%v: %w", parser.Active.Name, err)
	}
	return nil
}

// apply overrides configuration with the flags that were set
func (o *Options) apply(cfg *config.Config) {
	if o.URL != "" {
		cfg.APIURL = o.URL
	}
	if o.Store != "" {
		cfg.SessionStore = o.Store
	}
	if o.SecretKey != "" {
		cfg.SecretKey = o.SecretKey
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.Timeout > 0 {
		cfg.Timeout = o.Timeout
	}
	if o.SharedRefresh {
		cfg.SharedRefresh = true
	}
}
