package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/interpretive-systems/labsend/internal/config"
	"github.com/interpretive-systems/labsend/internal/form"
	"github.com/interpretive-systems/labsend/internal/logging"
	"github.com/interpretive-systems/labsend/internal/submit"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "labsend [files...]",
		Short: "Send lab work to the submission endpoint",
		Long: "labsend: fill in your roll number and college email, pick files, " +
			"and send them to the lab submission endpoint in one request.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runForm,
	}

	pf := root.PersistentFlags()
	pf.StringP("endpoint", "e", "", "Endpoint base URL (default "+config.DefaultEndpoint+", env LABSEND_ENDPOINT)")
	pf.StringP("config", "c", config.DefaultPath(), "Path to config file")
	pf.String("log-file", "", "Write logs to this file (env LABSEND_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (env LABSEND_LOG_LEVEL)")
	addFieldFlags(root)

	// Add subcommands
	root.AddCommand(newFormCmd())
	root.AddCommand(newSendCmd())
	return root
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("roll", "", "Roll number")
	cmd.Flags().String("email", "", "College email")
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}

// resolveConfig loads the config file and environment, then applies flags.
func resolveConfig(cmd *cobra.Command) (config.Config, string, error) {
	path := mustGetStringFlag(cmd, "config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, "", err
	}
	cfg.Merge(config.Config{
		EndpointBaseURL: mustGetStringFlag(cmd, "endpoint"),
		LogFile:         mustGetStringFlag(cmd, "log-file"),
		LogLevel:        mustGetStringFlag(cmd, "log-level"),
	})
	sendURL, err := cfg.SendURL()
	if err != nil {
		return cfg, "", err
	}
	return cfg, sendURL, nil
}

func configDir(cmd *cobra.Command) string {
	if p := mustGetStringFlag(cmd, "config"); p != "" {
		return filepath.Dir(p)
	}
	return config.Dir()
}

func fieldsFromFlags(cmd *cobra.Command) form.Fields {
	return form.New(mustGetStringFlag(cmd, "roll"), mustGetStringFlag(cmd, "email"))
}

// newController wires the logger and the send URL into a controller.
func newController(sendURL string, logger *logrus.Logger) *submit.Controller {
	return submit.NewController(sendURL, submit.WithLogger(logrus.NewEntry(logger)))
}

func openLogger(cfg config.Config, fallbackLevel string, cmd *cobra.Command) (*logrus.Logger, func() error, error) {
	level := cfg.LogLevel
	if cfg.LogFile == "" && !cmd.Flags().Changed("log-level") && os.Getenv("LABSEND_LOG_LEVEL") == "" {
		level = fallbackLevel
	}
	return logging.New(cfg.LogFile, level, cmd.ErrOrStderr())
}
