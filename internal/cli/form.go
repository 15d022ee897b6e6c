package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/interpretive-systems/labsend/internal/logging"
	"github.com/interpretive-systems/labsend/internal/selection"
	"github.com/interpretive-systems/labsend/internal/theme"
	"github.com/interpretive-systems/labsend/internal/tui"
)

func newFormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form [files...]",
		Short: "Open the upload form (default command)",
		Args:  cobra.ArbitraryArgs,
		RunE:  runForm,
	}
	addFieldFlags(cmd)
	return cmd
}

func runForm(cmd *cobra.Command, args []string) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("the form needs an interactive terminal; use `labsend send` instead")
	}

	cfg, sendURL, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// The TUI owns the screen, so logs only go to a file.
	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	files, skipped := selection.FromPaths(args)
	for _, s := range skipped {
		logger.WithError(s).Warn("argument skipped")
	}
	if len(args) > 0 && len(files) == 0 {
		return fmt.Errorf("no usable files among %d argument(s)", len(args))
	}

	return tui.Run(cmd.Context(), tui.Options{
		Controller: newController(sendURL, logger),
		Theme:      theme.Load(configDir(cmd), cfg.Theme),
		Log:        logger.WithField("cmd", "form"),
		Fields:     fieldsFromFlags(cmd),
		Files:      files,
	})
}
