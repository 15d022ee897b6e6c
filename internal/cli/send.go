package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/labsend/internal/selection"
	"github.com/interpretive-systems/labsend/internal/submit"
)

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send --roll ROLL --email EMAIL files...",
		Short: "Send files without opening the form",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sendURL, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := openLogger(cfg, "warn", cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			files, skipped := selection.FromPaths(args)
			for _, s := range skipped {
				logger.WithError(s).Warn("argument skipped")
			}
			sel := selection.New(files...)

			ctrl := newController(sendURL, logger)
			out, err := ctrl.Submit(cmd.Context(), fieldsFromFlags(cmd), sel.Files())
			var verr *submit.ValidationError
			if err != nil && !errors.As(err, &verr) {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Kind == submit.Success {
				fmt.Fprintf(w, "%s (%d file(s), %s)\n", out.Message, sel.Len(), selection.FormatSize(sel.TotalSize()))
				return nil
			}
			fmt.Fprintln(w, out.Message)
			return errors.New(out.Message)
		},
	}
	addFieldFlags(cmd)
	return cmd
}
