package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/app"
)

// runApp builds dependencies and launches the TUI. Logs would corrupt the
// full-screen display, so they are discarded.
func runApp(cmd *cobra.Command) error {
	rt, err := newRuntime(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(cmd.Context(), app.Options{
		Generator: rt.generator,
		Model:     rt.provider.ModelID(),
	})
}
