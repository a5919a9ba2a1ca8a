package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment form and JSON API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		addr := rt.cfg.Server.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}
		if rt.cfg.LogMode == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		log := rt.log.With("component", "http")
		srv := server.NewServer(server.RouterConfig{
			AssessmentHandler: server.NewAssessmentHandler(rt.generator, log),
			HealthHandler:     server.NewHealthHandler(),
			RatePerMinute:     rt.cfg.Server.RatePerMinute,
			Log:               log,
		})

		log.Info("listening", "addr", addr, "model", rt.provider.ModelID())
		return srv.Run(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}
