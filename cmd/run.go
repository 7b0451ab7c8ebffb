package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, svc, err := openService()
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("starting tui", zap.String("exam", string(svc.ExamBody())))
	return app.Run(app.Options{
		Service: svc,
		Events:  st.EventRepo(),
		Logger:  logger,
	})
}
