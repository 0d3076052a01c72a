package main

import (
	"os"

	"github.com/shenikar/shelter_guard/internal/config"
	"github.com/shenikar/shelter_guard/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title Shelter Guard API
// @version 1.0
// @description Help requests, volunteer responses and nearby shelters.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by the access token.

// app - общие зависимости команд, заполняются в PersistentPreRunE
type app struct {
	cfg *config.Config
	log *logrus.Logger
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "shelter_guard",
		Short:         "Shelter Guard - help requests, volunteer responses and nearby shelters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Загрузка конфигурации
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			// Инициализация логгера
			a.log = logger.New(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	rootCmd.AddCommand(serveCmd(a))
	rootCmd.AddCommand(migrateCmd(a))

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
