package cli

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/information-sharing-networks/journey/internal/client"
	"github.com/information-sharing-networks/journey/internal/config"
	"github.com/information-sharing-networks/journey/internal/logger"
	"github.com/information-sharing-networks/journey/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.ClientEnvironment
	appLogger *slog.Logger
	apiClient *client.Client
)

var rootCmd = &cobra.Command{
	Use:               "journey",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Journal entry API CLI",
	Long: `journey calls the journal entry API served by journey-server.

The server is set with JOURNEY_API_URL (default http://localhost:8080).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewClientConfig()
		if err != nil {
			log.Printf("failed to load configuration: %v", err.Error())
			return err
		}

		appLogger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

		apiClient, err = client.New(cfg.APIURL, cfg.Timeout)
		if err != nil {
			return err
		}
		appLogger.Debug("using API", slog.String("url", cfg.APIURL))
		return nil
	},
}

func Execute() {
	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
}
