// Package commands implementa o dashboardctl, a CLI de operação do painel
package commands

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	bearerToken string
	logLevel    string

	// loadConfig é trocado nos testes
	loadConfig = config.NewConfig
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dashboardctl",
	Short: "Operações do painel de estoque pela linha de comando",
	Long: `dashboardctl envia arquivos ao backend, gera previsões, dispara alertas
e acompanha os documentos do painel em tempo real.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		level := logLevel
		if level == "" {
			level = cfg.App.LogLevel
		}
		log.Setup(level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&bearerToken, "token", "t", os.Getenv("DASHBOARD_TOKEN"), "token repassado ao backend nos uploads")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "nível de log (padrão: LOG_LEVEL)")

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(alertCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(watchCmd)
}

func uploadService() *dispatching.UploadService {
	client := backendclient.NewClient(cfg.Backend)
	return dispatching.NewUploadService(client, client, cfg.Backend.MaxUploadBytes)
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
