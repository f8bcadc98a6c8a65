package commands

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dispatching"
)

var (
	alertTarget  string
	alertMessage string
	alertChannel string
	notifyPhone  string
)

var alertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Dispara um alerta por SMS ou Telegram",
	RunE:  runAlert,
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Pede ao backend para verificar o estoque e notificar o telefone",
	RunE:  runNotify,
}

func init() {
	alertCmd.Flags().StringVar(&alertTarget, "target", "", "telefone (sms) ou tg:<chat id> (telegram)")
	alertCmd.Flags().StringVarP(&alertMessage, "message", "m", "", "texto do alerta")
	alertCmd.Flags().StringVar(&alertChannel, "channel", "", "sms ou telegram (padrão: ALERTS_CHANNEL)")

	notifyCmd.Flags().StringVar(&notifyPhone, "phone", "", "telefone que recebe a notificação")
	_ = notifyCmd.MarkFlagRequired("phone")
}

func runAlert(cmd *cobra.Command, args []string) error {
	channel := alertChannel
	if channel == "" {
		channel = cfg.Alerts.Channel
	}

	var sender dispatching.AlertSender = backendclient.NewClient(cfg.Backend)
	if channel == "telegram" {
		telegramSender, err := telegram.NewSender(cfg.Alerts, "", nil)
		if err != nil {
			return err
		}
		sender = telegramSender
	}

	service := dispatching.NewAlertService(sender, channel, cfg.Backend.Timeout)
	ack, err := service.SendAlert(alertTarget, alertMessage)
	if err != nil {
		return err
	}
	// A CLI espera o envio antes de sair; o servidor não espera
	service.Wait()

	return printJSON(cmd, ack)
}

func runNotify(cmd *cobra.Command, args []string) error {
	result, err := uploadService().CheckAndNotify(cmd.Context(), notifyPhone)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}
