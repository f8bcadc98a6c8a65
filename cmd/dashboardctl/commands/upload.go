package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <arquivo.csv>",
	Short: "Envia um CSV de estoque ao backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

var predictCmd = &cobra.Command{
	Use:   "predict <arquivo.csv>",
	Short: "Envia um CSV de vendas e mostra as previsões",
	Args:  cobra.ExactArgs(1),
	RunE:  runPredict,
}

func readFile(name string) (domain.UploadFile, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return domain.UploadFile{}, fmt.Errorf("erro ao ler %s: %w", name, err)
	}
	return domain.UploadFile{Name: filepath.Base(name), Content: content}, nil
}

func runUpload(cmd *cobra.Command, args []string) error {
	file, err := readFile(args[0])
	if err != nil {
		return err
	}

	receipt, err := uploadService().UploadFile(cmd.Context(), file, backendclient.EndpointAdminUpload, bearerToken)
	if err != nil {
		return err
	}
	return printJSON(cmd, receipt)
}

func runPredict(cmd *cobra.Command, args []string) error {
	file, err := readFile(args[0])
	if err != nil {
		return err
	}

	result, err := uploadService().TrainAndPredict(cmd.Context(), file, bearerToken)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}
