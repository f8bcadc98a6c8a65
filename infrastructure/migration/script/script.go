package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/pgstore"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore/seed"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
)

func main() {
	adminEmail := flag.String("admin-email", os.Getenv("ADMIN_EMAIL"), "email do usuário administrador a criar")
	adminPassword := flag.String("admin-password", os.Getenv("ADMIN_PASSWORD"), "senha do usuário administrador")
	adminName := flag.String("admin-name", "Admin", "nome do usuário administrador")
	demo := flag.Bool("demo", false, "grava os documentos de demonstração do painel")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := migration.Run(ctx, conn, cfg.DocStore.NotifyChannel); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
	logrus.Infof("Migrações aplicadas em %v", time.Since(startTime))

	if *adminEmail != "" {
		createAdmin(ctx, conn, *adminName, *adminEmail, *adminPassword)
	}

	if *demo {
		store, err := pgstore.New(conn, cfg.DocStore.NotifyChannel)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir document store")
		}
		defer store.Close()

		if err := seed.Demo(ctx, store); err != nil {
			logrus.WithError(err).Fatal("Erro ao gravar documentos de demonstração")
		}
	}

	logrus.Info("Script de migração concluído")
}

// createAdmin cria ou atualiza o usuário; o acesso de administrador vem de AUTH_ADMIN_EMAILS
func createAdmin(ctx context.Context, conn *postgres.Connection, name, email, password string) {
	hash, err := authenticating.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Fatal("Senha do administrador inválida")
	}

	user, err := repository.NewUserRepository(conn).CreateUser(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar usuário administrador")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   email,
	}).Info("Usuário administrador gravado")
}
