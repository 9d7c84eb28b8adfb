package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/aurelion-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/aurelion-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/aurelion-dashboard-api/internal/api"
	"github.com/vfg2006/aurelion-dashboard-api/internal/config"
	"github.com/vfg2006/aurelion-dashboard-api/internal/scheduler"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/log"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleLineRepo := repository.NewSaleLineRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	counter, err := dashboarding.NewPopulationCounter(cfg.Dashboard.CountStrategy, catalogRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	dashboardService := dashboarding.NewService(cfg, saleLineRepo, counter)

	// O servidor só sobe com um snapshot válido
	if _, err := dashboardService.Reload(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset inicial")
	}

	datasetRefreshService := scheduler.NewDatasetRefreshService(dashboardService, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	authenticator := authenticating.NewService(userRepo, cfg)

	server, err := api.New(cfg, authenticator, dashboardService, datasetRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// changeToSourceDir permite encontrar o .env ao rodar com go run de qualquer lugar
func changeToSourceDir() {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return
	}
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar para o diretório do executável")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
