package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/aurelion-dashboard-api/internal/api/handler"
	"github.com/vfg2006/aurelion-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/aurelion-dashboard-api/internal/config"
	"github.com/vfg2006/aurelion-dashboard-api/internal/scheduler"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/aurelion-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	dashboard dashboarding.Dashboarder,
	datasetSyncer scheduler.DatasetSyncer,
) (*Server, error) {
	if config == nil {
		return nil, errors.New("api: configuração ausente")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(dashboard)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Dashboard(dashboard)...),
		router.WithRoutes(handler.Dataset(dashboard, datasetSyncer)...),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           Chain(config, authenticator).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Chain monta os middlewares globais na ordem em que são executados
func Chain(config *config.Config, validator middleware.TokenValidator) alice.Chain {
	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(validator),
	)
}

// Handler expõe o handler HTTP completo, usado nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
