package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading"
	"github.com/vfg2006/seller-ops-api/infrastructure/integrator/trading/tradingclient"
	"github.com/vfg2006/seller-ops-api/infrastructure/repository"
	"github.com/vfg2006/seller-ops-api/internal/api"
	"github.com/vfg2006/seller-ops-api/internal/config"
	"github.com/vfg2006/seller-ops-api/internal/scheduler"
	"github.com/vfg2006/seller-ops-api/internal/usecases/automation"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	listingRepo := repository.NewListingRepository(pgConn)
	relistHistoryRepo := repository.NewRelistHistoryRepository(pgConn)
	offerSentRepo := repository.NewOfferSentRepository(pgConn)
	soldItemRepo := repository.NewSoldItemRepository(pgConn)
	automationLogRepo := repository.NewAutomationLogRepository(pgConn)

	tradingClient := tradingclient.NewClient(cfg)
	tradingIntegrator := trading.New(cfg, tradingClient)

	automationService := automation.NewService(
		cfg,
		tradingIntegrator,
		listingRepo,
		relistHistoryRepo,
		offerSentRepo,
		soldItemRepo,
		automationLogRepo,
	)

	// Inicializa os agendadores de automação
	listingSyncService := scheduler.NewListingSyncService(automationService, cfg)
	staleCheckService := scheduler.NewStaleCheckService(automationService, cfg)
	offerCheckService := scheduler.NewOfferCheckService(automationService, cfg)
	feedbackCheckService := scheduler.NewFeedbackCheckService(automationService, cfg)

	// Inicia os agendadores em background
	if err := listingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de anúncios")
	} else {
		logrus.Info("Agendador de sincronização de anúncios iniciado com sucesso")
	}

	if err := staleCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de checagem de anúncios parados")
	} else {
		logrus.Info("Agendador de checagem de anúncios parados iniciado com sucesso")
	}

	if err := offerCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do lote de ofertas")
	} else {
		logrus.Info("Agendador do lote de ofertas iniciado com sucesso")
	}

	if err := feedbackCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pedidos de feedback")
	} else {
		logrus.Info("Agendador de pedidos de feedback iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		automationService,
		listingSyncService,
		staleCheckService,
		offerCheckService,
		feedbackCheckService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
