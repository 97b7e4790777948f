package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/infrastructure/database/postgres"
	"github.com/vfg2006/storefront-saas-api/infrastructure/repository"
	"github.com/vfg2006/storefront-saas-api/internal/api"
	"github.com/vfg2006/storefront-saas-api/internal/config"
	"github.com/vfg2006/storefront-saas-api/internal/scheduler"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/authenticating"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/ledger"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/platform"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/reporting"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/stores"
	"github.com/vfg2006/storefront-saas-api/internal/usecases/traffic"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
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

	userRepo := repository.NewUserRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	ledgerRepo := repository.NewLedgerRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	pageViewRepo := repository.NewPageViewRepository(pgConn)
	snapshotRepo := repository.NewAnalyticsSnapshotRepository(pgConn)
	activityRepo := repository.NewAdminActivityRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	ledgerService := ledger.NewService(ledgerRepo)
	reportingService := reporting.NewService(ledgerRepo, orderRepo, subscriptionRepo)
	trafficService := traffic.NewService(pageViewRepo, snapshotRepo)
	platformService := platform.NewService(subscriptionRepo, orderRepo, activityRepo)
	storeService := stores.NewService(storeRepo, activityRepo)

	// Inicializa os agendadores de sincronização
	trafficSnapshotSyncService := scheduler.NewTrafficSnapshotSyncService(
		storeRepo,
		trafficService,
		cfg,
	)

	storeCountersSyncService := scheduler.NewStoreCountersSyncService(
		storeRepo,
		orderRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := trafficSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de tráfego")
	} else {
		logrus.Info("Agendador de snapshots de tráfego iniciado com sucesso")
	}

	if err := storeCountersSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de contadores de lojas")
	} else {
		logrus.Info("Agendador de contadores de lojas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		ledgerService,
		reportingService,
		trafficService,
		platformService,
		storeService,
		trafficSnapshotSyncService,
		storeCountersSyncService,
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
