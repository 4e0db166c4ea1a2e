package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zapcore"

	"bscout/internal/config"
	"bscout/internal/core"
	"bscout/internal/db"
	"bscout/internal/ethereum"
	"bscout/internal/filters"
	"bscout/internal/http/handler"
	"bscout/internal/http/handler/middleware"
	"bscout/internal/http/server"
	"bscout/internal/metrics"
	"bscout/internal/poller"
	"bscout/internal/repository"
	"bscout/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("bscout", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewIndexRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(cfg.RPCEndpoint)
	if err != nil {
		logger.Errorw("rpc node connection failed", "error", err)
		return err
	}

	nodeService := ethereum.NewNodeService(client)

	trackedContracts := cfg.TrackedContracts
	if len(trackedContracts) == 0 {
		trackedContracts = filters.DefaultDeFiContracts()
	}

	indexerMetrics := metrics.NewIndexerMetrics(prometheus.DefaultRegisterer)
	metrics.InitMetricsServer(logger, cfg.MetricsAddress)

	// block processor
	processor := core.NewBlockProcessor(
		logger,
		repo,
		nodeService,
		cfg.LargeThresholdBNB,
		cfg.TrackedTokens)

	// poll scheduler
	poll := poller.NewPoller(
		logger,
		nodeService,
		processor,
		repo,
		indexerMetrics,
		cfg.PollInterval,
		cfg.MaxReconnects,
		cfg.ReconnectDelay)

	// handler
	expHandler := handler.NewExplorerHandler(logger, repo, trackedContracts)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.GetStats, expHandler.HandleGetStats)
	mux.HandleFunc(handler.GetTransactions, expHandler.HandleGetTransactions)
	mux.HandleFunc(handler.GetFailedTransactions, expHandler.HandleGetFailedTransactions)
	mux.HandleFunc(handler.GetTransaction, expHandler.HandleGetTransaction)
	mux.HandleFunc(handler.GetLargeTransfers, expHandler.HandleGetLargeTransfers)
	mux.HandleFunc(handler.GetTokenTransfers, expHandler.HandleGetTokenTransfers)
	mux.HandleFunc(handler.GetChartBlocks, expHandler.HandleGetChartBlocks)
	mux.HandleFunc(handler.GetAddress, expHandler.HandleGetAddress)
	mux.HandleFunc(handler.GetHealth, expHandler.HandleGetHealth)

	srv := server.NewHTTP(logger, hdlr, cfg.APIPort)
	return run(srv, poll, dbConn)
}

func run(srv *server.HTTPServer, poll *poller.Poller, dbConn *db.PostgresDB) error {
	// expect a signal to gracefully shut everything down
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	pollErrChan := make(chan error, 1)
	go func() {
		pollErrChan <- poll.Run(context.Background())
	}()

	srvErrChan := srv.Run()

	var err error
	pollDone := false
	select {
	case <-sig:
	case err = <-pollErrChan:
		pollDone = true
	case err = <-srvErrChan:
	}

	// the in-flight block finishes before Run returns, so the cursor is
	// never ahead of uncommitted writes
	poll.Stop()
	if !pollDone {
		if pollErr := <-pollErrChan; err == nil {
			err = pollErr
		}
	}

	sdErr := srv.Shutdown()
	if errors.Is(err, http.ErrServerClosed) {
		err = sdErr
	}

	if closeErr := dbConn.Close(); err == nil {
		err = closeErr
	}

	return err
}
