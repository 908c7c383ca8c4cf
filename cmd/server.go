package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/keej24/visita-bohol-system-sub001/api"
	"github.com/keej24/visita-bohol-system-sub001/infra"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:             utils.GetEnv("ENV", "development"),
		Port:            utils.GetRequiredEnv[string]("PORT"),
		AllowedOrigins:  []string{utils.GetEnv("VISITA_APP_URL", "")},
		RequestTimeout:  time.Duration(utils.GetEnv("REQUEST_TIMEOUT_SECOND", 15)) * time.Second,
		ShutdownTimeout: time.Duration(utils.GetEnv("SHUTDOWN_TIMEOUT_SECOND", 20)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "visita"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
	}
	blobConfig := infra.BlobConfig{
		ChurchMediaBucketUrl: utils.GetEnv("CHURCH_MEDIA_BUCKET_URL", "file:///tmp/visita-media"),
	}
	jwtSigningKey := utils.GetRequiredEnv[string]("AUTHENTICATION_JWT_SIGNING_KEY")

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx,
		pgConfig.GetConnectionString(), pgConfig.MaxPoolConnections)
	if err != nil {
		return errors.Wrap(err, "failed to create postgres connection pool")
	}
	defer pool.Close()

	executorGetter := repositories.NewExecutorGetter(pool)
	uc := usecases.NewUsecases(
		executor_factory.NewDbExecutorFactory(executorGetter),
		repositories.NewVisitaDbRepository(),
		repositories.NewBlobRepository(),
		blobConfig,
	)

	router := api.InitRouter(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc, api.NewAuthentication([]byte(jwtSigningKey)), logger)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, fmt.Sprintf("starting server on port %s", apiConfig.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, fmt.Sprintf("error serving the app: %v", err))
		}
		logger.InfoContext(ctx, "server stopped")
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), apiConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error during server shutdown")
	}
	return nil
}
