package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/keej24/visita-bohol-system-sub001/api/middleware"
	"github.com/keej24/visita-bohol-system-sub001/usecases"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type Configuration struct {
	Env             string
	Port            string
	AllowedOrigins  []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func corsOption(conf Configuration) cors.Config {
	allowedOrigins := conf.AllowedOrigins
	if conf.Env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodDelete, http.MethodPatch,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func InitRouter(ctx context.Context, conf Configuration) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsOption(conf)))
	r.Use(middleware.NewLogging(logger, "/liveness", "/metrics"))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(metricsMiddleware)

	return r
}

func NewServer(
	router *gin.Engine,
	conf Configuration,
	uc usecases.Usecases,
	auth Authentication,
	logger *slog.Logger,
) *http.Server {
	addRoutes(router, uc, auth)

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: conf.RequestTimeout + 5*time.Second,
		ReadTimeout:  conf.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
		Handler:      router,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
