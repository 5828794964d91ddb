package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	jwtauth "github.com/xw1nchester/storefront-backend/internal/auth/jwt"
	"github.com/xw1nchester/storefront-backend/internal/config"
	heartdb "github.com/xw1nchester/storefront-backend/internal/heart/db"
	hearthandler "github.com/xw1nchester/storefront-backend/internal/heart/handler"
	heartservice "github.com/xw1nchester/storefront-backend/internal/heart/service"
	"github.com/xw1nchester/storefront-backend/internal/logging"
	storedb "github.com/xw1nchester/storefront-backend/internal/store/db"
	storehandler "github.com/xw1nchester/storefront-backend/internal/store/handler"
	storeservice "github.com/xw1nchester/storefront-backend/internal/store/service"
	uploadhandler "github.com/xw1nchester/storefront-backend/internal/upload/handler"
	uploadservice "github.com/xw1nchester/storefront-backend/internal/upload/service"
	minioclient "github.com/xw1nchester/storefront-backend/pkg/client/minio"
	pgclient "github.com/xw1nchester/storefront-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/storefront-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	"github.com/swaggo/http-swagger/v2"
	_ "github.com/xw1nchester/storefront-backend/docs"
)

type App struct {
	HTTPServer *http.Server
	pgClient   *pgxpool.Pool
	log        *zap.Logger
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	ctx := context.Background()

	pgClient, err := pgclient.NewClient(
		ctx,
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	minioClient, err := minioclient.New(
		ctx,
		minioclient.Config{
			Endpoint:        cfg.Minio.Endpoint,
			AccessKeyID:     cfg.Minio.AccessKeyID,
			SecretAccessKey: cfg.Minio.SecretAccessKey,
			UseSSL:          cfg.Minio.UseSSL,
			Bucket:          cfg.Minio.Bucket,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		logging.Middleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		txManager := pgtx.NewPgManager(pgClient)

		authMiddleware := jwtauth.NewMiddleware(log, jwtauth.NewManager(cfg.JWT))

		storeRepository := storedb.New(pgClient, log)

		storeService := storeservice.New(storeRepository, txManager, log)

		log.Info("register store handlers")

		storehandler.New(storeService, authMiddleware, log).Register(r)

		heartRepository := heartdb.New(pgClient, log)

		heartService := heartservice.New(heartRepository, storeService, txManager, log)

		log.Info("register heart handlers")

		hearthandler.New(heartService, authMiddleware, log).Register(r)

		uploadService := uploadservice.New(minioClient, cfg.Minio.Bucket, log)

		log.Info("register upload handlers")

		uploadhandler.New(uploadService, authMiddleware, log).Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
		pgClient:   pgClient,
		log:        log,
	}
}

func (a *App) MustRun() {
	a.log.Info("starting server", zap.String("addr", a.HTTPServer.Addr))

	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the
// database pool.
func (a *App) Shutdown(ctx context.Context) error {
	defer a.pgClient.Close()

	return a.HTTPServer.Shutdown(ctx)
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
