package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/lingoquiz/config"
	"github.com/lshigami/lingoquiz/database"
	_ "github.com/lshigami/lingoquiz/docs" // Swagger docs
	"github.com/lshigami/lingoquiz/internal/auth"
	userctrl "github.com/lshigami/lingoquiz/internal/controller/user"
	"github.com/lshigami/lingoquiz/internal/dto"
	"github.com/lshigami/lingoquiz/internal/event"
	"github.com/lshigami/lingoquiz/internal/logger"
	"github.com/lshigami/lingoquiz/internal/model"
	"github.com/lshigami/lingoquiz/internal/repository"
	"github.com/lshigami/lingoquiz/internal/service"
	"github.com/lshigami/lingoquiz/internal/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title LingoQuiz Session API
// @version 1.0
// @description Conversational quiz sessions for a language-learning chat application. One question per turn, scored and recorded on completion.
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewSessionBackend,
			NewRatingNotifier,
		),

		// Repositories
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewUserRepository,
		),

		// Services
		fx.Provide(
			service.NewScoreCalculatorService,
			service.NewAccessGateService,
			service.NewQuizCatalogService,
			service.NewAttemptRecorderService,
			func(cfg *config.Config, catalog service.QuizCatalogService) (service.StudyCoachService, error) {
				return service.NewStudyCoachService(cfg, catalog)
			},
			func(
				catalog service.QuizCatalogService,
				gate service.AccessGate,
				recorder service.AttemptRecorderService,
				notifier service.RatingNotifier,
				sessions session.Store,
				reviews session.ReviewStore,
				scorer service.ScoreCalculatorService,
			) service.QuizEngine {
				return service.NewQuizEngine(catalog, gate, recorder, notifier, sessions, reviews, scorer)
			},
		),

		fx.Provide(userctrl.NewQuizController),

		fx.Invoke(logger.Apply),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	return r
}

// NewSessionBackend picks where quiz sessions live. The memory backend keeps
// them in this process only.
func NewSessionBackend(lc fx.Lifecycle, cfg *config.Config) (session.Store, session.ReviewStore, error) {
	switch cfg.Session.Backend {
	case "memory", "":
		log.Info().Msg("Using in-memory quiz session store")
		store := session.NewMemoryStore()
		return store, store, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
				}
				log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Session.TTL).Msg("Using Redis quiz session store")
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		store := session.NewRedisStore(client, cfg.Session.TTL)
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unsupported session backend %q", cfg.Session.Backend)
	}
}

func NewRatingNotifier(lc fx.Lifecycle, cfg *config.Config) (service.RatingNotifier, error) {
	publisher, err := event.NewRatingPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing rating event publisher...")
			return publisher.Close()
		},
	})
	return publisher, nil
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
) {
	api := router.Group("/api/v1")
	if cfg.Auth.JWTSecret != "" {
		api.Use(auth.NewTokenVerifier(cfg.Auth.JWTSecret).Middleware())
	} else {
		log.Warn().Msg("AUTH_JWT_SECRET is not set. API routes are unauthenticated.")
	}
	quizCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz session API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.User{},
		&model.QuizAttempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
