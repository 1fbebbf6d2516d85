package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/minimart/storefront/internal/api"
	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
	"github.com/minimart/storefront/internal/core/service"
	"github.com/minimart/storefront/internal/infrastructure/db/mongo"
	"github.com/minimart/storefront/internal/infrastructure/db/redis"
	"github.com/minimart/storefront/internal/infrastructure/queue"
	"github.com/minimart/storefront/internal/infrastructure/store/memory"
	"github.com/minimart/storefront/internal/pkg/config"
	"github.com/minimart/storefront/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// --- Store drivers ---
	var (
		userRepo    ports.UserRepository
		productRepo ports.ProductRepository
		auditRepo   ports.AuditRepository
		cartRepo    ports.CartRepository
		mongoDB     *gomongo.Database
		redisClient *goredis.Client
	)

	switch cfg.StoreDriver {
	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		users, err := mongo.NewUserRepository(ctx, db)
		if err != nil {
			log.Fatal().Err(err).Msg("mongo user repository init failed")
		}
		userRepo = users
		productRepo = mongo.NewProductRepository(db)
		auditRepo = mongo.NewAuditRepository(db)
		mongoDB = db
	case "memory":
		userRepo = memory.NewUserStore()
		productRepo = memory.NewProductStore()
		auditRepo = memory.NewAuditStore()
	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("unknown STORE_DRIVER")
	}

	switch cfg.CartDriver {
	case "redis":
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()
		cartRepo = redis.NewCartStore(client)
		redisClient = client
	case "memory":
		cartRepo = memory.NewCartStore()
	default:
		log.Fatal().Str("driver", cfg.CartDriver).Msg("unknown CART_DRIVER")
	}

	// --- Audit pipeline ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	// --- Core services ---
	var authOpts []service.AuthOption
	var userOpts []service.UserOption
	if cfg.EmailCaseInsensitive {
		authOpts = append(authOpts, service.WithCaseInsensitiveEmail())
		userOpts = append(userOpts, service.WithUserCaseInsensitiveEmail())
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log, authOpts...)
	userService := service.NewUserService(userRepo, log, userOpts...)
	productService := service.NewProductService(productRepo, dispatcher, log)
	cartService := service.NewCartService(cartRepo, dispatcher, log)

	seedAdmin(ctx, cfg, authService, log)

	e := api.NewRouter(api.Deps{
		AuthService:    authService,
		UserService:    userService,
		ProductService: productService,
		CartService:    cartService,
		JWTSecret:      cfg.JWTSecret,
		Logger:         log,
		Mongo:          mongoDB,
		Redis:          redisClient,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Str("cart", cfg.CartDriver).Msg("storefront api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// seedAdmin creates the bootstrap admin account when configured. An
// already-registered email is left untouched.
func seedAdmin(ctx context.Context, cfg *config.Config, auth *service.AuthService, log zerolog.Logger) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	admin, err := auth.RegisterAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			log.Debug().Msg("bootstrap admin already exists")
			return
		}
		log.Fatal().Err(err).Msg("bootstrap admin creation failed")
	}
	log.Info().Str("user_id", admin.ID).Msg("bootstrap admin created")
}
