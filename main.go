package main

import (
	"time"

	"storefront/config"
	"storefront/controllers"
	"storefront/database"
	"storefront/logger"
	"storefront/repository"
	"storefront/routes"
	"storefront/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Env)
	defer log.Sync()

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Could not connect to MongoDB", zap.Error(err))
	}
	defer database.Close(client)
	log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal("Could not configure Redis", zap.Error(err))
	}
	if redisClient == nil {
		log.Warn("REDIS_URL not set, catalog cache disabled")
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	cache := services.NewCacheManager(redisClient, cfg.CatalogCacheTTL, log)

	authService := services.NewAuthService(userRepo, tokenService, services.NewPasswordValidator(), log)
	catalogService := services.NewCatalogService(productRepo, cache, log)
	cartService := services.NewCartService(userRepo, productRepo, log)
	addressService := services.NewAddressService(userRepo, log)
	orderService := services.NewOrderService(userRepo)

	stripeService := services.NewStripeService(cfg.StripeSecretKey, cfg.BaseURL)
	paymentService := services.NewPaymentService(stripeService, paymentRepo, log)

	var emailSender services.EmailSender
	if sender, err := services.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass); err != nil {
		log.Warn("Email transport disabled", zap.Error(err))
	} else {
		emailSender = sender
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.BaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		Product: controllers.NewProductController(catalogService),
		Cart:    controllers.NewCartController(cartService),
		Address: controllers.NewAddressController(addressService),
		Order:   controllers.NewOrderController(orderService),
		Payment: controllers.NewPaymentController(paymentService, cfg.PaymentCurrency),
		Email:   controllers.NewEmailController(emailSender, log),
	}, tokenService)

	log.Info("Storefront started", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error starting server", zap.Error(err))
	}
}
