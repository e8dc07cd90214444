package routes

import (
	"context"
	"os"
	"strings"
	"time"

	_ "shrijee_plots/docs"
	"shrijee_plots/internal/adapter/http/handlers"
	"shrijee_plots/internal/adapter/http/middleware"
	"shrijee_plots/internal/adapter/http/validation"
	repository2 "shrijee_plots/internal/adapter/persistence/repository"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/infrastructure/auth"
	"shrijee_plots/internal/infrastructure/cache"
	"shrijee_plots/internal/infrastructure/database"
	"shrijee_plots/internal/infrastructure/payments"
	"shrijee_plots/internal/infrastructure/scheduler"
	"shrijee_plots/internal/usecase"
	"shrijee_plots/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()
	validation.Register()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	job := getRoutes()
	if job != nil {
		job.Start()
		defer job.Stop()
	}

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() *scheduler.OverdueJob {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		logrus.Fatalf("[routes] dynamodb config failed: %v", err)
	}
	if isTruthy(os.Getenv("DYNAMODB_CREATE_TABLES")) {
		if err := database.EnsureTables(ctx, ddb, repository2.TableSpecs()); err != nil {
			logrus.Fatalf("[routes] dynamodb table setup failed: %v", err)
		}
	}

	plotRepo := repository2.NewPlotDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var idempotency interfaces.IIdempotencyStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := cache.NewRedisClient(ctx, addr)
		if err != nil {
			logrus.Warnf("Redis not reachable, idempotency keys disabled: %v", err)
		} else {
			idempotency = cache.NewRedisIdempotencyStore(rdb)
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logrus.Warnf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	tokens, err := auth.NewTokenService(os.Getenv("JWT_SECRET"), 0)
	if err != nil {
		logrus.Fatalf("[routes] auth setup failed: %v", err)
	}

	clock := schedule.SystemClock{}
	plotUseCase := usecase.NewPlotUseCase(plotRepo, bookingRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, plotRepo, idempotency, clock)
	if ttl, err := time.ParseDuration(os.Getenv("IDEMPOTENCY_TTL")); err == nil && ttl > 0 {
		bookingUseCase = bookingUseCase.WithIdempotencyTTL(ttl)
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, bookingRepo, plotRepo, paymentGateway, clock)
	overdueUseCase := usecase.NewOverdueUseCase(bookingRepo, clock)

	plotHandler := handlers.NewPlotHandler(plotUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase, overdueUseCase, clock)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, bookingUseCase)

	optionalAuth := middleware.Authenticate(tokens, false)
	requiredAuth := middleware.Authenticate(tokens, true)
	adminOnly := middleware.RequireRole(auth.RoleAdmin)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlotRoutes(v1, plotHandler, bookingHandler, optionalAuth, requiredAuth, adminOnly)
	addBookingRoutes(v1, bookingHandler, paymentHandler, requiredAuth, adminOnly)
	addPaymentRoutes(v1, paymentHandler, requiredAuth, adminOnly)

	job, err := scheduler.NewOverdueJob(overdueUseCase, os.Getenv("OVERDUE_SCAN_CRON"))
	if err != nil {
		logrus.Warnf("Overdue scan disabled: %v", err)
		return nil
	}
	return job
}

func setMiddlewares() {
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
