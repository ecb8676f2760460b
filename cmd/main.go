package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"trade-navigator-service/internal/api"
	"trade-navigator-service/internal/config"
	"trade-navigator-service/internal/consumer"
	"trade-navigator-service/internal/pricing"
	"trade-navigator-service/internal/repository"
	"trade-navigator-service/internal/service"
	"trade-navigator-service/migrations"
)

func connectDBEnv(host, port, user, pass, dbname string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("✅ Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("❌ Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, dbname, host, port, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", dbname, host, port, err)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := connectDBEnv(
		getenv("DB_HOST", "127.0.0.1"),
		getenv("DB_PORT", "3306"),
		getenv("DB_USER", "root"),
		os.Getenv("DB_PASS"),
		getenv("DB_NAME", "trade-navigator-db"),
	)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrateOptimizationResults(3, db); err != nil {
		log.Fatalf("Failed to migrate optimization_results table: %v", err)
	}
	if err := migrations.AutoMigrateUsageHistory(3, db); err != nil {
		log.Fatalf("Failed to migrate usage_history table: %v", err)
	}
	if err := migrations.AutoMigrateSuppliers(3, db); err != nil {
		log.Fatalf("Failed to migrate suppliers table: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_ADDR", "localhost:6379"),
	})

	kafkaWriter := config.NewKafkaWriter(config.UsageTopic)

	resultRepo := repository.NewResultRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)

	engine := pricing.NewEngine()
	optimizerService := service.NewOptimizerService(resultRepo, usageRepo, engine, rdb, kafkaWriter)
	supplierService := service.NewSupplierService(supplierRepo)

	optimizerHandler := api.NewOptimizerHandler(optimizerService)
	supplierHandler := api.NewSupplierHandler(supplierService)
	costHandler := api.NewCostHandler()

	usageConsumer := consumer.NewConsumer(usageRepo)
	go usageConsumer.StartKafkaConsumer()

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(1),
				Burst:     3,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	jwtMiddleware := echojwt.JWT([]byte(getenv("JWT_SECRET", "secret")))

	pricingGroup := e.Group("/pricing", jwtMiddleware)
	pricingGroup.POST("/optimize", optimizerHandler.OptimizePricing)
	pricingGroup.GET("/strategies", optimizerHandler.ListStrategies)
	pricingGroup.GET("/history", optimizerHandler.GetHistory)

	costGroup := e.Group("/costs", jwtMiddleware)
	costGroup.POST("/calculate", costHandler.CalculateCosts)

	supplierGroup := e.Group("/suppliers", jwtMiddleware)
	supplierGroup.POST("", supplierHandler.CreateSupplier)
	supplierGroup.GET("", supplierHandler.ListSuppliers)
	supplierGroup.GET("/:id", supplierHandler.GetSupplier)
	supplierGroup.PUT("/:id", supplierHandler.UpdateSupplier)
	supplierGroup.DELETE("/:id", supplierHandler.DeleteSupplier)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "trade-navigator-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
