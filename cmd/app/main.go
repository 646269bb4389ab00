package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"ordering/cmd"
	httpserver "ordering/internal/adapters/in/http"
	postgrespkg "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/rediscache"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	if configs.SeedDemoData == "true" {
		if err := postgrespkg.SeedDemoData(context.Background(), gormDB, logger); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	analyticsCache := rediscache.NewAnalyticsCache(configs.RedisAddr)
	defer analyticsCache.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, analyticsCache, logger)

	refreshJob := app.CreateAnalyticsRefreshJob()
	if err := refreshJob.Start(); err != nil {
		log.Fatalf("Error starting analytics refresh job: %v", err)
	}
	defer refreshJob.Stop()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:    goDotEnvVariable("REDIS_ADDR"),
		SeedDemoData: goDotEnvVariable("SEED_DEMO_DATA"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(
		app.CreateCreateOrderPipeline(),
		app.CreateUpdateOrderStatusPipeline(),
		app.CreateGetOrderPipeline(),
		app.CreateGetOrdersPipeline(),
		app.CreateGetOrderAnalyticsPipeline(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
