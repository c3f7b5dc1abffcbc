package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"escrow/cmd"
	httpin "escrow/internal/adapters/in/http"
	"escrow/internal/adapters/out/postgres"
	"escrow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	gormDB, err := openDB(configs)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(gormDB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		logger.Error("failed to build composition root", "error", err)
		os.Exit(1)
	}

	if err := app.SeedOwner(context.Background(), configs.OwnerAddress); err != nil {
		logger.Error("failed to seed platform owner", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(
		app.CreateSweepSettlementsCommandHandler(),
		configs.SweepSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		OwnerAddress:        goDotEnvVariable("OWNER_ADDRESS"),
		EscrowAddress:       goDotEnvVariable("ESCROW_ADDRESS"),
		RefundWindowSeconds: goDotEnvVariable("REFUND_WINDOW_SECONDS"),
		SweepSchedule:       goDotEnvVariable("SWEEP_SCHEDULE"),
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

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateMarkOrderAsShippedCommandHandler(),
		app.CreateMarkOrderAsDeliveredCommandHandler(),
		app.CreateMarkOrderAsReturnedCommandHandler(),
		app.CreateRefundOrderCommandHandler(),
		app.CreateUpdateOwnersBalanceCommandHandler(),
		app.CreateWithdrawOwnersBalanceCommandHandler(),
		app.CreateAddDeliveryPartnerCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
		app.CreateGetOrderEventsQueryHandler(),
		app.CreateGetOwnersBalanceQueryHandler(),
		app.CreateIsDeliveryPartnerQueryHandler(),
		app.CreateGetOwnerQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
