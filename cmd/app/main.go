package main

import (
	"fmt"
	"log/slog"
	"os"

	"driverhub/cmd"
	httpin "driverhub/internal/adapters/in/http"
	"driverhub/internal/adapters/out/postgres/driverrepo"
	"driverhub/internal/adapters/out/postgres/notificationrepo"
	"driverhub/internal/adapters/out/postgres/orderrepo"
	"driverhub/internal/adapters/out/postgres/penaltyrepo"
	"driverhub/internal/adapters/out/postgres/reviewrepo"
	"driverhub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateCloseExpiredShiftsCommandHandler(),
		configs.ShiftCloseCronSpec,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		ShiftCloseCronSpec: goDotEnvVariable("SHIFT_CLOSE_CRON_SPEC"),
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
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&driverrepo.DriverDTO{},
		&driverrepo.SessionDTO{},
		&orderrepo.OrderDTO{},
		&penaltyrepo.PenaltyDTO{},
		&notificationrepo.NotificationDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateRegisterDriverCommandHandler(),
		app.CreateUpdateDriverProfileCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateStartShiftCommandHandler(),
		app.CreateEndShiftCommandHandler(),
		app.CreateSubmitPenaltyAppealCommandHandler(),
		app.CreateMarkNotificationReadCommandHandler(),
		app.CreateMarkAllNotificationsReadCommandHandler(),
		app.CreateGetDriverProfileQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersByDayQueryHandler(),
		app.CreateRecentActivityQueryHandler(),
		app.CreateEarningsSummaryQueryHandler(),
		app.CreateEarningsRangeQueryHandler(),
		app.CreateTrackTimeQueryHandler(),
		app.CreateListPenaltiesQueryHandler(),
		app.CreateListNotificationsQueryHandler(),
		app.CreateListReviewsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
