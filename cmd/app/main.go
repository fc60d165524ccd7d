package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"

	"lensdispatch/cmd"
	httpin "lensdispatch/internal/adapters/in/http"
	"lensdispatch/internal/adapters/out/postgres/auditlog"
	"lensdispatch/internal/adapters/out/postgres/boxrepo"
	"lensdispatch/internal/adapters/out/postgres/courierrepo"
	"lensdispatch/internal/adapters/out/postgres/grouprepo"
	"lensdispatch/internal/adapters/out/postgres/orderrepo"
	"lensdispatch/internal/adapters/out/postgres/returnrepo"
	"lensdispatch/internal/adapters/out/postgres/shipmentrepo"
	"lensdispatch/internal/adapters/out/postgres/storerepo"
	rediscache "lensdispatch/internal/adapters/out/redis"
	"lensdispatch/internal/core/ports"
	"lensdispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	groupCache := newGroupCache(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, groupCache)

	jobManager := jobs.NewJobManager(app.CreateReportStaleBoxesCommandHandler(), slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&grouprepo.DeliveryGroupDTO{},
		&storerepo.StoreDTO{},
		&boxrepo.BoxDTO{},
		&orderrepo.OrderDTO{},
		&courierrepo.CourierDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentBoxDTO{},
		&shipmentrepo.ConfirmationDTO{},
		&returnrepo.ReturnDTO{},
		&auditlog.ActivityLogDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// newGroupCache returns nil when no redis address is configured; the
// resolver falls back to the repository alone.
func newGroupCache(configs cmd.Config) ports.DeliveryGroupCache {
	if configs.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	return rediscache.NewGroupCache(client)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpin.NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateCourierCommandHandler(),
		app.CreateCreateStoreCommandHandler(),
		app.CreateUpdateStoreAddressCommandHandler(),
		app.CreateDeleteStoreCommandHandler(),
		app.CreateCreateBoxCommandHandler(),
		app.CreatePackOrderCommandHandler(),
		app.CreateMarkOrderPackedCommandHandler(),
		app.CreateReturnOrderCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateAttachBoxCommandHandler(),
		app.CreateDispatchShipmentCommandHandler(),
		app.CreateMarkShipmentInTransitCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateGetStoreQueryHandler(),
		app.CreateGetStoresInGroupQueryHandler(),
		app.CreateGetOpenShipmentsQueryHandler(),
		app.CreateGetBoxesAwaitingDispatchQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
