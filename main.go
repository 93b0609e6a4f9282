package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ecofeast/internal/handlers"
	"ecofeast/internal/middleware"
	"ecofeast/internal/models"
	"ecofeast/internal/repositories"
	"ecofeast/internal/services"
	"ecofeast/pkg/idgen"
	"ecofeast/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("STORE_DRIVER", "memory") // memory | sqlite | postgres
	viper.SetDefault("DB_DSN", "ecofeast.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Initialize Persistence ---
	// The catalog, reservation, and task collections live behind a
	// key-value store; users get their own table when a database is used.
	store, userRepo, err := setupPersistence(viper.GetString("STORE_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to initialize persistence: %v", err)
	}

	itemRepo := repositories.NewKVItemRepository(store)
	reservationRepo := repositories.NewKVReservationRepository(store)
	taskRepo := repositories.NewKVTaskRepository(store)
	charityRepo := repositories.NewCharityRepository()

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
	} else {
		log.Println("RABBITMQ_URL not set; reservation events will not be published.")
	}

	// --- Initialize Services ---
	idGen := idgen.NewRandom()
	authService := services.NewAuthService(userRepo, jwtSecret)
	catalogService := services.NewCatalogService(itemRepo, userRepo, idGen)

	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	orderService := services.NewOrderService(reservationRepo, itemRepo, publisher, idGen)
	taskService := services.NewTaskService(taskRepo)

	var completer services.Completer
	if apiKey := viper.GetString("OPENAI_API_KEY"); apiKey != "" {
		completer = services.NewOpenAIClient(nil, apiKey,
			viper.GetString("OPENAI_BASE_URL"), viper.GetString("OPENAI_MODEL"))
	} else {
		log.Println("OPENAI_API_KEY not set; metadata predictions will use the static fallback.")
	}
	metadataService := services.NewMetadataService(completer)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	itemHandler := handlers.NewItemHandler(catalogService, metadataService)
	orderHandler := handlers.NewOrderHandler(orderService)
	taskHandler := handlers.NewTaskHandler(taskService)
	charityHandler := handlers.NewCharityHandler(charityRepo)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(apiV1)
	charityHandler.RegisterRoutes(apiV1)

	// Protected routes (require JWT authentication)
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	itemHandler.RegisterRoutes(protectedRoutes)
	orderHandler.RegisterRoutes(protectedRoutes)
	taskHandler.RegisterRoutes(protectedRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Listens for reservation events; a real deployment would hand these to
	// notification or impact-accounting workers.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for reservations...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received Reservation Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeReservationEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// setupPersistence builds the Store and user repository for the configured
// driver: "memory" for a throwaway in-process setup, "sqlite" or "postgres"
// for a database-backed one.
func setupPersistence(driver, dsn string) (repositories.Store, repositories.UserRepository, error) {
	switch driver {
	case "memory":
		return repositories.NewMemoryStore(), repositories.NewMockUserRepository(), nil
	case "sqlite", "postgres":
		var dialector gorm.Dialector
		if driver == "sqlite" {
			dialector = sqlite.Open(dsn)
		} else {
			dialector = postgres.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&models.User{}); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		store, err := repositories.NewGORMStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, repositories.NewGORMUserRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER: %s", driver)
	}
}
