package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := openDatabase(c, newLogger)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.Project{}, &models.Skill{}, &models.Message{}); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	// Seed once at startup, before serving. Request handling never re-checks.
	if err := database.Seed(currentDB); err != nil {
		fmt.Printf("Error seeding database: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase opens the store selected by DB_TYPE: "postgres" for the
// deployed site, "sqlite" for local development.
func openDatabase(c map[string]string, gormLogger logger.Interface) (*gorm.DB, error) {
	dbType := config.GetString(c, "DB_TYPE", "postgres")
	fmt.Printf("DB_TYPE: %s\n", dbType)

	switch dbType {
	case "postgres":
		connStr := config.GetString(c, "DATABASE_URL", "")
		if connStr == "" {
			connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				config.GetString(c, "DB_HOST", "localhost"),
				config.GetString(c, "DB_USER", "postgres"),
				config.GetString(c, "DB_PASSWORD", ""),
				config.GetString(c, "DB_NAME", "portfolio"),
				config.GetString(c, "DB_PORT", "5432"),
				config.GetString(c, "DB_SSLMODE", "require"),
			)
		}
		fmt.Println("Connecting to Postgres database...")
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			Logger: gormLogger,
		})
	case "sqlite":
		path := config.GetString(c, "SQLITE_PATH", "portfolio.sqlite")
		fmt.Println("Connecting to SQLite database...")
		return gorm.Open(gormsqlite.Open(path), &gorm.Config{
			Logger: gormLogger,
		})
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
