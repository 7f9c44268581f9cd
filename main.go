package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gopalnp/personal-site-backend/api"
	"github.com/gopalnp/personal-site-backend/cache"
	"github.com/gopalnp/personal-site-backend/config"
	"github.com/gopalnp/personal-site-backend/database"
	"github.com/gopalnp/personal-site-backend/models"
	"github.com/gopalnp/personal-site-backend/services"
	"github.com/gopalnp/personal-site-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoURI := config.GetString(c, "MONGODB_URI", "mongodb://localhost:27017")
	client, err := database.Connect(ctx, mongoURI)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			fmt.Printf("Error disconnecting from database: %v\n", err)
		}
	}()

	dbName := config.GetString(c, "MONGODB_DB", "personal_site")
	db := database.New(client.Database(dbName))

	if err := db.EnsureIndexes(ctx); err != nil {
		fmt.Printf("Error ensuring indexes: %v\n", err)
		os.Exit(1)
	}

	// If seeding the admin user, run the seed and exit
	if config.GetBool(c, "CREATE_ADMIN", false) {
		if err := createAdmin(ctx, db, c); err != nil {
			fmt.Printf("Error creating admin user: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Admin user created")
		return
	}

	redisClient := cache.NewClient(
		config.GetString(c, "REDIS_ADDR", "localhost:6379"),
		config.GetString(c, "REDIS_PASSWORD", ""),
		config.GetInt(c, "REDIS_DB", 0),
	)
	defer redisClient.Close()

	revalidator := services.NewRevalidator(cache.NewRedisPageCache(redisClient.Client))
	revalidator.Start()
	defer revalidator.Stop()

	sessionSecret := config.GetString(c, "SESSION_SECRET", "")
	if sessionSecret == "" {
		fmt.Println("SESSION_SECRET is required. Exiting...")
		os.Exit(1)
	}
	sessionTTL := time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 24)) * time.Hour

	deps := api.Dependencies{
		Auth:        services.NewAuthService(db.UserRepo(), sessionSecret, sessionTTL),
		Revalidator: revalidator,
		Orderer:     services.NewOrderer(db.TimelineRepo()),
		Mailer:      services.NewMailer(c),
		Redis:       redisClient,
	}

	// Image uploads are only available when a bucket is configured.
	if bucket := config.GetString(c, "S3_BUCKET", ""); bucket != "" {
		region := config.GetString(c, "S3_REGION", "us-east-1")
		images, err := storage.NewS3ImageStore(ctx, bucket, region)
		if err != nil {
			fmt.Printf("Error initializing image store: %v\n", err)
			os.Exit(1)
		}
		deps.Images = images
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db, deps)
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

// createAdmin seeds the admin user from ADMIN_NAME, ADMIN_EMAIL and
// ADMIN_PASSWORD. Fails if a user with the same email already exists.
func createAdmin(ctx context.Context, db database.Database, c map[string]string) error {
	email := config.GetString(c, "ADMIN_EMAIL", "")
	password := config.GetString(c, "ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := models.User{
		Name:         config.GetString(c, "ADMIN_NAME", "Admin"),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	_, err = db.UserRepo().Insert(ctx, user)
	return err
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
