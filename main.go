package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/P3RALT/SysEstoque/cmd"
	"github.com/P3RALT/SysEstoque/internal/config"
	"github.com/P3RALT/SysEstoque/internal/container"
	"github.com/P3RALT/SysEstoque/internal/core/routes"
	"github.com/P3RALT/SysEstoque/internal/database"
	"github.com/P3RALT/SysEstoque/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	log.Println("Connected to the database successfully!")

	if err := database.RunMigrations(db, "./migrations"); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	cfg := config.Load()
	appContainer := container.NewAppContainer(db, cfg)

	// One refresh at page-server start; afterwards only POST
	// /inventory/refresh or a restart replace the snapshot.
	refreshCtx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	if err := appContainer.Mirror.Refresh(refreshCtx); err != nil {
		log.Printf("Inventário inicial em modo exemplo: %v", err)
		middleware.UpdateHealthStatus("degraded")
	}
	cancel()

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.TimeoutMiddleware(60 * time.Second))

	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		panic(err)
	}
}
