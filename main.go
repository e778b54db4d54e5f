package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file; every setting has a
	// default, so a missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	utils.InitValidator()
}

func setupRouter(notesService *usecase.NotesService) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.ClientInfoMiddleware())
	router.Use(middleware.RequestSizeLimiter(64 << 10))

	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	// Pages
	router.GET("/", func(c *gin.Context) {
		handler.HomeHandler(c, notesService)
	})
	router.GET("/list", func(c *gin.Context) {
		handler.ListHandler(c, notesService)
	})
	router.GET("/dashboard", handler.DashboardHandler)

	// Note mutations, redirect-after-post
	router.POST("/add", func(c *gin.Context) {
		handler.AddNoteHandler(c, notesService)
	})
	router.POST("/edit/:id", func(c *gin.Context) {
		handler.EditNoteHandler(c, notesService)
	})
	router.POST("/delete/:id", func(c *gin.Context) {
		handler.DeleteNoteHandler(c, notesService)
	})

	// CSV export
	router.GET("/download_csv", func(c *gin.Context) {
		handler.DownloadCSVHandler(c, notesService)
	})

	// Operational endpoints
	healthHandler := handler.NewHealthHandler(notesService)
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	dbConfig := config.LoadDatabaseConfig()
	db, err := repository.OpenDatabase(dbConfig)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", dbConfig.Path, err)
	}
	defer db.Close()

	notesRepo := repository.GetNotesRepo(db)
	notesService := &usecase.NotesService{
		NotesRepo: notesRepo,
	}

	router := setupRouter(notesService)

	port := utils.GetEnvAsString("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-signalChan
		log.Printf("Caught signal %s, shutting down", sig)

		timeout := utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Println("Server shutdown complete")
}
