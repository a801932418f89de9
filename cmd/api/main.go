package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"minagallery/db"
	"minagallery/internal/handler"
	"minagallery/internal/repository"
	"minagallery/internal/store"
)

func main() {

	godotenv.Load()

	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	recordRepo := repository.NewRecordRepository(conn)
	viewStore := store.NewViewStateStore(redisClient)
	recreateSink := store.NewQueueRecreateSink(redisClient)

	galleryHandler := handler.NewGalleryHandler(recordRepo, viewStore, recreateSink)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Account-ID", "X-Session-ID"},
	}))

	r.GET("/gallery", galleryHandler.GetGallery)
	r.POST("/gallery/filters/motion", galleryHandler.CycleMotionFilter)
	r.POST("/gallery/filters/liked", galleryHandler.ToggleLikedFilter)
	r.POST("/gallery/filters/aspect", galleryHandler.CycleAspectFilter)
	r.POST("/gallery/reveal", galleryHandler.Reveal)
	r.POST("/gallery/playback", galleryHandler.Playback)
	r.DELETE("/gallery/:id", galleryHandler.DeleteItem)
	r.POST("/gallery/:id/recreate", galleryHandler.Recreate)
	r.GET("/gallery/:id/download", galleryHandler.Download)
	r.GET("/health", galleryHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
