package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"turisflow/internal/clients/gentext"
	"turisflow/internal/clients/geocode"
	intconfig "turisflow/internal/config"
	router "turisflow/internal/http"
	"turisflow/internal/http/handlers"
	"turisflow/internal/ws"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	// Collaborators
	var geocoder geocode.Geocoder = geocode.NewNominatimClient(env.NominatimBaseURL)
	if env.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     env.RedisAddr,
			Password: env.RedisPassword,
		})
		geocoder = geocode.NewCachedGeocoder(geocoder, rdb)
		defer rdb.Close()
	}
	handlers.SetGeocoder(geocoder)
	handlers.SetDrafter(gentext.NewGeminiClient(env.GeminiBaseURL, env.GeminiAPIKey))
	handlers.SetHub(ws.NewHub())
	handlers.SetJWTSecret(env.JWTSecret)

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("turisflow ouvindo em http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("falha ao iniciar o servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("encerrando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown falhou: %v", err)
	}

	log.Println("servidor encerrado.")
}
