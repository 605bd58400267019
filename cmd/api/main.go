package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"pet-cry-monitor/internal/router"
)

// @title Pet Cry Monitor API
// @version 1.0
// @description Backend de monitoreo de llantos de mascotas: usuarios, mascotas, llantos, inspección y predicción.
// @BasePath /
func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r, err := router.NewRouter(router.Options{}) // todo por env: JWT_SECRET, DB_DSN, DATA_DIR, AI_SERVER_API
	if err != nil {
		log.Fatalf("router setup: %v", err)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("starting server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
