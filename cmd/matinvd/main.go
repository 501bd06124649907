package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/matinv/internal/server"
	"github.com/katalvlaran/matinv/internal/version"
	"github.com/katalvlaran/matinv/matrix"
)

// envInt reads a positive integer from the environment, falling back to def.
func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("ignoring %s=%q: want a positive integer", name, v)
	}

	return def
}

func main() {
	port := envInt("PORT", 8080)
	maxOrder := envInt("MATINV_MAX_ORDER", server.DefaultMaxOrder)

	opts := []server.Option{server.WithMaxOrder(maxOrder)}
	// MATINV_MEMORY_BUDGET caps scratch floats across all in-flight requests.
	if budget := envInt("MATINV_MEMORY_BUDGET", 0); budget > 0 {
		opts = append(opts, server.WithAllocator(matrix.NewBudgetAllocator(budget)))
		log.Printf("scratch memory budget: %d floats", budget)
	}

	log.Printf("matinvd %s listening on port %d (max order %d)", version.Version, port, maxOrder)
	log.Println("API:")
	log.Println("    POST   /api/v1/invert - invert a matrix")
	log.Println("    GET    /healthz       - health check")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      server.New(opts...).Router(),
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
