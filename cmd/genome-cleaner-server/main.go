// Command genome-cleaner-server provides a REST API for sequence cleaning.
//
// Usage:
//
//	genome-cleaner-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/noomesk/genome-cleaner/api/handlers"
	"github.com/noomesk/genome-cleaner/api/middleware"
	"github.com/noomesk/genome-cleaner/pkg/genomecleaner"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/process", handlers.ProcessHandler)
		r.Post("/validate", handlers.ValidateHandler)
		r.Post("/summary", handlers.SummaryHandler)
		r.Post("/clean", handlers.CleanHandler)
		r.Post("/format", handlers.FormatHandler)
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Genome Cleaner API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #238636; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>Genome Cleaner API</h1>
    <p>Validate and clean FASTA/FASTQ sequence data.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/process</code>
        <p>Run the full pipeline and return the complete report.</p>
        <pre>{"content": ">seq1\nACGT\n", "sanitize": true, "min_length": 20}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/validate</code>
        <p>Return the per-record validation table.</p>
        <pre>{"content": ">seq1\nACGT\n", "min_length": 20}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/summary</code>
        <p>Return the dataset summary only.</p>
        <pre>{"content": ">seq1\nACGT\n"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/clean</code>
        <p>Return cleaned FASTA text (uppercase, illegal characters replaced with N).</p>
        <pre>{"content": ">seq1\nacxt\n"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/format</code>
        <p>Detect whether content is FASTA or FASTQ.</p>
        <pre>{"content": "@read1\nACGT\n+\nIIII\n"}</pre>
    </div>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("%s serving on http://%s\n", genomecleaner.Info(), addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
