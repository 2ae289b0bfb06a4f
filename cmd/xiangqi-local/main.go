package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
	"xiangqi/internal/server/ws"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("ignoring %s=%q: not a duration", key, v)
	}
	return def
}

func main() {
	addr := flag.String("addr", getenv("XIANGQI_ADDR", ":2888"), "listen address")
	webDir := flag.String("web", getenv("XIANGQI_WEB", ""), "optional directory with static files served at /")
	origins := flag.String("origins", getenv("XIANGQI_ORIGINS", ""), "comma-separated websocket origin patterns")
	grace := flag.Duration("shutdown", getdur("XIANGQI_SHUTDOWN", 5*time.Second), "graceful shutdown timeout")
	flag.Parse()

	var patterns []string
	for _, o := range strings.Split(*origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			patterns = append(patterns, o)
		}
	}

	h := httpserver.NewHandler(game.NewManager(), ws.NewHub(patterns...))
	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewMux(h, *webDir),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), *grace)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
