// server exposes the what3words client over HTTP and records every
// successful lookup in Postgres.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v4/stdlib"

	"github.com/erwinmintiens/w3w-go/cmd/server/history"
	"github.com/erwinmintiens/w3w-go/pkg/env"
	"github.com/erwinmintiens/w3w-go/pkg/geocode"
	"github.com/erwinmintiens/w3w-go/pkg/logger"
	"github.com/erwinmintiens/w3w-go/pkg/middleware"
	"github.com/erwinmintiens/w3w-go/pkg/what3words"
)

const ServiceName = "server"

func init() {
	logger.InitGlobalSlog(ServiceName)
}

func main() {
	databaseURL, err := env.DatabaseURL()
	if err != nil {
		panic(err)
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		panic(fmt.Errorf("unable to open db conn: %w", err))
	}

	defer func() {
		err = db.Close()
		if err != nil {
			slog.Error("error closing db connection", "error", err.Error())
		}
	}()

	if err := db.Ping(); err != nil {
		panic(fmt.Errorf("unable to ping database: %w", err))
	} else {
		slog.Info("connected to the database successfully")
	}

	apiKey, err := env.What3WordsAPIKey()
	if err != nil {
		panic(err)
	}

	srv := &server{
		w3w:      what3words.NewClient(apiKey, what3words.WithHost(env.What3WordsHost())),
		geocoder: geocode.NewOpenstreetmapClient(),
		lookups:  history.NewPgRepository(db),
	}

	r := gin.New()
	r.Use(middleware.TraceID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())

	srv.RegisterRoutes(r)

	port := env.Port()
	httpServer := &http.Server{Addr: fmt.Sprintf(":%s", port), Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("serving HTTP", "port", port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server ended abruptly", "error", err.Error())
		} else {
			slog.Info("server ended gracefully")
		}

		stop()
	}()

	// Listen for OS interrupt
	<-ctx.Done()
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err.Error())
		return
	}

	slog.Info("server exited")
}
