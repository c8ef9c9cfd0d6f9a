package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"tunes-proxy-go/config"
	"tunes-proxy-go/logcolors"
	"tunes-proxy-go/middleware"
	"tunes-proxy-go/services/itunes"
	"tunes-proxy-go/token"
)

// Package-level services, initialized in main and swapped out by tests.
var (
	tokenService *token.Service
	searchClient *itunes.Client
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}

func main() {
	conf := config.MustLoad()

	tokenService = token.New(conf.Server.JWTSecret, time.Duration(conf.Server.TokenTTLInSeconds)*time.Second)
	searchClient = itunes.NewClient(conf.Upstream.BaseURL, conf.Upstream.SearchPath, nil)

	router := mux.NewRouter()
	setupRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   conf.CORS.AllowedOrigins,
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	loggedRouter := middleware.LoggingMiddleware(router)
	handler := c.Handler(statsMiddleware(loggedRouter))

	log.Infof("%s iTunes search proxy listening on port %s", logcolors.LogServer, conf.Server.Port)
	log.Fatal(http.ListenAndServe(":"+conf.Server.Port, handler))
}
