package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/controller"
	"github.com/unclebandit/advocates-backend/internal/handler"
)

func routes(advocates *controller.AdvocateController, page *handler.ListingHandler, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(controller.RequestLogger(log))

	// Advocate routes
	r.Get("/api/advocates", advocates.ListAdvocates)
	r.Get("/health", advocates.Health)

	// Listing page
	r.Get("/", page.ServeListing)

	return r
}
