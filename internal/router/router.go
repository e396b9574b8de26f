// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/banquetpro/banquetpro-api/internal/handler"
)

// RegisterRoutes registers the operational endpoints: a health check for
// load balancers and the Prometheus scrape target.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAPI registers the /api/v1 resource routes on the provided Echo
// instance.
func RegisterAPI(e *echo.Echo, h *handler.Handler) {
	api := e.Group("/api/v1")

	events := api.Group("/events")
	events.POST("", h.CreateEvent)
	events.GET("", h.ListEvents)
	// Must be registered before /:id so "availability" is not parsed as an id.
	events.GET("/availability", h.CheckAvailability)
	events.GET("/:id", h.GetEvent)
	events.PUT("/:id", h.UpdateEvent)
	events.DELETE("/:id", h.DeleteEvent)
	events.POST("/:id/assignments", h.CreateAssignment)
	events.GET("/:id/assignments", h.ListAssignments)

	api.DELETE("/assignments/:id", h.DeleteAssignment)

	clients := api.Group("/clients")
	clients.POST("", h.CreateClient)
	clients.GET("", h.ListClients)
	clients.GET("/:id", h.GetClient)
	clients.PUT("/:id", h.UpdateClient)
	clients.DELETE("/:id", h.DeleteClient)

	staff := api.Group("/staff")
	staff.POST("", h.CreateStaff)
	staff.GET("", h.ListStaff)
	staff.GET("/:id", h.GetStaff)
	staff.PUT("/:id", h.UpdateStaff)
	staff.DELETE("/:id", h.DeleteStaff)

	inventory := api.Group("/inventory")
	inventory.POST("", h.CreateInventoryItem)
	inventory.GET("", h.ListInventory)
	inventory.GET("/:id", h.GetInventoryItem)
	inventory.PUT("/:id", h.UpdateInventoryItem)
	inventory.DELETE("/:id", h.DeleteInventoryItem)

	suppliers := api.Group("/suppliers")
	suppliers.POST("", h.CreateSupplier)
	suppliers.GET("", h.ListSuppliers)
	suppliers.GET("/:id", h.GetSupplier)
	suppliers.PUT("/:id", h.UpdateSupplier)
	suppliers.DELETE("/:id", h.DeleteSupplier)

	api.GET("/analytics/summary", h.Summary)
}
