// Package handler contains the HTTP handlers. Handlers bind and validate the
// request, call into repositories and services, and translate sentinel errors
// into status codes; they hold no business state of their own.
package handler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/banquetpro/banquetpro-api/internal/repository"
	"github.com/banquetpro/banquetpro-api/internal/service"
)

// Handler bundles the repositories and services the API routes need.
type Handler struct {
	Events      *repository.EventRepo
	Clients     *repository.ClientRepo
	Staff       *repository.StaffRepo
	Assignments *repository.AssignmentRepo
	Inventory   *repository.InventoryRepo
	Suppliers   *repository.SupplierRepo
	Guard       *service.ScheduleGuard
	Analytics   *service.Analytics
}

// New constructs a Handler and panics if any dependency is nil.
func New(
	events *repository.EventRepo,
	clients *repository.ClientRepo,
	staff *repository.StaffRepo,
	assignments *repository.AssignmentRepo,
	inventory *repository.InventoryRepo,
	suppliers *repository.SupplierRepo,
	guard *service.ScheduleGuard,
	analytics *service.Analytics,
) *Handler {
	if events == nil || clients == nil || staff == nil || assignments == nil ||
		inventory == nil || suppliers == nil || guard == nil || analytics == nil {
		panic("nil dependency passed to handler.New")
	}
	return &Handler{
		Events:      events,
		Clients:     clients,
		Staff:       staff,
		Assignments: assignments,
		Inventory:   inventory,
		Suppliers:   suppliers,
		Guard:       guard,
		Analytics:   analytics,
	}
}

// Validator adapts go-playground/validator to echo's Validator interface so
// handlers can call c.Validate on bound request structs.
type Validator struct {
	validate *validator.Validate
}

// NewValidator constructs the echo validator used by the server.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs struct validation and returns the raw validator error; the
// calling handler decides how to render it.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// parseID extracts a numeric path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
