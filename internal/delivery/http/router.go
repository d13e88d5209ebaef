package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/comissio/commission-service/internal/delivery/http/handlers"
	"github.com/comissio/commission-service/internal/delivery/http/middleware"
)

type Handlers struct {
	PerformedService *handlers.PerformedServiceHandler
	Settlement       *handlers.SettlementHandler
	ServiceType      *handlers.ServiceTypeHandler
	Employee         *handlers.EmployeeHandler
	Rate             *handlers.RateHandler
}

// NewRouter wires all routes. Mutations on the catalog and settlement
// require staff roles; employees get read access pinned to their own
// records by the handlers.
func NewRouter(jwtSecret string, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Validator = NewCustomValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.JWT(jwtSecret))
	staff := middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleManager)

	serviceTypes := api.Group("/service-types")
	serviceTypes.GET("", h.ServiceType.List)
	serviceTypes.GET("/:id", h.ServiceType.GetByID)
	serviceTypes.POST("", h.ServiceType.Create, staff)
	serviceTypes.PUT("/:id", h.ServiceType.Update, staff)
	serviceTypes.DELETE("/:id", h.ServiceType.Delete, staff)

	employees := api.Group("/employees")
	employees.GET("", h.Employee.List, staff)
	employees.GET("/:id", h.Employee.GetByID)
	employees.POST("", h.Employee.Register, staff)
	employees.PUT("/:id", h.Employee.Update, staff)

	overrides := api.Group("/commission-overrides", staff)
	overrides.GET("", h.Rate.ListOverrides)
	overrides.GET("/:id", h.Rate.GetOverrideByID)
	overrides.POST("", h.Rate.CreateOverride)
	overrides.PUT("/:id", h.Rate.UpdateOverride)
	overrides.DELETE("/:id", h.Rate.DeleteOverride)

	defaults := api.Group("/commission-defaults", staff)
	defaults.GET("", h.Rate.ListDefaults)
	defaults.GET("/:id", h.Rate.GetDefaultByID)
	defaults.PUT("", h.Rate.UpsertDefault)
	defaults.PUT("/:id", h.Rate.UpdateDefault)
	defaults.DELETE("/:id", h.Rate.DeleteDefault)

	api.GET("/commission-rates/resolve", h.Rate.ResolveRate, staff)

	services := api.Group("/performed-services")
	services.GET("", h.PerformedService.List)
	services.GET("/:id", h.PerformedService.GetByID)
	services.POST("", h.PerformedService.Create, staff)
	services.PATCH("/:id", h.PerformedService.Amend, staff)
	services.POST("/:id/cancel", h.PerformedService.Cancel, staff)
	services.POST("/:id/pay", h.PerformedService.Pay, staff)
	services.DELETE("/:id", h.PerformedService.Delete, staff)

	settlements := api.Group("/settlements")
	settlements.POST("/batch", h.Settlement.SettleBatch, staff)

	payments := api.Group("/commission-payments")
	payments.GET("", h.Settlement.ListPayments)
	payments.GET("/:id", h.Settlement.GetPaymentByID)

	return e
}
