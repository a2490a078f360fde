package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Gokulrbs/example-attendx/config"
	"github.com/Gokulrbs/example-attendx/handlers"
	"github.com/Gokulrbs/example-attendx/repository"
)

// Register wires all HTTP routes. db may be nil when no connection string
// is configured; the data endpoints then answer 503 while static content
// and the probes keep working.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	var (
		empRepo  *repository.EmployeeRepo
		deptRepo *repository.DepartmentRepo
		attRepo  *repository.AttendanceRepo
	)
	if db != nil {
		empRepo = repository.NewEmployeeRepo(db)
		deptRepo = repository.NewDepartmentRepo(db)
		attRepo = repository.NewAttendanceRepo(db)
	}

	emp := handlers.NewEmployeeHandler(empRepo)
	dept := handlers.NewDepartmentHandler(deptRepo)
	att := handlers.NewAttendanceHandler(attRepo)
	sys := handlers.NewSystemHandler(db)

	api := e.Group("/api")

	api.GET("/employees", emp.List)
	api.POST("/employees", emp.Create)
	api.PATCH("/employees/:id", emp.Update)
	api.DELETE("/employees/:id", emp.Delete)

	api.GET("/departments", dept.List)
	api.POST("/departments", dept.Create)
	api.DELETE("/departments/:id", dept.Delete)

	api.GET("/attendance", att.List)
	api.POST("/attendance", att.Upsert)
	api.DELETE("/attendance/:employeeId/:date", att.Delete)

	api.GET("/test", sys.Test)
	e.GET("/health", handlers.Health)

	// frontend entry + SPA fallback
	spa := handlers.NewStaticHandler(cfg.StaticDir)
	e.GET("/*", spa.Serve)
}
