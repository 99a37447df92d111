package routes

import (
	"github.com/labstack/echo/v4"

	"reference-service/internal/controllers"
)

func runEmployeeRouter(secureGroup *echo.Group, ctrl *controllers.EmployeeController, objectCtrl *controllers.ObjectController) {
	employees := secureGroup.Group("/employees")

	employees.GET("", ctrl.GetEmployees)
	employees.GET("/internal", ctrl.GetInternalEmployees)
	employees.GET("/internal/departments", ctrl.GetInternalDepartments)
	employees.GET("/:id/objects", objectCtrl.GetEmployeeObjects)
	employees.POST("", ctrl.CreateEmployee)
}
