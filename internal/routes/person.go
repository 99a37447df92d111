package routes

import (
	"github.com/labstack/echo/v4"

	"reference-service/internal/controllers"
)

func runPersonRouter(secureGroup *echo.Group, ctrl *controllers.PersonController) {
	secureGroup.GET("/persons", ctrl.GetPersons)
	secureGroup.GET("/persons/:id", ctrl.GetPerson)
	secureGroup.POST("/persons", ctrl.CreatePerson)
}
