package routes

import (
	"github.com/labstack/echo/v4"

	"reference-service/internal/controllers"
)

func runObjectRouter(secureGroup *echo.Group, ctrl *controllers.ObjectController) {
	secureGroup.GET("/objects", ctrl.GetObjects)
	secureGroup.GET("/objects/:id", ctrl.GetObject)
	secureGroup.POST("/objects", ctrl.CreateObject)
	secureGroup.PATCH("/objects/:id", ctrl.UpdateObject)
}
