package routes

import (
	"github.com/labstack/echo/v4"

	"reference-service/internal/controllers"
)

func runCounterpartyRouter(secureGroup *echo.Group, ctrl *controllers.CounterpartyController) {
	cp := secureGroup.Group("/counterparties")

	cp.GET("", ctrl.GetCounterparties)
	cp.GET("/search", ctrl.SearchCounterparties)
	cp.GET("/summary", ctrl.GetSummaries)
	cp.GET("/summary/export", ctrl.ExportSummaries)
	cp.GET("/llc/:id", ctrl.GetLLC)
	cp.GET("/ip/:id", ctrl.GetIP)
	cp.GET("/phys/:id", ctrl.GetPhys)
	cp.GET("/:id/full-profile", ctrl.GetFullProfile)
	cp.GET("/:id/employees", ctrl.GetEmployees)
	cp.GET("/:id/bank-accounts", ctrl.GetBankAccounts)

	cp.POST("", ctrl.CreateCounterparty)
	cp.POST("/llc", ctrl.CreateLLC)
	cp.POST("/ip", ctrl.CreateIP)
	cp.POST("/phys", ctrl.CreatePhys)
	cp.POST("/additional-okved", ctrl.CreateAdditionalOkved)
	cp.POST("/:id/bank-accounts", ctrl.CreateBankAccount)
}
