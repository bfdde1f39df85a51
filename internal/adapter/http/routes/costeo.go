package routes

import (
	"costeo_propuestas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAI            = "/ai"
	PathProfessionals = "/catalogo/profesionales"
	PathMaterials     = "/catalogo/materiales"
	PathPlans         = "/planes"
)

func addCosteoRoutes(rg *gin.RouterGroup, estimationHandler *handlers.EstimationHandler, catalogHandler *handlers.CatalogHandler, planHandler *handlers.CostPlanHandler) {
	ai := rg.Group(PathAI)
	{
		ai.POST("/costeo", estimationHandler.Estimate)
	}

	professionals := rg.Group(PathProfessionals)
	{
		professionals.POST("", catalogHandler.CreateProfessional)
		professionals.GET("", catalogHandler.ListProfessionals)
		professionals.GET("/:id", catalogHandler.GetProfessional)
		professionals.PUT("/:id", catalogHandler.UpdateProfessional)
		professionals.DELETE("/:id", catalogHandler.DeleteProfessional)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.POST("", catalogHandler.CreateMaterial)
		materials.GET("", catalogHandler.ListMaterials)
		materials.GET("/:id", catalogHandler.GetMaterial)
		materials.PUT("/:id", catalogHandler.UpdateMaterial)
		materials.DELETE("/:id", catalogHandler.DeleteMaterial)
	}

	plans := rg.Group(PathPlans)
	{
		plans.POST("", planHandler.Save)
		plans.GET("", planHandler.List)
		plans.GET("/:id", planHandler.GetByID)
		plans.PUT("/:id", planHandler.Replace)
		plans.DELETE("/:id", planHandler.Delete)
	}
}
