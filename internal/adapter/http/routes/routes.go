package routes

import (
	"log"
	"os"
	"strconv"

	_ "costeo_propuestas/docs" // This will be auto-generated
	"costeo_propuestas/internal/adapter/http/handlers"
	repository2 "costeo_propuestas/internal/adapter/persistence/repository"
	"costeo_propuestas/internal/infrastructure/database"
	"costeo_propuestas/internal/infrastructure/oracle"
	"costeo_propuestas/internal/usecase"
	"costeo_propuestas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	professionalRepo := repository2.NewCatalogProfessionalDynamoRepository(ddb)
	materialRepo := repository2.NewCatalogMaterialDynamoRepository(ddb)
	planRepo := repository2.NewCostPlanDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(professionalRepo, materialRepo)
	planUseCase := usecase.NewCostPlanUseCase(planRepo)

	// A missing credential keeps the oracle nil; the estimation endpoint
	// then answers 503 instead of failing mid-pipeline.
	var textOracle interfaces.ITextOracle
	gateway, err := oracle.NewGeminiGateway(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Gemini gateway not configured: %v", err)
	} else {
		textOracle = gateway
	}

	estimationUseCase := usecase.NewEstimationUseCase(textOracle, usecase.EstimationConfigFromEnv())

	estimationHandler := handlers.NewEstimationHandler(estimationUseCase, catalogUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	planHandler := handlers.NewCostPlanHandler(planUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCosteoRoutes(v1, estimationHandler, catalogHandler, planHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
