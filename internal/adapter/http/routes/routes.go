package routes

import (
	"log"
	"os"
	"strconv"
	_ "stonetrade/docs" // This will be auto-generated
	"stonetrade/internal/adapter/http/handlers"
	repository2 "stonetrade/internal/adapter/persistence/repository"
	"stonetrade/internal/domain/quote"
	"stonetrade/internal/infrastructure/database"
	"stonetrade/internal/infrastructure/directory"
	"stonetrade/internal/infrastructure/documents"
	"stonetrade/internal/infrastructure/fx"
	"stonetrade/internal/infrastructure/logger"
	"stonetrade/internal/infrastructure/notifications"
	"stonetrade/internal/infrastructure/pricing"
	"stonetrade/internal/usecase"

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
	zlog := logger.NewForEnvironment(os.Getenv("APP_ENV"))

	ddb := database.ConnectDynamoDB()
	archive := repository2.NewSentQuoteDynamoRepository(ddb)

	buyers := directory.NewSeededBuyerDirectory()
	slabs := directory.NewSeededSlabCatalog()

	policy, err := pricing.LoadRatePolicy()
	if err != nil {
		log.Printf("Rate policy config not loaded, using defaults: %v", err)
		policy = quote.DefaultRatePolicy()
	}
	engine := quote.NewEngine(policy)

	fxSource, err := fx.NewFixedRateSource()
	if err != nil {
		log.Fatalf("Failed to configure fx rate source: %v", err)
	}

	dispatcher, err := notifications.NewWebhookDispatcher(os.Getenv("NOTIFY_WEBHOOK_URL"), zlog)
	if err != nil {
		log.Printf("Notification dispatcher not configured: %v", err)
	}

	sessionUseCase := usecase.NewQuoteSessionUseCase(buyers, slabs, fxSource, dispatcher, archive, engine, zlog)
	directoryUseCase := usecase.NewDirectoryUseCase(buyers, slabs)
	sentQuoteUseCase := usecase.NewSentQuoteUseCase(archive, documents.NewTextRenderer())

	sessionHandler := handlers.NewQuoteSessionHandler(sessionUseCase)
	directoryHandler := handlers.NewDirectoryHandler(directoryUseCase)
	sentQuoteHandler := handlers.NewSentQuoteHandler(sentQuoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, sessionHandler, directoryHandler, sentQuoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
