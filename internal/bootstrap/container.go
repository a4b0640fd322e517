package bootstrap

import (
	"log"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/internal/controller"
	"ai-recipe-be/internal/pkg/logger"
	"ai-recipe-be/internal/pkg/mailer"
	"ai-recipe-be/internal/pkg/serverutils"
	"ai-recipe-be/internal/repository/unitofwork"
	"ai-recipe-be/internal/service"
	"ai-recipe-be/pkg/llm/factory"

	pktNats "ai-recipe-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// CatalogTopic is the in-process channel carrying recorded suggestions
// to the catalog enrichment worker.
const CatalogTopic = "catalog.recipes"

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	RecipeController   controller.IRecipeController
	PurchaseController controller.IPurchaseController
	HealthController   controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	authService service.IAuthService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// NATS is optional: a dead bus degrades to warnings, never a
	// refused login.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. Services
	publisherService := service.NewPublisherService(CatalogTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, CatalogTopic, uowFactory)

	generatorService := service.NewGeneratorService(llmProvider, cfg.Ai)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, cfg.Auth)
	userService := service.NewUserService(uowFactory)
	recipeService := service.NewRecipeService(uowFactory, generatorService, publisherService)
	purchaseService := service.NewPurchaseService(uowFactory, natsPub, cfg.Payment)

	sysLogger.Info("bootstrap", "Dependency container initialized", map[string]interface{}{
		"llm_provider": cfg.Ai.Provider,
		"llm_model":    cfg.Ai.Model,
		"environment":  cfg.App.Environment,
	})

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		UserController:     controller.NewUserController(userService),
		RecipeController:   controller.NewRecipeController(recipeService),
		PurchaseController: controller.NewPurchaseController(purchaseService),
		HealthController:   controller.NewHealthController(db),

		ConsumerService: consumerService,

		Logger: sysLogger,

		authService: authService,
	}
}

// AuthService exposes the token resolver for the route guard.
func (c *Container) AuthService() serverutils.TokenResolver {
	return c.authService
}
