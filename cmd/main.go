package main

import (
	"log"
	"os"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/okarhu/cat-api/internal/db"
	"github.com/okarhu/cat-api/internal/handlers"
	"github.com/okarhu/cat-api/internal/httperr"
	"github.com/okarhu/cat-api/internal/middleware"
	"github.com/okarhu/cat-api/internal/services"
	"github.com/okarhu/cat-api/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: httperr.Handler,
	})
	// Initialize MinIO
	storage.InitMinio()
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Get MongoDB URI from environment
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/cat_api" // Default fallback
	}
	mongoDBName := os.Getenv("MONGO_DB")
	if mongoDBName == "" {
		mongoDBName = "cat_api"
	}

	// Connect to MongoDB
	mongoDB := db.ConnectMongoDB(mongoURI, mongoDBName)
	db.EnsureIndexes(mongoDB)

	userStore := services.NewUserService(mongoDB)
	catStore := services.NewCatService(mongoDB)

	userHandler := handlers.NewUserHandler(userStore)
	catHandler := handlers.NewCatHandler(catStore)
	authHandler := handlers.NewAuthHandler(userStore)

	// Auth Routes
	auth := app.Group("/auth")
	auth.Post("/register", userHandler.Create)
	auth.Post("/login", authHandler.Login)

	api := app.Group("/api/v1")

	// Cat Routes. The fixed paths are registered before the :id pattern.
	cats := api.Group("/cats")
	cats.Get("/user", middleware.AuthMiddleware, catHandler.GetByUser)
	cats.Get("/box", catHandler.GetByBoundingBox)
	cats.Get("/", catHandler.List)
	cats.Get("/:id", catHandler.Get)
	cats.Post("/", middleware.AuthMiddleware, middleware.UploadMiddleware, catHandler.Create)
	cats.Put("/admin/:id", middleware.AuthMiddleware, catHandler.UpdateAdmin)
	cats.Delete("/admin/:id", middleware.AuthMiddleware, catHandler.DeleteAdmin)
	cats.Put("/:id", middleware.AuthMiddleware, catHandler.Update)
	cats.Delete("/:id", middleware.AuthMiddleware, catHandler.Delete)

	// User Routes
	users := api.Group("/users")
	users.Get("/token", middleware.AuthMiddleware, userHandler.CheckToken)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Post("/", userHandler.Create)
	users.Put("/", middleware.AuthMiddleware, userHandler.UpdateCurrent)
	users.Delete("/", middleware.AuthMiddleware, userHandler.DeleteCurrent)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default port
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
