package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-catalog-backend/internal/config"
	"go-catalog-backend/internal/handler"
	"go-catalog-backend/internal/middleware"
	"go-catalog-backend/internal/model"
	"go-catalog-backend/internal/policy"
	"go-catalog-backend/internal/repository"
	"go-catalog-backend/internal/service"
	"go-catalog-backend/internal/ws"
	"go-catalog-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	if err := model.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema. \n", err)
	}

	wsHub := ws.NewHub()
	go wsHub.Run()

	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)

	catalogService := service.NewCatalogService(productRepo, categoryRepo, wsHub)
	inventoryService := service.NewInventoryService(inventoryRepo, wsHub)
	dashboardService := service.NewDashboardService(productRepo, categoryRepo, inventoryRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	app := fiber.New(fiber.Config{
		AppName: "Catalog Backend v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// All catalog routes require a verified identity; writes are
	// additionally gated by the policy table.
	api := app.Group("/api", middleware.RequireAuth(cfg.JWTSecret))

	api.Get("/categories", catalogHandler.GetCategories)
	api.Post("/categories", middleware.RequireRole(policy.OpCreateCategory), catalogHandler.CreateCategory)

	api.Get("/product", catalogHandler.GetProducts)
	api.Post("/product", middleware.RequireRole(policy.OpCreateProduct), catalogHandler.CreateProduct)

	api.Get("/inventory", inventoryHandler.GetInventory)
	api.Post("/inventory", middleware.RequireRole(policy.OpCreateInventory), inventoryHandler.CreateInventory)

	api.Get("/dashboard", dashboardHandler.GetStats)

	// Websocket feed of catalog mutations for connected admin UIs.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if err := database.Close(db); err != nil {
		log.Println("Warning: closing store:", err)
	}

	log.Println("Server exited")
}
