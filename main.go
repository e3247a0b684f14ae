package main

import (
	"context"
	"strings"
	"time"

	"restaurant_backend/cache"
	"restaurant_backend/config"
	"restaurant_backend/database"
	"restaurant_backend/handler"
	"restaurant_backend/helper"
	"restaurant_backend/logger"
	"restaurant_backend/repository"
	"restaurant_backend/router"
	"restaurant_backend/service"
	"restaurant_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	log := logger.Init(config.ConfigDefault("ENV", "development"))
	defer log.Sync()

	db, err := database.ConnectDB(log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	repo := repository.New(db)

	menu := newMenuCache(log)
	catalog := service.NewCatalogService(repo.Categories, repo.Products, repo.Ingredients, menu, log)

	mailer := utils.NewOrderMailer(utils.SMTPConfig{
		Host:     config.Config("SMTP_HOST"),
		Port:     config.ConfigInt("SMTP_PORT", 587),
		Username: config.Config("SMTP_USERNAME"),
		Password: config.Config("SMTP_PASSWORD"),
		From:     config.Config("SMTP_FROM"),
	}, log)
	orders := service.NewOrderService(repo.Products, repo.Orders, mailer, log)
	auth := service.NewAuthService(repo.Accounts, log)

	var images handler.ImageUploader
	if cld, err := helper.InitCloudinary(); err != nil {
		log.Warn("cloudinary not configured, image upload disabled", zap.Error(err))
	} else {
		images = helper.NewImageStore(cld)
	}

	if err := helper.StartMenuCacheScheduler(time.Local, catalog.WarmMenu, log); err != nil {
		log.Warn("menu cache scheduler not started", zap.Error(err))
	}
	if err := helper.StartPendingOrderReport(30*time.Minute, orders.CountPendingBefore, log); err != nil {
		log.Warn("pending order report not started", zap.Error(err))
	}
	defer helper.StopSchedulers()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.ReplaceAll(config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"), " ", ""),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	h := handler.New(orders, auth, catalog, images, log)
	router.SetupRoutes(app, h, router.Content{
		Hero:     handler.NewContentHandler(service.NewContentService(repo.Hero), log),
		About:    handler.NewContentHandler(service.NewContentService(repo.About), log),
		Contact:  handler.NewContentHandler(service.NewContentService(repo.Contact), log),
		Featured: handler.NewContentHandler(service.NewContentService(repo.Featured), log),
	})

	addr := ":" + config.ConfigDefault("APP_PORT", "8000")
	log.Info("listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}

// newMenuCache returns nil when Redis is unreachable, which disables caching.
func newMenuCache(log *zap.Logger) *cache.MenuCache {
	rdb := cache.NewRedisClient(
		config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		config.Config("REDIS_PASSWORD"),
		config.ConfigInt("REDIS_DB", 0),
	)
	menu := cache.NewMenuCache(rdb, time.Duration(config.ConfigInt("MENU_CACHE_TTL_SECONDS", 300))*time.Second, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := menu.Ping(ctx); err != nil {
		log.Warn("redis unavailable, menu cache disabled", zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	return menu
}
