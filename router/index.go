package router

import (
	"restaurant_backend/handler"
	"restaurant_backend/middleware"
	"restaurant_backend/model"
	"restaurant_backend/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Content groups the handlers of the home page sections.
type Content struct {
	Hero     *handler.ContentHandler[model.HeroSection]
	About    *handler.ContentHandler[model.AboutSection]
	Contact  *handler.ContentHandler[model.ContactInfo]
	Featured *handler.ContentHandler[model.FeaturedProduct]
}

func SetupRoutes(app *fiber.App, h *handler.Handler, content Content) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	staff := []fiber.Handler{middleware.Protected(), middleware.StaffOnly()}
	admin := func(handlers ...fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, staff...), handlers...)
	}

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Body[model.LoginInput](), h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", middleware.Protected(), h.Me)

	category := v1.Group("/categories")
	category.Get("/", h.GetCategories)
	category.Get("/:categoryId", validate.GetById("categoryId"), h.GetCategoryById)
	category.Get("/:categoryId/products", validate.GetById("categoryId"), h.GetCategoryProducts)
	category.Post("/", admin(validate.Body[model.CategoryInput](), h.CreateCategory)...)
	category.Put("/:categoryId", admin(validate.GetById("categoryId"), validate.Body[model.CategoryInput](), h.EditCategory)...)
	category.Delete("/", admin(validate.Delete(), h.DeleteCategories)...)

	product := v1.Group("/products")
	product.Get("/", validate.ListProducts(), h.GetProducts)
	product.Get("/search", h.SearchProducts)
	product.Get("/featured", h.GetFeaturedProducts)
	product.Get("/:productId", validate.GetById("productId"), h.GetProductById)
	product.Post("/:productId/calculate-price", validate.GetById("productId"), validate.PriceQuote(), h.CalculatePrice)
	product.Post("/", admin(validate.Body[model.CreateProductInput](), h.CreateProduct)...)
	product.Put("/:productId", admin(validate.GetById("productId"), validate.Body[model.UpdateProductInput](), h.EditProduct)...)
	product.Delete("/", admin(validate.Delete(), h.DeleteProducts)...)

	tag := v1.Group("/tags", staff...)
	tag.Get("/", h.GetTags)
	tag.Post("/", validate.Body[model.TagInput](), h.CreateTag)
	tag.Delete("/", validate.Delete(), h.DeleteTags)

	rule := v1.Group("/product-ingredients", staff...)
	rule.Get("/", h.GetPricingRules)
	rule.Post("/", validate.Body[model.PricingRuleInput](), h.CreatePricingRule)
	rule.Put("/:ruleId", validate.GetById("ruleId"), validate.Body[model.ProductIngredientInput](), h.EditPricingRule)
	rule.Delete("/", validate.Delete(), h.DeletePricingRules)

	ingredient := v1.Group("/ingredients")
	ingredient.Get("/", h.GetIngredients)
	ingredient.Get("/:ingredientId", validate.GetById("ingredientId"), h.GetIngredientById)
	ingredient.Post("/", admin(validate.Body[model.IngredientInput](), h.CreateIngredient)...)
	ingredient.Put("/:ingredientId", admin(validate.GetById("ingredientId"), validate.Body[model.IngredientInput](), h.EditIngredient)...)
	ingredient.Delete("/", admin(validate.Delete(), h.DeleteIngredients)...)

	contentRoutes(v1.Group("/hero"), content.Hero, admin)
	contentRoutes(v1.Group("/about"), content.About, admin)
	contentRoutes(v1.Group("/contact"), content.Contact, admin)
	contentRoutes(v1.Group("/featured"), content.Featured, admin)

	order := v1.Group("/orders")
	order.Post("/", validate.CreateOrder(), h.PlaceOrder)
	order.Get("/number/:orderNumber/qr", h.GetOrderQRCode)
	order.Get("/", admin(validate.ListOrders(), h.GetOrders)...)
	order.Get("/:orderId", admin(validate.GetById("orderId"), h.GetOrderById)...)
	order.Patch("/:orderId/status", admin(validate.GetById("orderId"), validate.Body[model.UpdateOrderStatusInput](), h.UpdateOrderStatus)...)

	media := v1.Group("/media", staff...)
	media.Post("/images", h.UploadImage)
	media.Delete("/images", h.DestroyImage)
}

func contentRoutes[T model.Section](group fiber.Router, h *handler.ContentHandler[T], admin func(...fiber.Handler) []fiber.Handler) {
	group.Get("/", h.List)
	group.Get("/active", h.Active)
	group.Get("/:id", validate.GetById("id"), h.Get)
	group.Post("/", admin(validate.Parse[T](), h.Create)...)
	group.Put("/:id", admin(validate.GetById("id"), validate.Parse[T](), h.Edit)...)
	group.Delete("/", admin(validate.Delete(), h.Delete)...)
}
