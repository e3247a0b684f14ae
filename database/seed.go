package database

import (
	"restaurant_backend/config"
	"restaurant_backend/constants"
	"restaurant_backend/helper"
	"restaurant_backend/model"
	"restaurant_backend/utils"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedProduct struct {
	Name        string
	Description string
	Price       string
	Category    string
	Tags        []string
}

type seedRule struct {
	Product    string
	Ingredient string
	Default    bool
	ExtraCost  string
}

var seedCategories = []model.Category{
	{Name: "Hamburguesas", Icon: "🍔"},
	{Name: "Pizzas", Icon: "🍕"},
	{Name: "Bebidas", Icon: "🥤"},
	{Name: "Postres", Icon: "🍰"},
	{Name: "Acompañamientos", Icon: "🍟"},
}

var seedProducts = []seedProduct{
	{"Hamburguesa Clásica", "Hamburguesa con carne de res, lechuga, tomate, cebolla y queso cheddar", "12.99", "Hamburguesas", []string{"Popular", "Clásica"}},
	{"Hamburguesa BBQ", "Hamburguesa con salsa BBQ, cebolla caramelizada y bacon", "15.99", "Hamburguesas", []string{"BBQ", "Bacon"}},
	{"Pizza Margherita", "Pizza tradicional con salsa de tomate, mozzarella y albahaca", "18.99", "Pizzas", []string{"Tradicional", "Vegetariana"}},
	{"Pizza Pepperoni", "Pizza con pepperoni, mozzarella y salsa de tomate", "20.99", "Pizzas", []string{"Popular", "Pepperoni"}},
	{"Coca Cola", "Refresco Coca Cola 500ml", "3.99", "Bebidas", []string{"Refresco", "Popular"}},
	{"Limonada Natural", "Limonada natural preparada con limones frescos", "4.99", "Bebidas", []string{"Natural", "Refrescante"}},
	{"Papas Fritas", "Papas fritas crujientes con sal", "6.99", "Acompañamientos", []string{"Crujiente", "Popular"}},
	{"Aros de Cebolla", "Aros de cebolla empanizados y fritos", "7.99", "Acompañamientos", []string{"Crujiente", "Vegetariano"}},
	{"Tiramisú", "Postre italiano con café, mascarpone y cacao", "8.99", "Postres", []string{"Italiano", "Café"}},
	{"Brownie", "Brownie de chocolate con nueces", "6.99", "Postres", []string{"Chocolate", "Nueces"}},
}

var seedIngredients = []string{"Queso extra", "Bacon", "Cebolla", "Lechuga", "Tomate", "Jalapeños"}

var seedRules = []seedRule{
	{"Hamburguesa Clásica", "Queso extra", false, "1.50"},
	{"Hamburguesa Clásica", "Bacon", false, "2.00"},
	{"Hamburguesa Clásica", "Cebolla", true, "0"},
	{"Hamburguesa Clásica", "Lechuga", true, "0"},
	{"Hamburguesa Clásica", "Tomate", true, "0"},
	{"Hamburguesa BBQ", "Queso extra", false, "1.50"},
	{"Hamburguesa BBQ", "Jalapeños", false, "1.00"},
	{"Hamburguesa BBQ", "Bacon", true, "0"},
	{"Pizza Margherita", "Queso extra", false, "2.50"},
}

// SeedData creates the admin account, a sample menu and the home page
// content when they are missing. Existing rows are left alone.
func SeedData(db *gorm.DB, log *zap.Logger) {
	seedAdmin(db, log)

	categories := map[string]uint{}
	for _, category := range seedCategories {
		category.Slug = slug.Make(category.Name)
		if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Warn("failed to seed category", zap.String("name", category.Name), zap.Error(err))
			continue
		}
		categories[category.Name] = category.ID
	}

	products := map[string]uint{}
	for _, sp := range seedProducts {
		categoryID, ok := categories[sp.Category]
		if !ok {
			continue
		}
		product := model.Product{
			Name:        sp.Name,
			Description: sp.Description,
			Price:       decimal.RequireFromString(sp.Price),
			CategoryID:  categoryID,
			IsActive:    true,
		}
		res := db.Omit("Tags", "Ingredients", "Category").Where(model.Product{Name: sp.Name}).FirstOrCreate(&product)
		if res.Error != nil {
			log.Warn("failed to seed product", zap.String("name", sp.Name), zap.Error(res.Error))
			continue
		}
		products[sp.Name] = product.ID
		if res.RowsAffected == 0 {
			continue
		}
		for _, tag := range sp.Tags {
			if err := db.Create(&model.ProductTag{ProductID: product.ID, Name: tag}).Error; err != nil {
				log.Warn("failed to seed tag", zap.String("product", sp.Name), zap.Error(err))
			}
		}
	}

	ingredients := map[string]uint{}
	for _, name := range seedIngredients {
		ingredient := model.Ingredient{Name: name, IsActive: true}
		if err := db.Where(model.Ingredient{Name: name}).FirstOrCreate(&ingredient).Error; err != nil {
			log.Warn("failed to seed ingredient", zap.String("name", name), zap.Error(err))
			continue
		}
		ingredients[name] = ingredient.ID
	}

	for _, sr := range seedRules {
		productID, ok1 := products[sr.Product]
		ingredientID, ok2 := ingredients[sr.Ingredient]
		if !ok1 || !ok2 {
			continue
		}
		rule := model.ProductIngredient{
			ProductID:       productID,
			IngredientID:    ingredientID,
			DefaultIncluded: sr.Default,
			ExtraCost:       decimal.RequireFromString(sr.ExtraCost),
			IsActive:        true,
		}
		if err := db.Omit("Ingredient").
			Where(model.ProductIngredient{ProductID: productID, IngredientID: ingredientID}).
			FirstOrCreate(&rule).Error; err != nil {
			log.Warn("failed to seed product ingredient", zap.String("product", sr.Product), zap.Error(err))
		}
	}

	seedContent(db, log)
}

func seedAdmin(db *gorm.DB, log *zap.Logger) {
	password := config.Config("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Info("SEED_ADMIN_PASSWORD not set, admin account not seeded")
		return
	}
	hash, err := helper.HashPassword(password)
	if err != nil {
		log.Warn("failed to hash seed password", zap.Error(err))
		return
	}

	account := model.Account{
		Username: config.ConfigDefault("SEED_ADMIN_USERNAME", "admin"),
		Password: hash,
		Active:   true,
		Role:     constants.ROLE_ADMIN,
	}
	if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
		log.Warn("failed to seed account", zap.String("username", account.Username), zap.Error(err))
	}
}

func seedContent(db *gorm.DB, log *zap.Logger) {
	hero := model.HeroSection{
		Title:      "Sabor que conquista corazones",
		Subtitle:   "Descubre la mejor comida rápida de la ciudad. Ingredientes frescos, sabores auténticos y un servicio que te hará volver una y otra vez.",
		ButtonText: "Ordenar Ahora",
		ButtonURL:  "#menu",
		IsActive:   true,
	}
	if err := db.Where(model.HeroSection{Title: hero.Title}).FirstOrCreate(&hero).Error; err != nil {
		log.Warn("failed to seed hero section", zap.Error(err))
	}

	about := model.AboutSection{
		Title:           "Comida rápida con alma y sabor",
		Subtitle:        "Somos más que una empresa de comida rápida",
		Description:     "Creemos que cada bocado debe ser una experiencia memorable, donde la rapidez no compromete la calidad, y el sabor urbano se encuentra con la tradición culinaria.",
		YearsExperience: 5,
		IsActive:        true,
	}
	if err := db.Where(model.AboutSection{Title: about.Title}).FirstOrCreate(&about).Error; err != nil {
		log.Warn("failed to seed about section", zap.Error(err))
	}

	contact := model.ContactInfo{
		Phone:     "+56 9 1234 5678",
		Email:     "info@fastfooddeluxe.cl",
		Address:   "Av. Providencia 123, Providencia, Santiago, Chile",
		Whatsapp:  utils.StringPtr("+56 9 1234 5678"),
		Facebook:  utils.StringPtr("https://facebook.com/fastfooddeluxe"),
		Instagram: utils.StringPtr("https://instagram.com/fastfooddeluxe"),
		IsActive:  true,
	}
	if err := db.Where(model.ContactInfo{Phone: contact.Phone}).FirstOrCreate(&contact).Error; err != nil {
		log.Warn("failed to seed contact info", zap.Error(err))
	}

	featured := model.FeaturedProduct{
		Name:               "Combo Familiar Deluxe",
		Description:        "El combo perfecto para compartir en familia. Incluye 4 hamburguesas clásicas, papas familiares, 4 bebidas grandes y salsa extra.",
		Price:              decimal.NewFromInt(49900),
		OriginalPrice:      utils.Ptr(decimal.NewFromInt(65000)),
		DiscountPercentage: 23,
		PreparationTime:    "15-20 min",
		Servings:           "4 personas",
		Rating:             decimal.RequireFromString("4.9"),
		ReviewsCount:       150,
		IsActive:           true,
	}
	if err := db.Where(model.FeaturedProduct{Name: featured.Name}).FirstOrCreate(&featured).Error; err != nil {
		log.Warn("failed to seed featured product", zap.Error(err))
	}
}
