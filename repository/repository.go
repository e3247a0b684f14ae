package repository

import (
	"restaurant_backend/model"

	"gorm.io/gorm"
)

type Repository struct {
	DB          *gorm.DB
	Accounts    AccountRepo
	Categories  CategoryRepo
	Products    ProductRepo
	Ingredients IngredientRepo
	Orders      OrderRepo
	Hero        ContentRepo[model.HeroSection]
	About       ContentRepo[model.AboutSection]
	Contact     ContentRepo[model.ContactInfo]
	Featured    ContentRepo[model.FeaturedProduct]
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:          db,
		Accounts:    NewAccountRepo(db),
		Categories:  NewCategoryRepo(db),
		Products:    NewProductRepo(db),
		Ingredients: NewIngredientRepo(db),
		Orders:      NewOrderRepo(db),
		Hero:        NewContentRepo[model.HeroSection](db),
		About:       NewContentRepo[model.AboutSection](db),
		Contact:     NewContentRepo[model.ContactInfo](db),
		Featured:    NewContentRepo[model.FeaturedProduct](db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
