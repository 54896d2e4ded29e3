package main

import (
	"context"
	"fmt"
	"log"

	"shopsphere/domain"
	"shopsphere/internal/repository/postgres"
	"shopsphere/pkg/apperror"
	"shopsphere/pkg/config"
	"shopsphere/pkg/database"
	"shopsphere/pkg/logger"
	"shopsphere/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedProduct struct {
	name          string
	description   string
	category      string
	price         float64
	originalPrice float64
	image         string
	featured      bool
}

var seedCategories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Garden",
	"Sports",
}

var seedProducts = []seedProduct{
	{
		name:          "Wireless Bluetooth Headphones",
		description:   "Over-ear headphones with active noise cancellation and 30 hour battery life.",
		category:      "Electronics",
		price:         79.99,
		originalPrice: 99.99,
		image:         "/images/headphones.jpg",
		featured:      true,
	},
	{
		name:        "Smart Watch Series 5",
		description: "Fitness tracking, heart rate monitoring and smartphone notifications.",
		category:    "Electronics",
		price:       199.99,
		image:       "/images/smartwatch.jpg",
		featured:    true,
	},
	{
		name:          "Classic Denim Jacket",
		description:   "Timeless denim jacket in a relaxed fit.",
		category:      "Clothing",
		price:         59.99,
		originalPrice: 79.99,
		image:         "/images/denim-jacket.jpg",
	},
	{
		name:        "Cotton Crew Neck T-Shirt",
		description: "Soft combed cotton tee, available in six colors.",
		category:    "Clothing",
		price:       14.99,
		image:       "/images/tshirt.jpg",
	},
	{
		name:        "The Pragmatic Programmer",
		description: "20th anniversary edition of the classic software craft book.",
		category:    "Books",
		price:       39.99,
		image:       "/images/pragprog.jpg",
		featured:    true,
	},
	{
		name:        "Ceramic Plant Pot Set",
		description: "Set of three glazed ceramic pots with drainage trays.",
		category:    "Home & Garden",
		price:       28.5,
		image:       "/images/plant-pots.jpg",
	},
	{
		name:          "Yoga Mat Pro",
		description:   "Non-slip 6mm mat with alignment markings and carry strap.",
		category:      "Sports",
		price:         34.99,
		originalPrice: 44.99,
		image:         "/images/yoga-mat.jpg",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.ClosePostgres(db)

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Product{},
		&domain.Address{},
		&domain.Order{},
		&domain.OrderItem{},
	); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	if err := seedAdmin(db); err != nil {
		logger.Fatal("Failed to seed admin user", "error", err)
	}

	categoryIDs, err := seedCategoryRows(db)
	if err != nil {
		logger.Fatal("Failed to seed categories", "error", err)
	}

	if err := seedProductRows(db, categoryIDs); err != nil {
		logger.Fatal("Failed to seed products", "error", err)
	}

	logger.Info("Seed completed")
}

func seedAdmin(db *gorm.DB) error {
	ctx := context.Background()
	userRepo := postgres.NewUserRepository(db)

	const adminEmail = "admin@shopsphere.dev"

	_, err := userRepo.FindByEmail(ctx, adminEmail)
	if err == nil {
		logger.Info("Admin user already present, skipping")
		return nil
	}
	if !apperror.IsKind(err, apperror.KindNotFound) {
		return err
	}

	hashed, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := domain.User{
		FullName: "Store Admin",
		Email:    adminEmail,
		Password: hashed,
		Role:     "admin",
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		return err
	}

	logger.Info("Admin user created", "email", admin.Email)
	return nil
}

func seedCategoryRows(db *gorm.DB) (map[string]uint, error) {
	ids := make(map[string]uint, len(seedCategories))

	for _, name := range seedCategories {
		var cat domain.Category
		err := db.Where("name = ?", name).First(&cat).Error
		if err == gorm.ErrRecordNotFound {
			cat = domain.Category{Name: name}
			if err := db.Create(&cat).Error; err != nil {
				return nil, fmt.Errorf("failed to create category %q: %w", name, err)
			}
		} else if err != nil {
			return nil, err
		}
		ids[name] = cat.ID
	}

	logger.Info("Categories seeded", "count", len(ids))
	return ids, nil
}

func seedProductRows(db *gorm.DB, categoryIDs map[string]uint) error {
	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Products already present, skipping", "count", count)
		return nil
	}

	for _, p := range seedProducts {
		categoryID, ok := categoryIDs[p.category]
		if !ok {
			return fmt.Errorf("unknown category %q for product %q", p.category, p.name)
		}

		row := domain.Product{
			ProductSKU:    uuid.NewString(),
			ProductName:   p.name,
			Description:   p.description,
			CategoryID:    categoryID,
			Price:         p.price,
			OriginalPrice: p.originalPrice,
			Image:         p.image,
			InStock:       true,
			Featured:      p.featured,
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create product %q: %w", p.name, err)
		}
	}

	logger.Info("Products seeded", "count", len(seedProducts))
	return nil
}
