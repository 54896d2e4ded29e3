package domain

import "time"

// CREATE TABLE public.products (
//     id             BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_sku    TEXT,
//     product_name   TEXT NOT NULL,
//     description    TEXT,
//     category_id    BIGINT NOT NULL,
//     price          NUMERIC NOT NULL,
//     original_price NUMERIC,
//     image          TEXT,
//     in_stock       BOOLEAN DEFAULT TRUE,
//     featured       BOOLEAN DEFAULT FALSE,
//     created_at     TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductSKU    string    `gorm:"column:product_sku;type:text" json:"product_sku"`
	ProductName   string    `gorm:"column:product_name;type:text;not null" json:"product_name"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	CategoryID    uint      `gorm:"column:category_id;not null;index" json:"category_id"`
	Price         float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	OriginalPrice float64   `gorm:"column:original_price;type:numeric" json:"original_price"`
	Image         string    `gorm:"column:image;type:text" json:"image"`
	InStock       bool      `gorm:"column:in_stock;default:true" json:"in_stock"`
	Featured      bool      `gorm:"column:featured;default:false" json:"featured"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
