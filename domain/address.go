package domain

import "time"

// CREATE TABLE public.addresses (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id      BIGINT NOT NULL,
//     first_name   TEXT NOT NULL,
//     last_name    TEXT NOT NULL,
//     address_line TEXT NOT NULL,
//     city         TEXT NOT NULL,
//     state        TEXT NOT NULL,
//     zip_code     TEXT NOT NULL,
//     country      TEXT NOT NULL DEFAULT 'United States',
//     phone        TEXT,
//     is_default   BOOLEAN NOT NULL DEFAULT FALSE,
//     created_at   TIMESTAMPTZ DEFAULT NOW(),
//     updated_at   TIMESTAMPTZ DEFAULT NOW()
// );
// CREATE INDEX idx_addresses_user_id ON public.addresses (user_id);

// Address invariant: per user at most one row has is_default = true,
// and exactly one whenever the user owns any address at all.
type Address struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	FirstName   string    `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName    string    `gorm:"column:last_name;type:text;not null" json:"last_name"`
	AddressLine string    `gorm:"column:address_line;type:text;not null" json:"address_line"`
	City        string    `gorm:"column:city;type:text;not null" json:"city"`
	State       string    `gorm:"column:state;type:text;not null" json:"state"`
	ZipCode     string    `gorm:"column:zip_code;type:text;not null" json:"zip_code"`
	Country     string    `gorm:"column:country;type:text;not null;default:'United States'" json:"country"`
	Phone       string    `gorm:"column:phone;type:text" json:"phone"`
	IsDefault   bool      `gorm:"column:is_default;default:false" json:"is_default"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}
