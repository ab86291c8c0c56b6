package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices are rendered as JSON numbers, e.g. "price": 3.5
	decimal.MarshalJSONWithoutQuotes = true
}

type BakedGood struct {
	ID        uint            `json:"id" gorm:"primary_key"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	BakeryID  uint            `json:"bakery_id" gorm:"not null;index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
