package models

import "time"

type Bakery struct {
	ID         uint        `json:"id" gorm:"primary_key"`
	Name       string      `json:"name"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	BakedGoods []BakedGood `json:"baked_goods" gorm:"foreignkey:BakeryID"`
}

// AfterFind keeps baked_goods an array in JSON for bakeries without goods.
func (b *Bakery) AfterFind() error {
	if b.BakedGoods == nil {
		b.BakedGoods = []BakedGood{}
	}
	return nil
}
