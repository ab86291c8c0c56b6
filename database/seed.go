package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"

	"github.com/ken-eddy/bakeryApp/models"
)

type seedGood struct {
	name  string
	price string
}

type seedBakery struct {
	name  string
	goods []seedGood
}

var sampleBakeries = []seedBakery{
	{name: "Delightful donuts", goods: []seedGood{
		{"Chocolate dipped donut", "2.75"},
		{"Apple fritter", "3.25"},
	}},
	{name: "Incredible crullers", goods: []seedGood{
		{"Glazed honey cruller", "3.00"},
		{"Croissant", "3.50"},
		{"Baguette", "4.20"},
	}},
	{name: "Artisan breads", goods: []seedGood{
		{"Sourdough loaf", "7.50"},
	}},
}

// Seed inserts sample bakeries and baked goods into an empty store. It does
// nothing when bakeries already exist.
func Seed(db *gorm.DB) error {
	var count int
	if err := db.Model(&models.Bakery{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count bakeries: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx := db.Begin()
	for _, sb := range sampleBakeries {
		bakery := models.Bakery{Name: sb.name}
		if err := tx.Create(&bakery).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed bakery %q: %w", sb.name, err)
		}
		for _, sg := range sb.goods {
			good := models.BakedGood{
				Name:     sg.name,
				Price:    decimal.RequireFromString(sg.price),
				BakeryID: bakery.ID,
			}
			if err := tx.Create(&good).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to seed baked good %q: %w", sg.name, err)
			}
		}
	}
	return tx.Commit().Error
}
