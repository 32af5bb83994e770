package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SortDesc orders by column descending with the primary key as a tiebreaker
// so listings are stable between calls
func SortDesc(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}).
			Order("id ASC")
	}
}

// LowStock filters inventory items at or below their minimum stock level
func LowStock(db *gorm.DB) *gorm.DB {
	return db.Where("quantity <= min_stock")
}
