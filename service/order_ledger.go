package service

import (
	"cinema_booking/model"

	"gorm.io/gorm"
)

// OrdersForAccount lists the account's orders in creation order with the
// screening, film and venue attached.
func OrdersForAccount(db *gorm.DB, accountID uint) ([]model.Order, error) {
	var orders []model.Order
	err := db.
		Preload("Screening").
		Preload("Screening.Film").
		Preload("Screening.Venue").
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// TotalSpent sums quantity times the current screening price over the
// account's orders. Prices are not snapshotted at order time.
func TotalSpent(db *gorm.DB, accountID uint) (uint, error) {
	var total uint
	err := db.Model(&model.Order{}).
		Joins("JOIN screenings ON screenings.id = orders.screening_id").
		Where("orders.account_id = ?", accountID).
		Select("COALESCE(SUM(orders.quantity * screenings.price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
