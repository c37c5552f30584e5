package service

import (
	"cinema_booking/model"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reserve atomically books quantity tickets on a screening for an account.
// The occupancy increment and the order insert happen in one transaction:
// either both commit or neither does. The capacity check is part of the
// UPDATE itself, so two concurrent reservations can never both pass it
// against a stale occupancy value.
func Reserve(db *gorm.DB, screeningID, accountID uint, quantity int) (*model.Order, uint, error) {
	var order model.Order
	var remaining uint

	err := db.Transaction(func(tx *gorm.DB) error {
		var screening model.Screening
		if err := tx.Preload("Venue").First(&screening, screeningID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if screening.EndTime.Before(time.Now()) {
			return ErrShowEnded
		}
		if quantity <= 0 {
			return ErrInvalidQuantity
		}

		// Atomic compare-and-increment: the venue capacity bound lives in
		// the WHERE clause, so a stale read cannot oversell.
		res := tx.Model(&model.Screening{}).
			Where("id = ? AND occupancy + ? <= (SELECT capacity FROM venues WHERE venues.id = screenings.venue_id)",
				screeningID, quantity).
			Update("occupancy", gorm.Expr("occupancy + ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCapacityExceeded
		}

		order = model.Order{
			PublicCode:  newOrderCode(),
			AccountId:   accountID,
			ScreeningId: screeningID,
			Quantity:    uint(quantity),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Preload("Venue").First(&screening, screeningID).Error; err != nil {
			return err
		}
		remaining = screening.Remaining()
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &order, remaining, nil
}

func newOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}
