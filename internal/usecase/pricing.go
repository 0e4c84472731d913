package usecase

import (
	"math"
	"strings"
	"time"

	"cinebook/internal/data/entity"
)

const (
	// DefaultBasePrice backs screenings persisted without a base price.
	DefaultBasePrice = 850.00

	vipMultiplier       = 1.5
	lateSurcharge       = 100.00
	largeHallMultiplier = 1.1
	largeHallThreshold  = 100
)

// CalculatePrice computes a ticket price from the screening's base price,
// the assigned seat (nil when no seat), the seat's hall size and the
// screening start time. Deterministic, no I/O; the steps apply strictly
// in this order because the surcharge is additive while the rest are
// multiplicative:
//
//  1. base = screening price, falling back to DefaultBasePrice when unset
//  2. VIP seat: x1.5
//  3. start at or after noon: +100
//  4. seat in a hall with more than 100 seats: x1.1
//  5. discount code (case-insensitive): STUDENT10 x0.9, VIP20 x0.8,
//     FREE overrides everything to 0; unknown codes are silently ignored
//  6. round half away from zero to 2 decimal places, floor at 0; the
//     running total never goes negative so this matches half-up
func CalculatePrice(base float64, seat *entity.Seat, hallTotalSeats int, startTime time.Time, discountCode string) float64 {
	price := base
	if price <= 0 {
		price = DefaultBasePrice
	}

	if seat != nil && seat.SeatType == entity.SeatTypeVIP {
		price *= vipMultiplier
	}

	if startTime.Hour() >= 12 {
		price += lateSurcharge
	}

	if seat != nil && hallTotalSeats > largeHallThreshold {
		price *= largeHallMultiplier
	}

	switch strings.ToUpper(discountCode) {
	case "STUDENT10":
		price *= 0.9
	case "VIP20":
		price *= 0.8
	case "FREE":
		price = 0
	}

	price = math.Round(price*100) / 100
	if price < 0 {
		price = 0
	}

	return price
}
