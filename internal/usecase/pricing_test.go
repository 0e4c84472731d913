package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cinebook/internal/data/entity"
)

func regularSeat() *entity.Seat {
	return &entity.Seat{SeatType: entity.SeatTypeRegular}
}

func vipSeat() *entity.Seat {
	return &entity.Seat{SeatType: entity.SeatTypeVIP}
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 14, hour, 0, 0, 0, time.UTC)
}

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name      string
		base      float64
		seat      *entity.Seat
		hallSeats int
		start     time.Time
		discount  string
		want      float64
	}{
		{
			name:      "regular seat morning small hall",
			base:      850,
			seat:      regularSeat(),
			hallSeats: 50,
			start:     at(10),
			want:      850,
		},
		{
			name:      "zero base falls back to default",
			base:      0,
			seat:      regularSeat(),
			hallSeats: 50,
			start:     at(10),
			want:      850,
		},
		{
			name:      "vip seat multiplies first",
			base:      850,
			seat:      vipSeat(),
			hallSeats: 50,
			start:     at(10),
			want:      1275,
		},
		{
			name:      "noon start adds surcharge",
			base:      850,
			seat:      regularSeat(),
			hallSeats: 50,
			start:     at(12),
			want:      950,
		},
		{
			name:      "large hall multiplies after surcharge",
			base:      850,
			seat:      regularSeat(),
			hallSeats: 150,
			start:     at(10),
			want:      935,
		},
		{
			name:      "vip afternoon large hall",
			base:      850,
			seat:      vipSeat(),
			hallSeats: 150,
			start:     at(15),
			want:      1512.50,
		},
		{
			name:      "hall at the threshold is not large",
			base:      850,
			seat:      regularSeat(),
			hallSeats: 100,
			start:     at(10),
			want:      850,
		},
		{
			name:      "student discount",
			base:      1000,
			seat:      regularSeat(),
			hallSeats: 50,
			start:     at(10),
			discount:  "STUDENT10",
			want:      900,
		},
		{
			name:      "discount code is case-insensitive",
			base:      1000,
			seat:      regularSeat(),
			hallSeats: 50,
			start:     at(10),
			discount:  "vip20",
			want:      800,
		},
		{
			name:      "free overrides everything",
			base:      850,
			seat:      vipSeat(),
			hallSeats: 150,
			start:     at(20),
			discount:  "FREE",
			want:      0,
		},
		{
			name:      "unknown code is ignored",
			base:      850,
			seat:      regularSeat(),
			hallSeats: 50,
			start:     at(10),
			discount:  "SUMMER50",
			want:      850,
		},
		{
			name:      "no seat skips seat factors",
			base:      850,
			seat:      nil,
			hallSeats: 150,
			start:     at(15),
			want:      950,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(tt.base, tt.seat, tt.hallSeats, tt.start, tt.discount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePriceRounding(t *testing.T) {
	// 333.33 * 0.9 = 299.997, which rounds to 300.00.
	got := CalculatePrice(333.33, regularSeat(), 50, at(10), "STUDENT10")
	assert.Equal(t, 300.00, got)
}
