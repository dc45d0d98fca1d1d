package services

import (
	"math"
	"time"

	"hotel-management/models"
)

// StayQuote is the priced result for one room-stay.
type StayQuote struct {
	Nights     int
	RoomPrice  float64 // per-night base rate snapshot
	Fees       []models.AdditionalFee
	TotalPrice float64
}

// Nights counts billable nights between check-in and check-out: the span
// rounded up to whole days, never less than one.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// QuoteStay prices a single stay. The adjustment order matters and must not
// be rearranged:
//
//  1. price = rate * nights
//  2. over-occupancy surcharge: the fee line is rate * surchargeRate (off the
//     original per-night rate), while the running price grows by its own
//     surchargeRate fraction
//  3. foreign-guest coefficient, applied to the post-surcharge price
//
// foreignCoefficient <= 1 means no foreign guest on the booking (or a
// coefficient that adds nothing either way).
func QuoteStay(roomType models.RoomType, numberOfGuests, nights int, foreignCoefficient float64) StayQuote {
	price := roomType.Price * float64(nights)

	var fees []models.AdditionalFee
	if numberOfGuests > roomType.MaxOccupancy {
		fees = append(fees, models.AdditionalFee{
			Description: "Surcharge fee",
			Amount:      roomType.Price * roomType.SurchargeRate,
		})
		price += price * roomType.SurchargeRate
	}

	if foreignCoefficient > 1 {
		fees = append(fees, models.AdditionalFee{
			Description: "Foreign customer fee",
			Amount:      price * (foreignCoefficient - 1),
		})
		price *= foreignCoefficient
	}

	return StayQuote{
		Nights:     nights,
		RoomPrice:  roomType.Price,
		Fees:       fees,
		TotalPrice: price,
	}
}

// ForeignCoefficient returns the pricing coefficient to apply when any of the
// booking's customers belongs to a "Foreign" customer type with a coefficient
// above 1, and whether one was found. A foreign type at coefficient 1 adds
// nothing and must not shadow another that does. Customer types must be
// preloaded.
func ForeignCoefficient(customers []models.Customer) (float64, bool) {
	for _, c := range customers {
		if c.CustomerType.IsForeign() && c.CustomerType.Coefficient > 1 {
			return c.CustomerType.Coefficient, true
		}
	}
	return 0, false
}
