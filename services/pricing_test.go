package services

import (
	"testing"
	"time"

	"hotel-management/models"
)

func TestNights(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		want     int
	}{
		{"three full days", base.AddDate(0, 0, 3), 3},
		{"one full day", base.AddDate(0, 0, 1), 1},
		{"partial day rounds up", base.Add(36 * time.Hour), 2},
		{"under a day floors to one", base.Add(6 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nights(base, tt.checkOut); got != tt.want {
				t.Errorf("Nights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuoteStayBaseOnly(t *testing.T) {
	rt := models.RoomType{Price: 100, SurchargeRate: 0.2, MaxOccupancy: 2}

	quote := QuoteStay(rt, 2, 3, 0)

	if quote.TotalPrice != 300 {
		t.Errorf("expected total 300, got %v", quote.TotalPrice)
	}
	if quote.RoomPrice != 100 {
		t.Errorf("expected room price snapshot 100, got %v", quote.RoomPrice)
	}
	if len(quote.Fees) != 0 {
		t.Errorf("expected no fees, got %v", quote.Fees)
	}
}

func TestQuoteStaySurcharge(t *testing.T) {
	// 3 nights at 100, 3 guests in a 2-guest room with 20% surcharge:
	// base 300, fee line 100*0.2 = 20, running price 300 + 60 = 360.
	rt := models.RoomType{Price: 100, SurchargeRate: 0.2, MaxOccupancy: 2}

	quote := QuoteStay(rt, 3, 3, 0)

	if quote.TotalPrice != 360 {
		t.Errorf("expected total 360, got %v", quote.TotalPrice)
	}
	if len(quote.Fees) != 1 {
		t.Fatalf("expected 1 fee, got %d", len(quote.Fees))
	}
	if quote.Fees[0].Description != "Surcharge fee" {
		t.Errorf("unexpected fee description %q", quote.Fees[0].Description)
	}
	// The fee line uses the original per-night rate, not the running price.
	if quote.Fees[0].Amount != 20 {
		t.Errorf("expected surcharge fee 20, got %v", quote.Fees[0].Amount)
	}
}

func TestQuoteStaySurchargeAndForeign(t *testing.T) {
	// Same stay plus a foreign guest with coefficient 1.5:
	// post-surcharge price 360, foreign fee 360*0.5 = 180, final 540.
	rt := models.RoomType{Price: 100, SurchargeRate: 0.2, MaxOccupancy: 2}

	quote := QuoteStay(rt, 3, 3, 1.5)

	if quote.TotalPrice != 540 {
		t.Errorf("expected total 540, got %v", quote.TotalPrice)
	}
	if len(quote.Fees) != 2 {
		t.Fatalf("expected 2 fees, got %d", len(quote.Fees))
	}
	if quote.Fees[1].Description != "Foreign customer fee" {
		t.Errorf("unexpected fee description %q", quote.Fees[1].Description)
	}
	if quote.Fees[1].Amount != 180 {
		t.Errorf("expected foreign fee 180, got %v", quote.Fees[1].Amount)
	}
}

func TestQuoteStayForeignWithoutSurcharge(t *testing.T) {
	// Foreign coefficient applies to the plain base when occupancy is fine.
	rt := models.RoomType{Price: 100, SurchargeRate: 0.2, MaxOccupancy: 4}

	quote := QuoteStay(rt, 2, 2, 1.5)

	if quote.TotalPrice != 300 {
		t.Errorf("expected total 300, got %v", quote.TotalPrice)
	}
	if len(quote.Fees) != 1 || quote.Fees[0].Amount != 100 {
		t.Errorf("expected single foreign fee of 100, got %v", quote.Fees)
	}
}

func TestQuoteStayCoefficientOfOneAddsNothing(t *testing.T) {
	rt := models.RoomType{Price: 100, MaxOccupancy: 2}

	quote := QuoteStay(rt, 1, 2, 1)

	if quote.TotalPrice != 200 {
		t.Errorf("expected total 200, got %v", quote.TotalPrice)
	}
	if len(quote.Fees) != 0 {
		t.Errorf("expected no fees, got %v", quote.Fees)
	}
}

func TestForeignCoefficient(t *testing.T) {
	foreign := models.CustomerType{Name: "Foreign", Coefficient: 1.5}
	standard := models.CustomerType{Name: "Standard", Coefficient: 1}

	customers := []models.Customer{
		{FullName: "A", CustomerType: standard},
		{FullName: "B", CustomerType: foreign},
	}

	coeff, ok := ForeignCoefficient(customers)
	if !ok || coeff != 1.5 {
		t.Errorf("expected (1.5, true), got (%v, %v)", coeff, ok)
	}

	coeff, ok = ForeignCoefficient(customers[:1])
	if ok || coeff != 0 {
		t.Errorf("expected (0, false), got (%v, %v)", coeff, ok)
	}

	// Name match is case-insensitive.
	customers[1].CustomerType.Name = "FOREIGN"
	if _, ok := ForeignCoefficient(customers); !ok {
		t.Error("expected case-insensitive match on type name")
	}

	// A foreign type at coefficient 1 adds nothing and must not shadow a
	// later one that does.
	shadowed := []models.Customer{
		{FullName: "C", CustomerType: models.CustomerType{Name: "foreign", Coefficient: 1}},
		{FullName: "D", CustomerType: models.CustomerType{Name: "Foreign", Coefficient: 1.5}},
	}
	coeff, ok = ForeignCoefficient(shadowed)
	if !ok || coeff != 1.5 {
		t.Errorf("expected (1.5, true), got (%v, %v)", coeff, ok)
	}
}
