package services

import (
	"testing"
	"time"

	"hotel-management/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	// Each sqlite :memory: connection is its own database; keep the pool at
	// one connection so every query sees the same schema.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.RolePermission{},
		&models.RoomType{},
		&models.Room{},
		&models.CustomerType{},
		&models.Customer{},
		&models.Booking{},
		&models.BookingDetail{},
		&models.Invoice{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// fixture is the minimal catalog a booking needs: one room type, one room,
// customers of both types and the staff user creating bookings.
type fixture struct {
	RoomType         models.RoomType
	Room             models.Room
	SecondRoom       models.Room
	StandardCustomer models.Customer
	ForeignCustomer  models.Customer
	User             models.User
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{}

	f.RoomType = models.RoomType{Name: "Deluxe", MaxOccupancy: 2, SurchargeRate: 0.2, Price: 100}
	if err := db.Create(&f.RoomType).Error; err != nil {
		t.Fatalf("failed to create room type: %v", err)
	}

	f.Room = models.Room{RoomTypeID: f.RoomType.ID, RoomName: "101", Status: models.RoomAvailable}
	if err := db.Create(&f.Room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	f.SecondRoom = models.Room{RoomTypeID: f.RoomType.ID, RoomName: "102", Status: models.RoomAvailable}
	if err := db.Create(&f.SecondRoom).Error; err != nil {
		t.Fatalf("failed to create second room: %v", err)
	}

	standard := models.CustomerType{Name: "Standard", Coefficient: 1}
	foreign := models.CustomerType{Name: "Foreign", Coefficient: 1.5}
	if err := db.Create(&standard).Error; err != nil {
		t.Fatalf("failed to create customer type: %v", err)
	}
	if err := db.Create(&foreign).Error; err != nil {
		t.Fatalf("failed to create customer type: %v", err)
	}

	f.StandardCustomer = models.Customer{
		FullName: "Alice Local", IDNumber: "ID-1", Phone: "555-0001", CustomerTypeID: standard.ID,
	}
	f.ForeignCustomer = models.Customer{
		FullName: "Bob Abroad", IDNumber: "ID-2", Phone: "555-0002", CustomerTypeID: foreign.ID,
	}
	if err := db.Create(&f.StandardCustomer).Error; err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}
	if err := db.Create(&f.ForeignCustomer).Error; err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}

	f.User = models.User{Username: "reception@hotel.local", FullName: "Front Desk"}
	if err := db.Create(&f.User).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return f
}

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(db, NewCatalogService(db), AvailabilityChecker{})
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
