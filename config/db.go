package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-management/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
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
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase fills empty reference tables so a fresh install is usable:
// a default admin account, the role catalog, customer types (including the
// Foreign type driving the pricing coefficient) and a starter room type set.
func SeedDatabase() {
	// ---------------- Users ----------------
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName: "Admin User",
				Username: "admin@hotel.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Roles ----------------
	desiredRoles := []models.Role{
		{Name: "admin", Description: "Full access"},
		{Name: "manager", Description: "Catalog and reporting access"},
		{Name: "receptionist", Description: "Front desk operations"},
	}

	permissionsByRole := map[string][]string{
		"admin": {
			"booking.view", "booking.create", "booking.edit", "booking.delete",
			"invoice.view", "invoice.create",
			"room.view", "room.create", "room.edit", "room.delete",
			"roomType.view", "roomType.create", "roomType.edit", "roomType.delete",
			"customer.view", "customer.create", "customer.edit", "customer.delete",
		},
		"manager": {
			"booking.view", "booking.create", "booking.edit",
			"invoice.view", "invoice.create",
			"room.view", "room.create", "room.edit",
			"roomType.view", "roomType.create", "roomType.edit",
			"customer.view", "customer.create", "customer.edit",
		},
		"receptionist": {
			"booking.view", "booking.create",
			"invoice.view", "invoice.create",
			"room.view",
			"customer.view", "customer.create",
		},
	}

	for i := range desiredRoles {
		role := desiredRoles[i]

		var existing models.Role
		err := DB.Where("LOWER(name) = ?", strings.ToLower(role.Name)).First(&existing).Error
		if err == nil && existing.ID != 0 {
			continue
		}

		if err := DB.Create(&role).Error; err != nil {
			log.Printf("warning: failed to create role %s: %v", role.Name, err)
			continue
		}

		perms := make([]models.RolePermission, 0, len(permissionsByRole[role.Name]))
		for _, p := range permissionsByRole[role.Name] {
			perms = append(perms, models.RolePermission{RoleID: role.ID, Permission: p})
		}
		if len(perms) > 0 {
			if err := DB.Create(&perms).Error; err != nil {
				log.Printf("warning: failed to create permissions for role %s: %v", role.Name, err)
			}
		}
	}

	// ---------------- CustomerTypes ----------------
	var ctCount int64
	DB.Model(&models.CustomerType{}).Count(&ctCount)
	if ctCount == 0 {
		customerTypes := []models.CustomerType{
			{Name: "Standard", Coefficient: 1},
			{Name: "Foreign", Coefficient: 1.5},
		}
		if err := DB.Create(&customerTypes).Error; err != nil {
			log.Printf("warning: failed to seed customer types: %v", err)
		} else {
			log.Println("CustomerTypes seeded")
		}
	}

	// ---------------- RoomTypes ----------------
	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", MaxOccupancy: 2, SurchargeRate: 0.1, Price: 80},
			{Name: "Superior", MaxOccupancy: 3, SurchargeRate: 0.15, Price: 120},
			{Name: "Deluxe", MaxOccupancy: 4, SurchargeRate: 0.2, Price: 180},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")
		}
	}
}
