package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/routes"
	"hotel-management/services"
	"hotel-management/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	// Initialize services
	catalog := services.NewCatalogService(db)
	catalog.StrictCustomers = utils.EnvBool("BOOKING_STRICT_CUSTOMERS")
	availability := services.AvailabilityChecker{
		SkipCancelled: utils.EnvBool("BOOKING_SKIP_CANCELLED"),
	}

	bookingService := services.NewBookingService(db, catalog, availability)
	invoiceService := services.NewInvoiceService(db)
	roomService := services.NewRoomService(db)
	roomTypeService := services.NewRoomTypeService(db)
	customerService := services.NewCustomerService(db)
	customerTypeService := services.NewCustomerTypeService(db)

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	roomController := controllers.NewRoomController(roomService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)
	customerController := controllers.NewCustomerController(customerService)
	customerTypeController := controllers.NewCustomerTypeController(customerTypeService)

	router := routes.SetupRouter(
		bookingController,
		invoiceController,
		roomController,
		roomTypeController,
		customerController,
		customerTypeController,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
