package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-management/controllers"
	"hotel-management/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all controllers onto the /api surface.
func SetupRouter(
	bc *controllers.BookingController,
	ic *controllers.InvoiceController,
	rc *controllers.RoomController,
	rtc *controllers.RoomTypeController,
	cc *controllers.CustomerController,
	ctc *controllers.CustomerTypeController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
			bookings.DELETE("/:id", bc.DeleteBooking)
			bookings.POST("/:id/checkout", ic.CheckoutBooking)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ic.GetInvoices)
			invoices.GET("/:id", ic.GetInvoice)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.GET("/:id", rtc.GetRoomType)
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.PATCH("/:id", rtc.UpdateRoomType)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", cc.GetCustomers)
			customers.GET("/:id", cc.GetCustomer)
			customers.POST("", cc.CreateCustomer)
			customers.PATCH("/:id", cc.UpdateCustomer)
			customers.DELETE("/:id", cc.DeleteCustomer)
		}

		customerTypes := api.Group("/customer-types")
		{
			customerTypes.GET("", ctc.GetCustomerTypes)
			customerTypes.POST("", ctc.CreateCustomerType)
			customerTypes.PATCH("/:id", ctc.UpdateCustomerType)
			customerTypes.DELETE("/:id", ctc.DeleteCustomerType)
		}
	}

	return r
}
