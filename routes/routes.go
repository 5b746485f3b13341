package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-fos-backend/controllers"
	"hotel-fos-backend/middleware"
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

func SetupRouter(
	oc *controllers.OrderController,
	bc *controllers.BillController,
	dc *controllers.DashboardController,
	gc *controllers.GuestController,
	mc *controllers.MenuController,
	uc *controllers.UserController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

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
		menu := api.Group("/menu")
		{
			menu.GET("", mc.GetMenuItems)
			menu.POST("", mc.CreateMenuItem)
			menu.PUT("/:id", mc.UpdateMenuItem)
			menu.DELETE("/:id", mc.DeleteMenuItem)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		orders := api.Group("/order")
		{
			orders.GET("", oc.GetOrders)
			orders.POST("", oc.CreateOrder)
			orders.PUT("/:id", oc.UpdateOrderStatus)
			orders.DELETE("/:id", oc.DeleteOrder)
		}

		bills := api.Group("/bill")
		{
			bills.GET("/:guestId", bc.GetBillByGuest)
			bills.PUT("/:id", bc.UpdateBillPayment)
		}

		api.GET("/dashboard", dc.GetDashboard)

		users := api.Group("/user")
		{
			users.POST("/login", uc.Login)
			users.GET("", uc.GetUsers)
			users.POST("", uc.CreateUser)
			users.PUT("/:id", uc.UpdateUser)
			users.DELETE("/:id", uc.DeleteUser)
		}
	}

	return r
}
