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

	"hotel-fos-backend/config"
	"hotel-fos-backend/controllers"
	"hotel-fos-backend/routes"
	"hotel-fos-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("✅ Database connection established and migrations applied")

	// Services
	billService := services.NewBillService(db)
	orderService := services.NewOrderService(db, billService)
	dashboardService := services.NewDashboardService(db)
	guestService := services.NewGuestService(db)
	menuService := services.NewMenuService(db)
	userService := services.NewUserService(db)

	// Controllers
	orderController := controllers.NewOrderController(orderService)
	billController := controllers.NewBillController(billService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	guestController := controllers.NewGuestController(guestService)
	menuController := controllers.NewMenuController(menuService)
	userController := controllers.NewUserController(userService)

	router := routes.SetupRouter(
		orderController,
		billController,
		dashboardController,
		guestController,
		menuController,
		userController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
