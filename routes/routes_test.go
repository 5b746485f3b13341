package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-fos-backend/config"
	"hotel-fos-backend/controllers"
	"hotel-fos-backend/models"
	"hotel-fos-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	billService := services.NewBillService(db)
	orderService := services.NewOrderService(db, billService)

	router := SetupRouter(
		controllers.NewOrderController(orderService),
		controllers.NewBillController(billService),
		controllers.NewDashboardController(services.NewDashboardService(db)),
		controllers.NewGuestController(services.NewGuestService(db)),
		controllers.NewMenuController(services.NewMenuService(db)),
		controllers.NewUserController(services.NewUserService(db)),
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	router, db := setupServer(t)

	guest := models.Guest{Name: "Bob", RoomNo: "204"}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	item := models.MenuItem{Name: "Pasta", Category: "Main", Price: 12}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}

	body := fmt.Sprintf(`{"guestId":%q,"items":[{"menuItemId":%q,"quantity":2,"price":12}],"totalPrice":24}`, guest.ID, item.ID)
	w := doJSON(t, router, http.MethodPost, "/api/order", body)
	if w.Code != http.StatusOK {
		t.Fatalf("create: status=%d body=%s", w.Code, w.Body.String())
	}

	var created models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("create response: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("server fields missing: %+v", created)
	}

	// enriched listing
	w = doJSON(t, router, http.MethodGet, "/api/order", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status=%d", w.Code)
	}
	var views []services.OrderView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("list response: %v", err)
	}
	if len(views) != 1 || views[0].Guest.Name != "Bob" || views[0].TotalPrice != 24 {
		t.Fatalf("views = %+v", views)
	}

	// bill opened by the order
	w = doJSON(t, router, http.MethodGet, "/api/bill/"+guest.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("bill: status=%d", w.Code)
	}
	var bill models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("bill response: %v", err)
	}
	if bill.FoodCharges != 24 || bill.TotalAmount != 24 {
		t.Fatalf("bill = %+v", bill)
	}

	// status update
	w = doJSON(t, router, http.MethodPut, "/api/order/"+created.ID, `{"status":"Preparing"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status update: status=%d body=%s", w.Code, w.Body.String())
	}

	// delete reconciles the bill back down
	w = doJSON(t, router, http.MethodDelete, "/api/order/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status=%d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodGet, "/api/bill/"+guest.ID, "")
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("bill response: %v", err)
	}
	if bill.FoodCharges != 0 || bill.TotalAmount != 0 {
		t.Fatalf("bill after delete = %+v", bill)
	}
}

func TestCreateOrderRequiresGuestID(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/order", `{"totalPrice":10}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestOrderNotFoundResponses(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodPut, "/api/order/ghost", `{"status":"Ready"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status update: status=%d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/order/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete: status=%d, want 404", w.Code)
	}
}

func TestGetBillWithoutBillReturnsNull(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/bill/nobody", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("body = %q, want null", w.Body.String())
	}
}

func TestUpdateBillPayment(t *testing.T) {
	router, db := setupServer(t)

	bills := services.NewBillService(db)
	if err := bills.ApplyOrderCharge("g1", 30); err != nil {
		t.Fatalf("seed bill: %v", err)
	}
	bill, err := bills.GetByGuest("g1")
	if err != nil {
		t.Fatalf("get bill: %v", err)
	}

	w := doJSON(t, router, http.MethodPut, "/api/bill/"+bill.ID, `{"paymentStatus":"Paid"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var updated models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("response: %v", err)
	}
	if updated.PaymentStatus != "Paid" {
		t.Fatalf("paymentStatus = %q", updated.PaymentStatus)
	}

	w = doJSON(t, router, http.MethodPut, "/api/bill/ghost", `{"paymentStatus":"Paid"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	router, db := setupServer(t)

	orders := services.NewOrderService(db, services.NewBillService(db))
	for _, o := range []models.Order{
		{GuestID: "g1", Status: models.OrderStatusPending, TotalPrice: 10},
		{GuestID: "g1", Status: models.OrderStatusPreparing, TotalPrice: 20},
		{GuestID: "g2", Status: models.OrderStatusCompleted, TotalPrice: 30},
	} {
		order := o
		if err := orders.Create(&order); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var stats services.DashboardStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("response: %v", err)
	}
	if stats.DailyOrders != 3 || stats.PendingOrders != 1 || stats.PreparingOrders != 1 || stats.TotalEarnings != 60 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestUserEndpoints(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/user", `{"username":"desk","password":"pw","role":"Receptionist"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create user: status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/user", `{"username":"desk","password":"pw2","role":"Receptionist"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate user: status=%d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/user/login", `{"username":"desk","password":"pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status=%d body=%s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("login response: %v", err)
	}
	if login.Token == "" || login.Role != "Receptionist" {
		t.Fatalf("login = %+v", login)
	}

	w = doJSON(t, router, http.MethodPost, "/api/user/login", `{"username":"desk","password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: status=%d, want 401", w.Code)
	}

	// listing must not leak password hashes
	w = doJSON(t, router, http.MethodGet, "/api/user", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list users: status=%d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "$2a$") {
		t.Fatalf("password leaked: %s", w.Body.String())
	}
}

func TestMenuAndGuestCRUD(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/menu", `{"name":"Soup","description":"Tomato","category":"Starter","price":6.5}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create menu item: status=%d body=%s", w.Code, w.Body.String())
	}
	var item models.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("response: %v", err)
	}

	w = doJSON(t, router, http.MethodPut, "/api/menu/"+item.ID, `{"price":7}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update menu item: status=%d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/menu/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete unknown menu item: status=%d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/guests", `{"name":"Cara","contact":"555","roomNo":"301"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create guest: status=%d body=%s", w.Code, w.Body.String())
	}
	var guest models.Guest
	if err := json.Unmarshal(w.Body.Bytes(), &guest); err != nil {
		t.Fatalf("response: %v", err)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/guests/"+guest.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete guest: status=%d", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/guests/"+guest.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: status=%d, want 404", w.Code)
	}
}
