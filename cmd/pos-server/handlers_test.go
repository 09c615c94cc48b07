package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vanitalunch/pos-backend/internal/menu"
	"github.com/vanitalunch/pos-backend/internal/notify"
	"github.com/vanitalunch/pos-backend/internal/order"
)

//
// ---------- STUBS & FAKES ----------
//

// stubMenuRepo implements menu.Repository in memory.
type stubMenuRepo struct {
	items  map[int64]menu.MenuItem
	nextID int64
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{items: make(map[int64]menu.MenuItem)}
}

func (s *stubMenuRepo) List(ctx context.Context, onlyAvailable bool) ([]menu.MenuItem, error) {
	var out []menu.MenuItem
	for _, m := range s.items {
		if onlyAvailable && !m.IsAvailable {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ItemName < out[j].ItemName
	})
	return out, nil
}

func (s *stubMenuRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, m := range s.items {
		if m.IsAvailable && !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *stubMenuRepo) GetByID(ctx context.Context, id int64) (*menu.MenuItem, error) {
	m, ok := s.items[id]
	if !ok {
		return nil, menu.ErrNotFound
	}
	return &m, nil
}

func (s *stubMenuRepo) Create(ctx context.Context, m *menu.MenuItem) error {
	s.nextID++
	m.ID = s.nextID
	m.CreatedAt = time.Now()
	s.items[m.ID] = *m
	return nil
}

func (s *stubMenuRepo) Update(ctx context.Context, m *menu.MenuItem) error {
	if _, ok := s.items[m.ID]; !ok {
		return menu.ErrNotFound
	}
	s.items[m.ID] = *m
	return nil
}

func (s *stubMenuRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// stubOrderRepo implements order.Repository in memory.
type stubOrderRepo struct {
	orders map[int64]order.Order
	nextID int64
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[int64]order.Order)}
}

func (s *stubOrderRepo) Create(ctx context.Context, o *order.Order) error {
	s.nextID++
	o.ID = s.nextID
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	s.orders[o.ID] = *o
	return nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return &o, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (s *stubOrderRepo) List(ctx context.Context, f order.Filter) ([]order.Order, error) {
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var out []order.Order
	for _, o := range s.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if !f.Date.IsZero() && !sameDay(o.CreatedAt, f.Date) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (*order.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	s.orders[id] = o
	return &o, nil
}

func (s *stubOrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

func (s *stubOrderRepo) Stats(ctx context.Context, asOf time.Time) (*order.Stats, error) {
	st := order.Stats{TodayRevenue: decimal.Zero, WeekRevenue: decimal.Zero}
	week := order.WeekStart(asOf)
	for _, o := range s.orders {
		st.TotalOrders++
		switch o.Status {
		case order.StatusPreparing:
			st.PreparingOrders++
		case order.StatusReady:
			st.ReadyOrders++
		}
		if sameDay(o.CreatedAt, asOf) {
			st.TodayOrdersCount++
			st.TodayRevenue = st.TodayRevenue.Add(o.TotalPrice)
		}
		if !o.CreatedAt.Before(week) {
			st.WeekRevenue = st.WeekRevenue.Add(o.TotalPrice)
		}
	}
	return &st, nil
}

// recordingSink captures published events instead of delivering them.
type recordedEvent struct {
	audience notify.Audience
	event    string
	data     any
}

type recordingSink struct {
	events []recordedEvent
}

func (r *recordingSink) Publish(a notify.Audience, event string, data any) {
	r.events = append(r.events, recordedEvent{audience: a, event: event, data: data})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

//
// ---------- ORDER TESTS ----------
//

func TestCreateOrder_DefaultsAndNotify(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	sink := &recordingSink{}
	r := gin.New()
	r.POST("/orders", createOrderHandler(repo, sink))

	body := `{"customer_name":"Asha","customer_mobile":"9999999999",` +
		`"items":[{"menu_item_id":1,"name":"Special Thali","quantity":2,"price":150}],` +
		`"total_price":300}`
	w := doJSON(t, r, http.MethodPost, "/orders", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var o order.Order
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if o.Status != order.StatusPreparing {
		t.Fatalf("status=%q, want Preparing", o.Status)
	}
	if !o.Subtotal.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("subtotal=%s, want 300 (defaults to total_price)", o.Subtotal)
	}
	if !o.Discount.IsZero() {
		t.Fatalf("discount=%s, want 0", o.Discount)
	}
	if o.PaymentMethod != "Cash" {
		t.Fatalf("payment_method=%q, want Cash", o.PaymentMethod)
	}
	if len(sink.events) != 1 {
		t.Fatalf("events=%d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.event != notify.EventNewOrder || ev.audience != notify.AudienceAdmin {
		t.Fatalf("event=%q audience=%q, want new_order/admin", ev.event, ev.audience)
	}
}

func TestCreateOrder_WalkInDefault(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	r := gin.New()
	r.POST("/orders", createOrderHandler(repo, &recordingSink{}))

	body := `{"items":[{"menu_item_id":5,"name":"Tandoori Roti","quantity":1,"price":20}],"total_price":20}`
	w := doJSON(t, r, http.MethodPost, "/orders", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var o order.Order
	_ = json.Unmarshal(w.Body.Bytes(), &o)
	if o.CustomerName != "Walk-in" {
		t.Fatalf("customer_name=%q, want Walk-in", o.CustomerName)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, body string
	}{
		{"no items", `{"customer_name":"Asha","total_price":100}`},
		{"empty items", `{"customer_name":"Asha","items":[],"total_price":100}`},
		{"no total", `{"customer_name":"Asha","items":[{"menu_item_id":1,"quantity":1,"price":100}]}`},
		{"bad json", `{`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubOrderRepo()
			sink := &recordingSink{}
			r := gin.New()
			r.POST("/orders", createOrderHandler(repo, sink))

			w := doJSON(t, r, http.MethodPost, "/orders", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s, want 400", w.Code, w.Body.String())
			}
			if len(repo.orders) != 0 {
				t.Fatal("order persisted on validation failure")
			}
			if len(sink.events) != 0 {
				t.Fatal("event emitted on validation failure")
			}
		})
	}
}

func TestUpdateOrderStatus_Legal(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	repo.orders[1] = order.Order{ID: 1, Status: order.StatusPreparing, TotalPrice: decimal.NewFromInt(300)}
	repo.nextID = 1
	sink := &recordingSink{}
	r := gin.New()
	r.PUT("/orders/:id/status", updateOrderStatusHandler(repo, sink))

	w := doJSON(t, r, http.MethodPut, "/orders/1/status", `{"status":"Ready"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var o order.Order
	_ = json.Unmarshal(w.Body.Bytes(), &o)
	if o.Status != order.StatusReady {
		t.Fatalf("status=%q, want Ready", o.Status)
	}
	if len(sink.events) != 1 {
		t.Fatalf("events=%d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.event != notify.EventOrderStatusUpdate || ev.audience != notify.AudienceAll {
		t.Fatalf("event=%q audience=%q, want order_status_update/all", ev.event, ev.audience)
	}
}

func TestUpdateOrderStatus_Invalid(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	repo.orders[1] = order.Order{ID: 1, Status: order.StatusPreparing}
	sink := &recordingSink{}
	r := gin.New()
	r.PUT("/orders/:id/status", updateOrderStatusHandler(repo, sink))

	w := doJSON(t, r, http.MethodPut, "/orders/1/status", `{"status":"Bogus"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s, want 400", w.Code, w.Body.String())
	}
	if got := repo.orders[1].Status; got != order.StatusPreparing {
		t.Fatalf("record changed to %q on invalid status", got)
	}
	if len(sink.events) != 0 {
		t.Fatal("event emitted for invalid status")
	}
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.PUT("/orders/:id/status", updateOrderStatusHandler(newStubOrderRepo(), &recordingSink{}))

	w := doJSON(t, r, http.MethodPut, "/orders/42/status", `{"status":"Ready"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s, want 404", w.Code, w.Body.String())
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/orders/:id", getOrderHandler(newStubOrderRepo()))

	w := doJSON(t, r, http.MethodGet, "/orders/7", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestListOrders_StatusFilter(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	now := time.Now()
	repo.orders[1] = order.Order{ID: 1, Status: order.StatusPreparing, CreatedAt: now}
	repo.orders[2] = order.Order{ID: 2, Status: order.StatusReady, CreatedAt: now.Add(time.Minute)}
	repo.orders[3] = order.Order{ID: 3, Status: order.StatusReady, CreatedAt: now.Add(2 * time.Minute)}
	r := gin.New()
	r.GET("/orders", listOrdersHandler(repo))

	w := doJSON(t, r, http.MethodGet, "/orders?status=Ready", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []order.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	for _, o := range got {
		if o.Status != order.StatusReady {
			t.Fatalf("status=%q leaked through filter", o.Status)
		}
	}
	// newest first
	if got[0].ID != 3 || got[1].ID != 2 {
		t.Fatalf("order ids=%d,%d, want 3,2", got[0].ID, got[1].ID)
	}
}

func TestListOrders_BadDateIgnored(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	repo.orders[1] = order.Order{ID: 1, Status: order.StatusPreparing, CreatedAt: time.Now()}
	r := gin.New()
	r.GET("/orders", listOrdersHandler(repo))

	plain := doJSON(t, r, http.MethodGet, "/orders", "")
	bad := doJSON(t, r, http.MethodGet, "/orders?date=not-a-date", "")
	if plain.Code != http.StatusOK || bad.Code != http.StatusOK {
		t.Fatalf("status=%d/%d, want 200/200", plain.Code, bad.Code)
	}
	if plain.Body.String() != bad.Body.String() {
		t.Fatalf("unparsable date changed the result:\n%s\nvs\n%s", plain.Body.String(), bad.Body.String())
	}
}

func TestDeleteOrder(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	repo.orders[9] = order.Order{ID: 9, Status: order.StatusCompleted}
	sink := &recordingSink{}
	r := gin.New()
	r.DELETE("/orders/:id", deleteOrderHandler(repo, sink))

	w := doJSON(t, r, http.MethodDelete, "/orders/9", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if len(sink.events) != 1 || sink.events[0].event != notify.EventOrderDeleted {
		t.Fatalf("expected one order_deleted event, got %+v", sink.events)
	}
	if p, ok := sink.events[0].data.(notify.DeletedPayload); !ok || p.ID != 9 {
		t.Fatalf("payload=%+v, want {ID:9}", sink.events[0].data)
	}

	// deleting again: 404 and no further event
	w = doJSON(t, r, http.MethodDelete, "/orders/9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
	if len(sink.events) != 1 {
		t.Fatal("order_deleted emitted for missing order")
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	now := time.Now()
	repo.orders[1] = order.Order{ID: 1, Status: order.StatusPreparing, TotalPrice: decimal.NewFromInt(300), CreatedAt: now}
	repo.orders[2] = order.Order{ID: 2, Status: order.StatusReady, TotalPrice: decimal.NewFromInt(120), CreatedAt: now}
	r := gin.New()
	r.GET("/stats", statsHandler(repo))

	w := doJSON(t, r, http.MethodGet, "/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var s order.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if s.PreparingOrders != 1 || s.ReadyOrders != 1 || s.TotalOrders != 2 {
		t.Fatalf("counts=%d/%d/%d, want 1/1/2", s.PreparingOrders, s.ReadyOrders, s.TotalOrders)
	}
	if s.TodayOrdersCount != 2 {
		t.Fatalf("today_orders_count=%d, want 2", s.TodayOrdersCount)
	}
	if !s.TodayRevenue.Equal(decimal.NewFromInt(420)) {
		t.Fatalf("today_revenue=%s, want 420", s.TodayRevenue)
	}
	if s.WeekRevenue.LessThan(s.TodayRevenue) {
		t.Fatalf("week_revenue=%s below today_revenue=%s", s.WeekRevenue, s.TodayRevenue)
	}
}

//
// ---------- MENU TESTS ----------
//

func TestCreateMenuItem_Defaults(t *testing.T) {
	t.Parallel()

	repo := newStubMenuRepo()
	r := gin.New()
	r.POST("/menu/items", createMenuItemHandler(repo))

	w := doJSON(t, r, http.MethodPost, "/menu/items", `{"item_name":"Dal Tadka","price":120}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var m menu.MenuItem
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m.Category != menu.DefaultCategory {
		t.Fatalf("category=%q, want %q", m.Category, menu.DefaultCategory)
	}
	if m.VegNonveg != "Veg" || !m.IsAvailable {
		t.Fatalf("veg=%q available=%v, want Veg/true", m.VegNonveg, m.IsAvailable)
	}
	if m.ID == 0 {
		t.Fatal("id not assigned")
	}
}

func TestCreateMenuItem_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, body string
	}{
		{"missing name", `{"price":120}`},
		{"missing price", `{"item_name":"Dal Tadka"}`},
		{"negative price", `{"item_name":"Dal Tadka","price":-1}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubMenuRepo()
			r := gin.New()
			r.POST("/menu/items", createMenuItemHandler(repo))

			w := doJSON(t, r, http.MethodPost, "/menu/items", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s, want 400", w.Code, w.Body.String())
			}
			if len(repo.items) != 0 {
				t.Fatal("item persisted on validation failure")
			}
		})
	}
}

func TestUpdateMenuItem_PartialPatch(t *testing.T) {
	t.Parallel()

	repo := newStubMenuRepo()
	repo.nextID = 1
	repo.items[1] = menu.MenuItem{
		ID: 1, ItemName: "Jeera Rice", Price: decimal.NewFromInt(90),
		Category: "Rice & Biryani", VegNonveg: "Veg", IsAvailable: true,
	}
	r := gin.New()
	r.PUT("/menu/items/:id", updateMenuItemHandler(repo))

	w := doJSON(t, r, http.MethodPut, "/menu/items/1", `{"price":95}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := repo.items[1]
	if !got.Price.Equal(decimal.NewFromInt(95)) {
		t.Fatalf("price=%s, want 95", got.Price)
	}
	if got.ItemName != "Jeera Rice" || got.Category != "Rice & Biryani" {
		t.Fatal("untouched fields changed by partial patch")
	}
}

func TestGetMenu_OnlyAvailable(t *testing.T) {
	t.Parallel()

	repo := newStubMenuRepo()
	repo.items[1] = menu.MenuItem{ID: 1, ItemName: "Gulab Jamun", Category: "Desserts", IsAvailable: true}
	repo.items[2] = menu.MenuItem{ID: 2, ItemName: "Mango Lassi", Category: "Beverages", IsAvailable: false}
	r := gin.New()
	r.GET("/menu", getMenuHandler(repo))

	w := doJSON(t, r, http.MethodGet, "/menu", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []menu.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got=%+v, want only the available item", got)
	}
}

func TestDeleteMenuItem_NotFound(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.DELETE("/menu/items/:id", deleteMenuItemHandler(newStubMenuRepo()))

	w := doJSON(t, r, http.MethodDelete, "/menu/items/404", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}
