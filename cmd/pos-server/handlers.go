package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vanitalunch/pos-backend/internal/menu"
	"github.com/vanitalunch/pos-backend/internal/notify"
	"github.com/vanitalunch/pos-backend/internal/order"
)

func errJSON(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errJSON(c, http.StatusNotFound, "resource not found")
		return 0, false
	}
	return id, true
}

//
// ---------- MENU ----------
//

// getMenuHandler returns the public catalog: available dishes only,
// ordered by category then name.
//
// @Summary  List available menu items
// @Produce  json
// @Success  200 {array} menu.MenuItem
// @Router   /menu [get]
func getMenuHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), true)
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		if items == nil {
			items = []menu.MenuItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// listMenuItemsHandler returns every dish, hidden ones included (admin list).
func listMenuItemsHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), false)
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		if items == nil {
			items = []menu.MenuItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func getMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		item, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, menu.ErrNotFound) {
			errJSON(c, http.StatusNotFound, "menu item not found")
			return
		}
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// @Summary  Add a menu item
// @Accept   json
// @Produce  json
// @Param    item body menu.CreateItemRequest true "dish"
// @Success  201 {object} menu.MenuItem
// @Failure  400 {object} map[string]string
// @Router   /menu/items [post]
func createMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json")
			return
		}
		if req.ItemName == "" {
			errJSON(c, http.StatusBadRequest, "item_name is required")
			return
		}
		if req.Price == nil {
			errJSON(c, http.StatusBadRequest, "price is required")
			return
		}
		if req.Price.IsNegative() {
			errJSON(c, http.StatusBadRequest, "price must be non-negative")
			return
		}
		item := menu.MenuItem{
			ItemName:    req.ItemName,
			Description: req.Description,
			Price:       *req.Price,
			Category:    req.Category,
			VegNonveg:   req.VegNonveg,
			IsAvailable: true,
		}
		if item.Category == "" {
			item.Category = menu.DefaultCategory
		}
		if item.VegNonveg == "" {
			item.VegNonveg = "Veg"
		}
		if req.IsAvailable != nil {
			item.IsAvailable = *req.IsAvailable
		}
		if err := repo.Create(c.Request.Context(), &item); err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// updateMenuItemHandler applies a partial patch; absent fields stay as they are.
func updateMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var req menu.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Price != nil && req.Price.IsNegative() {
			errJSON(c, http.StatusBadRequest, "price must be non-negative")
			return
		}
		item, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, menu.ErrNotFound) {
			errJSON(c, http.StatusNotFound, "menu item not found")
			return
		}
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		req.Apply(item)
		if err := repo.Update(c.Request.Context(), item); err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				errJSON(c, http.StatusNotFound, "menu item not found")
				return
			}
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func deleteMenuItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		if !deleted {
			errJSON(c, http.StatusNotFound, "menu item not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}

func getCategoriesHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := repo.Categories(c.Request.Context())
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		if cats == nil {
			cats = []string{}
		}
		c.JSON(http.StatusOK, cats)
	}
}

//
// ---------- ORDERS ----------
//

// @Summary  Place an order
// @Accept   json
// @Produce  json
// @Param    order body order.CreateOrderRequest true "checkout payload"
// @Success  201 {object} order.Order
// @Failure  400 {object} map[string]string
// @Router   /orders [post]
func createOrderHandler(repo order.Repository, sink notify.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json")
			return
		}
		if len(req.Items) == 0 {
			errJSON(c, http.StatusBadRequest, "items are required")
			return
		}
		if req.TotalPrice == nil {
			errJSON(c, http.StatusBadRequest, "total_price is required")
			return
		}
		o := order.Order{
			CustomerName:   req.CustomerName,
			CustomerMobile: req.CustomerMobile,
			Items:          req.Items,
			TotalPrice:     *req.TotalPrice,
			Status:         order.StatusPreparing,
			PaymentMethod:  req.PaymentMethod,
			PaymentID:      req.PaymentID,
		}
		if o.CustomerName == "" {
			o.CustomerName = "Walk-in"
		}
		if o.PaymentMethod == "" {
			o.PaymentMethod = "Cash"
		}
		// subtotal falls back to the total, discount to zero
		if req.Subtotal != nil {
			o.Subtotal = *req.Subtotal
		} else {
			o.Subtotal = *req.TotalPrice
		}
		if req.Discount != nil {
			o.Discount = *req.Discount
		}
		if err := repo.Create(c.Request.Context(), &o); err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		sink.Publish(notify.AudienceAdmin, notify.EventNewOrder, o)
		c.JSON(http.StatusCreated, o)
	}
}

// listOrdersHandler filters by status and/or calendar day. An unparsable
// date is ignored rather than rejected.
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := order.Filter{Status: c.Query("status")}
		if d := c.Query("date"); d != "" {
			if day, err := time.Parse("2006-01-02", d); err == nil {
				f.Date = day
			}
		}
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.Atoi(l); err == nil {
				f.Limit = n
			}
		}
		orders, err := repo.List(c.Request.Context(), f)
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		if orders == nil {
			orders = []order.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, order.ErrNotFound) {
			errJSON(c, http.StatusNotFound, "order not found")
			return
		}
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// @Summary  Update order status
// @Accept   json
// @Produce  json
// @Param    id     path int                       true "order id"
// @Param    status body order.UpdateStatusRequest true "new status"
// @Success  200 {object} order.Order
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /orders/{id}/status [put]
func updateOrderStatusHandler(repo order.Repository, sink notify.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errJSON(c, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Status == "" {
			errJSON(c, http.StatusBadRequest, "status is required")
			return
		}
		if !order.ValidStatus(req.Status) {
			errJSON(c, http.StatusBadRequest, "invalid status")
			return
		}
		o, err := repo.UpdateStatus(c.Request.Context(), id, req.Status)
		if errors.Is(err, order.ErrNotFound) {
			errJSON(c, http.StatusNotFound, "order not found")
			return
		}
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		sink.Publish(notify.AudienceAll, notify.EventOrderStatusUpdate, o)
		c.JSON(http.StatusOK, o)
	}
}

func deleteOrderHandler(repo order.Repository, sink notify.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		if !deleted {
			// no event for an id that never existed
			errJSON(c, http.StatusNotFound, "order not found")
			return
		}
		sink.Publish(notify.AudienceAll, notify.EventOrderDeleted, notify.DeletedPayload{ID: id})
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// @Summary  Dashboard statistics
// @Produce  json
// @Success  200 {object} order.Stats
// @Router   /stats [get]
func statsHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := repo.Stats(c.Request.Context(), time.Now())
		if err != nil {
			errJSON(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
