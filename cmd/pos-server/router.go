package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vanitalunch/pos-backend/internal/httpx"
	"github.com/vanitalunch/pos-backend/internal/menu"
	"github.com/vanitalunch/pos-backend/internal/notify"
	"github.com/vanitalunch/pos-backend/internal/order"
)

func newRouter(menuRepo menu.Repository, orderRepo order.Repository, hub *notify.Hub, sink notify.Sink, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS(corsOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		api.GET("/menu", getMenuHandler(menuRepo))
		api.GET("/menu/items", listMenuItemsHandler(menuRepo))
		api.POST("/menu/items", createMenuItemHandler(menuRepo))
		api.GET("/menu/items/:id", getMenuItemHandler(menuRepo))
		api.PUT("/menu/items/:id", updateMenuItemHandler(menuRepo))
		api.DELETE("/menu/items/:id", deleteMenuItemHandler(menuRepo))
		api.GET("/categories", getCategoriesHandler(menuRepo))

		api.GET("/orders", listOrdersHandler(orderRepo))
		api.POST("/orders", createOrderHandler(orderRepo, sink))
		api.GET("/orders/:id", getOrderHandler(orderRepo))
		api.PUT("/orders/:id/status", updateOrderStatusHandler(orderRepo, sink))
		api.DELETE("/orders/:id", deleteOrderHandler(orderRepo, sink))

		api.GET("/stats", statsHandler(orderRepo))
	}

	r.GET("/ws", hub.HandleWS)
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
