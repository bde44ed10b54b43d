package router

import (
	"net/http"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListCart(c *ginext.Context)
	AddToCart(c *ginext.Context)
	RemoveFromCart(c *ginext.Context)

	Checkout(c *ginext.Context)
	PayOrder(c *ginext.Context)
	StreamQR(c *ginext.Context)
	ProviderReturn(c *ginext.Context)
	CapturePayPal(c *ginext.Context)
	FinalizeAirwallex(c *ginext.Context)

	ListOrders(c *ginext.Context)
	GetOrder(c *ginext.Context)
	CancelOrder(c *ginext.Context)
	CompleteOrder(c *ginext.Context)
	AcceptOrder(c *ginext.Context)
	ListSellerOrders(c *ginext.Context)

	GetAvailability(c *ginext.Context)
	SetAvailability(c *ginext.Context)

	GetCooldown(c *ginext.Context)
	ListFraudAlerts(c *ginext.Context)
	ReviewFraudAlert(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	sellerOnly := middleware.RequireRole(domain.RoleSeller, domain.RoleAdmin)

	api := router.Group("/api", auth)
	{
		// Cart
		api.GET("/cart", h.ListCart)
		api.POST("/cart", h.AddToCart)
		api.DELETE("/cart/:id", h.RemoveFromCart)

		// Payments
		api.POST("/checkout", h.Checkout)
		api.POST("/orders/:id/pay", h.PayOrder)
		api.GET("/payments/"+domain.ProviderNetsQR+"/:ref/stream", h.StreamQR)
		api.GET("/payments/:provider/return", h.ProviderReturn)
		api.POST("/payments/"+domain.ProviderPayPal+"/capture", h.CapturePayPal)
		api.POST("/payments/"+domain.ProviderAirwallex+"/finalize", h.FinalizeAirwallex)

		// Orders
		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/cancel", h.CancelOrder)
		api.POST("/orders/:id/complete", h.CompleteOrder)
		api.POST("/orders/:id/accept", sellerOnly, h.AcceptOrder)

		api.GET("/me/cooldown", h.GetCooldown)
	}

	seller := api.Group("/seller", sellerOnly)
	{
		seller.GET("/orders", h.ListSellerOrders)
		seller.GET("/availability", h.GetAvailability)
		seller.PUT("/availability", h.SetAvailability)
	}

	admin := api.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/fraud-alerts", h.ListFraudAlerts)
		admin.PATCH("/fraud-alerts/:id", h.ReviewFraudAlert)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
