package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ankurdhir/laddu/internal/auth"
	"github.com/ankurdhir/laddu/internal/cart"
	"github.com/ankurdhir/laddu/internal/catalog"
	"github.com/ankurdhir/laddu/internal/configurator"
	"github.com/ankurdhir/laddu/internal/middleware"
	"github.com/ankurdhir/laddu/internal/notify"
	"github.com/ankurdhir/laddu/internal/order"
	"github.com/ankurdhir/laddu/internal/ordersvc"
	"github.com/ankurdhir/laddu/internal/storage"
)

// Deps holds everything the router wires together. Images may be nil when
// no object storage is configured.
type Deps struct {
	Catalog      *catalog.Handler
	Configurator *configurator.Handler
	Cart         *cart.Handler
	Order        *order.Handler
	OrderSvc     *ordersvc.Handler
	Auth         *auth.Handler
	Hub          *notify.Hub
	Images       *storage.ImageStore
	CatalogData  *catalog.Catalog
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── CATALOG ─────────────────────────
	cat := r.Group("/catalog")
	{
		cat.GET("/ingredients", d.Catalog.ListIngredients)
		cat.GET("/ingredients/search", d.Catalog.Search)
		cat.GET("/presets", d.Catalog.ListPresets)
		cat.GET("/presets/:id", d.Catalog.GetPreset)
		cat.GET("/goals", d.Catalog.ListGoals)
	}

	// ───────────────────────── CONFIGURATOR ─────────────────────────
	cfg := r.Group("/configurator")
	{
		cfg.GET("", d.Configurator.GetState)
		cfg.POST("/select", d.Configurator.Select)
		cfg.POST("/toggle", d.Configurator.Toggle)
		cfg.POST("/goal", d.Configurator.ApplyGoal)
		cfg.POST("/quantity", d.Configurator.AdjustQuantity)
		cfg.POST("/preset/:id", d.Configurator.LoadPreset)
	}

	// ───────────────────────── CART ─────────────────────────
	ct := r.Group("/cart")
	{
		ct.GET("", d.Cart.GetSnapshot)
		ct.POST("/preset", d.Cart.AddPreset)
		ct.POST("/custom", d.Cart.AddCustom)
		ct.PATCH("/items/:id", d.Cart.UpdateQty)
		ct.DELETE("/items/:id", d.Cart.RemoveItem)
		ct.DELETE("", d.Cart.Clear)
	}
	r.GET("/ws/cart", d.Hub.ServeWS)

	// ───────────────────────── ORDER SESSION ─────────────────────────
	ord := r.Group("/order")
	{
		ord.GET("/phase", d.Order.GetPhase)
		ord.POST("/context", d.Order.SetContext)
		ord.POST("/reset", d.Order.Reset)
		ord.POST("/otp/send", d.Order.SendOtp)
		ord.POST("/otp/verify", d.Order.VerifyOtp)
		ord.POST("/submit", d.Order.Submit)
		ord.GET("/history", d.Order.History)
	}

	// ───────────────────────── ORDER SERVICE (WEBHOOK) ─────────────────────────
	r.GET("/webhook", d.OrderSvc.HandleAction)
	r.POST("/webhook", d.OrderSvc.HandlePlaceOrder)

	// ───────────────────────── ADMIN ─────────────────────────
	r.POST("/admin/login", d.Auth.Login)

	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.GET("/orders", d.OrderSvc.HandleAllOrders)
		admin.POST("/presets/:id/image", func(c *gin.Context) {
			if d.Images == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
				return
			}
			if _, ok := d.CatalogData.FindPreset(c.Param("id")); !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
				return
			}
			file, err := c.FormFile("image")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
				return
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
			defer cancel()
			url, err := d.Images.UploadPresetImage(ctx, c.Param("id"), file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"url": url})
		})
	}

	return r
}
