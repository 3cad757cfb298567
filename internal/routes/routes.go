package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/scenic-area/scenic-commerce-golang/internal/handlers"
)

// CORSMiddleware allows the kiosk and mini-program frontends, which are
// served from arbitrary origins, to call this API.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware tags every request with an X-Request-ID, honoring
// one supplied by the caller, so log lines can be tied to a request.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Set("requestID", rid)

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())

	api := router.Group("/api")
	{
		// --- Auth Routes ---
		api.POST("/login", h.Login)
		api.POST("/register", h.Register)

		// --- Tourist Routes ---
		api.GET("/products", h.GetProducts)
		api.POST("/order", h.PlaceOrder)
		api.GET("/orders/:touristId", h.GetOrders)
		api.GET("/user/profile/:touristId", h.GetProfile)

		// --- Merchant Routes ---
		api.GET("/merchant/revenue/:shopId", h.GetShopRevenue)
		api.POST("/merchant/revenue/add", h.AddShopRevenue)
	}

	return router
}
