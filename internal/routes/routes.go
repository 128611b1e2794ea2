package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nithin-dev/bizmate-golang/internal/handlers"
	"github.com/nithin-dev/bizmate-golang/internal/middleware"
)

// CORSMiddleware lets the mobile client talk to us from any origin. The
// app is not browser-hosted, so there is no cookie surface to protect.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	// Uploaded product images are served straight off disk.
	router.Static("/uploads", h.Cfg.UploadDir)

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/signup", h.Signup)
		v1.POST("/login", h.Login)
		v1.POST("/user-login", h.UserLogin)

		// --- Customer Master ---
		v1.POST("/customers", h.CreateCustomer)
		v1.GET("/customers", h.GetCustomers)
		v1.GET("/customers/search", h.SearchCustomers)
		v1.PUT("/customers/:customerId", h.UpdateCustomer)
		v1.DELETE("/customers/:customerId", h.DeleteCustomer)

		// --- Product Master ---
		v1.POST("/products", h.CreateProduct)
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/search", h.SearchProducts)
		v1.PUT("/products/:productId", h.UpdateProduct)
		v1.DELETE("/products/:productId", h.DeleteProduct)

		// --- Purchase Orders ---
		v1.POST("/purchase-orders", h.CreateOrder)
		v1.GET("/purchase-orders", h.GetOrders)
		v1.PUT("/purchase-orders/:id", h.UpdateOrder)
		v1.DELETE("/purchase-orders/:id", h.DeleteOrder)

		// --- User Maintenance (Login Required) ---
		users := v1.Group("/users")
		users.Use(middleware.AuthMiddleware())
		{
			users.POST("", h.AddUser)
			users.GET("", h.GetUsers)
			users.GET("/search", h.SearchUsers)
			users.PUT("/:user_id", h.UpdateUser)
			users.DELETE("/:user_id", h.DeleteUser)
		}
	}

	return router
}
