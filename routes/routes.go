package routes

import (
	"github.com/gin-gonic/gin"

	"vinca/controllers"
	"vinca/middleware"
)

func RegisterRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
		api.POST("/logout", controllers.Logout)

		// public catalog surface
		api.GET("/products", controllers.GetProducts)
		api.GET("/products/:id", controllers.GetProduct)
		api.GET("/categories", controllers.GetCategories)
		api.GET("/categories/:slug", controllers.GetCategoryBySlug)
		api.GET("/reviews/product/:productId", controllers.GetProductReviews)

		// provider-initiated, authenticated by signature instead of JWT
		api.POST("/payments/webhook", controllers.StripeWebhook)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/cart", controllers.GetCart)
			protected.POST("/cart", controllers.AddToCart)
			protected.PUT("/cart/:productId", controllers.UpdateCartItem)
			protected.DELETE("/cart/:productId", controllers.RemoveFromCart)
			protected.DELETE("/cart", controllers.ClearCart)

			protected.POST("/orders", controllers.CreateOrder)
			protected.GET("/orders", controllers.GetOrders)
			protected.GET("/orders/:id", controllers.GetOrder)
			protected.PUT("/orders/:id/cancel", controllers.CancelOrder)

			protected.POST("/payments/create-intent", controllers.CreatePaymentIntent)

			protected.POST("/reviews", controllers.CreateReview)
			protected.PUT("/reviews/:id", controllers.UpdateReview)
			protected.DELETE("/reviews/:id", controllers.DeleteReview)
			protected.PUT("/reviews/:id/helpful", controllers.MarkReviewHelpful)

			protected.GET("/prescriptions", controllers.GetPrescriptions)
			protected.GET("/prescriptions/:id", controllers.GetPrescription)
			protected.POST("/prescriptions", controllers.CreatePrescription)
			protected.DELETE("/prescriptions/:id", controllers.DeletePrescription)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.POST("/products", controllers.CreateProduct)
				admin.PUT("/products/:id", controllers.UpdateProduct)
				admin.DELETE("/products/:id", controllers.DeleteProduct)

				admin.POST("/categories", controllers.CreateCategory)

				admin.GET("/orders", controllers.GetOrdersAdmin)
				admin.GET("/orders/:id", controllers.GetOrderByIDAdmin)
				admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
				admin.PUT("/orders/:id/cancel", controllers.CancelOrder)
			}
		}
	}
}
