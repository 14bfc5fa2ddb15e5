package routes

import (
	"net/http"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Address *controllers.AddressController
	Order   *controllers.OrderController
	Payment *controllers.PaymentController
	Email   *controllers.EmailController
}

// Register mounts every route. Protected routes share the one bearer
// middleware; the credential routes sit behind the rate limiter.
func Register(r *gin.Engine, ctrl Controllers, tokens *services.TokenService) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	public := r.Group("/")
	public.Use(middleware.RateLimit())
	{
		public.POST("/login", ctrl.Auth.Login)
		public.POST("/register", ctrl.Auth.Register)
	}

	r.GET("/product/:id", ctrl.Product.GetProduct)
	r.GET("/search", ctrl.Product.Search)

	r.POST("/create-payment", ctrl.Payment.CreatePayment)
	r.GET("/execute-payment", ctrl.Payment.ExecutePayment)
	r.GET("/cancel-payment", ctrl.Payment.CancelPayment)

	r.POST("/send-email", ctrl.Email.SendEmail)

	authed := r.Group("/")
	authed.Use(middleware.Authenticate(tokens))
	{
		authed.POST("/add-to-cart", ctrl.Cart.AddToCart)
		authed.GET("/get-cart", ctrl.Cart.GetCart)
		authed.GET("/get-cart-html", ctrl.Cart.GetCartDetails)
		authed.PUT("/updateQuantity/:productId", ctrl.Cart.UpdateQuantity)
		authed.DELETE("/deleteProduct/:productId", ctrl.Cart.DeleteProduct)
		authed.PUT("/clear-cart", ctrl.Cart.ClearCart)

		authed.POST("/add-address", ctrl.Address.AddAddress)
		authed.GET("/get-user-address", ctrl.Address.GetUserAddress)

		authed.GET("/get-orders", ctrl.Order.GetOrders)
	}
}
