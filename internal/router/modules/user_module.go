package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/user-orders-api/internal/container"
	handlers "github.com/shopcore/user-orders-api/internal/interface/http"
	"github.com/shopcore/user-orders-api/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes under /api/users:
// POST   /users                           create
// GET    /users                           list all
// GET    /users/:userId                   fetch one
// PUT    /users/:userId                   partial update
// DELETE /users/:userId                   delete
// GET    /users/:userId/orders            fetch orders
// PUT    /users/:userId/orders            append order
// GET    /users/:userId/orders/total-price  total order value

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Per-IP limiter on write endpoints; private addresses bypass it.
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	users := rg.Group("/users")
	{
		users.POST("", writeLimiter, m.Handler.CreateUser)
		users.GET("", m.Handler.GetAllUsers)
		users.GET("/:userId", m.Handler.GetUserByID)
		users.PUT("/:userId", writeLimiter, m.Handler.UpdateUser)
		users.DELETE("/:userId", writeLimiter, m.Handler.DeleteUser)
		users.GET("/:userId/orders", m.Handler.GetUserOrders)
		users.PUT("/:userId/orders", writeLimiter, m.Handler.AddUserOrder)
		users.GET("/:userId/orders/total-price", m.Handler.GetOrdersTotalPrice)
	}
}
