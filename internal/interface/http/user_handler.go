package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/shopcore/user-orders-api/internal/application"
	"github.com/shopcore/user-orders-api/internal/domain/entity"
	"github.com/shopcore/user-orders-api/pkg/response"
	"github.com/shopcore/user-orders-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type fullNameRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type addressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type orderRequest struct {
	ProductName string   `json:"productName" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Quantity    *float64 `json:"quantity" binding:"required"`
}

// createUserRequest is the full user schema. Zero-valued but present
// fields must pass (age 0, isActive false, hobbies []), so scalars that
// have a meaningful zero are pointers with a plain required tag.
type createUserRequest struct {
	UserID   *int64          `json:"userId" binding:"required"`
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required"`
	FullName fullNameRequest `json:"fullName"`
	Age      *int            `json:"age" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	IsActive *bool           `json:"isActive" binding:"required"`
	Hobbies  *[]string       `json:"hobbies" binding:"required"`
	Address  addressRequest  `json:"address"`
	Orders   []orderRequest  `json:"orders" binding:"omitempty,dive"`
}

// updateUserRequest is the partial schema: every field optional, and
// userId/username/password have no slot at all, so attempts to set them
// are silently dropped during binding.
type updateUserRequest struct {
	FullName *fullNameRequest `json:"fullName" binding:"omitempty"`
	Age      *int             `json:"age"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	IsActive *bool            `json:"isActive"`
	Hobbies  *[]string        `json:"hobbies"`
	Address  *addressRequest  `json:"address" binding:"omitempty"`
	Orders   []orderRequest   `json:"orders" binding:"omitempty,dive"`
}

func (r *createUserRequest) toEntity() *entity.User {
	u := &entity.User{
		UserID:   *r.UserID,
		Username: r.Username,
		Password: r.Password,
		FullName: entity.FullName{FirstName: r.FullName.FirstName, LastName: r.FullName.LastName},
		Age:      *r.Age,
		Email:    r.Email,
		IsActive: *r.IsActive,
		Hobbies:  *r.Hobbies,
		Address:  entity.Address{Street: r.Address.Street, City: r.Address.City, Country: r.Address.Country},
	}
	if len(r.Orders) > 0 {
		u.Orders = toOrders(r.Orders)
	}
	return u
}

func (r *updateUserRequest) toUpdate() entity.UserUpdate {
	upd := entity.UserUpdate{
		Age:      r.Age,
		Email:    r.Email,
		IsActive: r.IsActive,
		Hobbies:  r.Hobbies,
	}
	if r.FullName != nil {
		upd.FullName = &entity.FullName{FirstName: r.FullName.FirstName, LastName: r.FullName.LastName}
	}
	if r.Address != nil {
		upd.Address = &entity.Address{Street: r.Address.Street, City: r.Address.City, Country: r.Address.Country}
	}
	if r.Orders != nil {
		orders := toOrders(r.Orders)
		upd.Orders = &orders
	}
	return upd
}

func toOrders(in []orderRequest) []entity.Order {
	out := make([]entity.Order, 0, len(in))
	for _, o := range in {
		out = append(out, entity.Order{ProductName: o.ProductName, Price: *o.Price, Quantity: *o.Quantity})
	}
	return out
}

// userIDParam parses the :userId path segment. A non-numeric value can
// never match a stored user, so it reads as the same not-found the lookup
// would produce.
func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	response.Fail(c, http.StatusNotFound, "User not found", response.Detail{
		Code:        http.StatusNotFound,
		Description: "User not found!",
	})
}

func invalidBody(c *gin.Context, err error) {
	response.Fail(c, http.StatusUnprocessableEntity, "Request body is invalid", response.Detail{
		Code:   http.StatusUnprocessableEntity,
		Issues: validation.ToIssues(err),
	})
}

func internalError(c *gin.Context) {
	response.Fail(c, http.StatusInternalServerError, "Internal server error", response.Detail{
		Code:        http.StatusInternalServerError,
		Description: "Internal server error",
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), req.toEntity())
	switch {
	case err == nil:
		response.OK(c, http.StatusOK, u, "User created successfully!")
	case errors.Is(err, userapp.ErrUserExists):
		response.Fail(c, http.StatusConflict, "User already exists", response.Detail{
			Code:        http.StatusConflict,
			Description: "A user with this userId or username already exists",
		})
	default:
		internalError(c)
	}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Svc.Retrieve(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("fetch users failed")
		}
		internalError(c)
		return
	}
	if len(users) == 0 {
		response.Fail(c, http.StatusNotFound, "No users found!", nil)
		return
	}
	response.OK(c, http.StatusOK, users, "Users fetched successfully!")
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	u, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		notFound(c)
		return
	}
	response.OK(c, http.StatusOK, u, "User fetched successfully!")
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a missing body is the same empty-update condition as {}
		if errors.Is(err, io.EOF) {
			response.Fail(c, http.StatusBadRequest, "Request body is not valid", nil)
			return
		}
		invalidBody(c, err)
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), id, req.toUpdate())
	switch {
	case err == nil:
		response.OK(c, http.StatusOK, u, "User updated successfully")
	case errors.Is(err, userapp.ErrEmptyUpdate):
		response.Fail(c, http.StatusBadRequest, "Request body is not valid", nil)
	case errors.Is(err, userapp.ErrUserNotFound):
		notFound(c)
	default:
		internalError(c)
	}
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	err := h.Svc.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		response.OK[any](c, http.StatusOK, nil, "User deleted successfully!")
	case errors.Is(err, userapp.ErrUserNotFound):
		notFound(c)
	default:
		internalError(c)
	}
}

func (h *UserHandler) GetUserOrders(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	orders, err := h.Svc.GetOrders(c.Request.Context(), id)
	switch {
	case err == nil:
		response.OK(c, http.StatusOK, gin.H{"orders": orders}, "Order fetched successfully!")
	case errors.Is(err, userapp.ErrUserNotFound):
		notFound(c)
	default:
		internalError(c)
	}
}

func (h *UserHandler) AddUserOrder(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	order := entity.Order{ProductName: req.ProductName, Price: *req.Price, Quantity: *req.Quantity}
	err := h.Svc.AppendOrder(c.Request.Context(), id, order)
	switch {
	case err == nil:
		response.OK[any](c, http.StatusOK, nil, "Order created successfully!")
	case errors.Is(err, userapp.ErrUserNotFound):
		notFound(c)
	default:
		internalError(c)
	}
}

func (h *UserHandler) GetOrdersTotalPrice(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	total, err := h.Svc.TotalOrderValue(c.Request.Context(), id)
	switch {
	case err == nil:
		response.OK(c, http.StatusOK, gin.H{"totalPrice": total}, "Total price calculated successfully!")
	case errors.Is(err, userapp.ErrUserNotFound):
		notFound(c)
	default:
		internalError(c)
	}
}
