package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurselink/booking-api/internal/handler"
	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/service/auth"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/auth")
	{
		grp.POST("/register-nurse", h.RegisterNurse)
		grp.POST("/login-nurse", h.LoginNurse)
		grp.POST("/register-patient", h.RegisterPatient)
		grp.POST("/login-patient", h.LoginPatient)
		grp.POST("/logout", h.Logout)
	}
}

func (h *Handler) RegisterNurse(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("username and password are required"))
		return
	}

	if _, err := h.svc.RegisterNurse(c.Request.Context(), req.Username, req.Password); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewMessageResponse("nurse registered successfully"))
}

func (h *Handler) LoginNurse(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("username and password are required"))
		return
	}

	tokens, err := h.svc.LoginNurse(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tokens))
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("username and password are required"))
		return
	}

	if _, err := h.svc.RegisterPatient(c.Request.Context(), req.Username, req.Password); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewMessageResponse("patient registered successfully"))
}

func (h *Handler) LoginPatient(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("username and password are required"))
		return
	}

	tokens, err := h.svc.LoginPatient(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tokens))
}

func (h *Handler) Logout(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
		return
	}

	if err := h.svc.Logout(c.Request.Context(), raw); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("logged out successfully"))
}
