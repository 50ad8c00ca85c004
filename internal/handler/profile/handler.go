package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurselink/booking-api/internal/handler"
	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/service/profile"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/create/nurse/profile", h.CreateNurseProfile)
	r.GET("/get/nurse/profile", h.GetNurseProfile)
	r.PUT("/update/nurse/profile", h.UpdateNurseProfile)

	r.POST("/create/patient/profile", h.CreatePatientProfile)
	r.GET("/get/patient/profile", h.GetPatientProfile)
	r.PUT("/update/patient/profile", h.UpdatePatientProfile)
}

func (h *Handler) CreateNurseProfile(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalNurse)
	if !ok {
		return
	}

	var req model.CreateNurseProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	prof, err := h.svc.CreateNurseProfile(c.Request.Context(), callerID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(prof))
}

func (h *Handler) GetNurseProfile(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalNurse)
	if !ok {
		return
	}

	prof, err := h.svc.GetNurseProfile(c.Request.Context(), callerID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(prof))
}

func (h *Handler) UpdateNurseProfile(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalNurse)
	if !ok {
		return
	}

	var req model.UpdateNurseProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	prof, err := h.svc.UpdateNurseProfile(c.Request.Context(), callerID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(prof))
}

func (h *Handler) CreatePatientProfile(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	var req model.CreatePatientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	prof, err := h.svc.CreatePatientProfile(c.Request.Context(), callerID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(prof))
}

func (h *Handler) GetPatientProfile(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	prof, err := h.svc.GetPatientProfile(c.Request.Context(), callerID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(prof))
}

func (h *Handler) UpdatePatientProfile(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	var req model.UpdatePatientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	prof, err := h.svc.UpdatePatientProfile(c.Request.Context(), callerID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(prof))
}
