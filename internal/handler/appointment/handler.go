package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/handler"
	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/service/appointment"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes exposes the unauthenticated appointment listing.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/get/appointments", h.ListAll)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/create/appointment", h.Create)
	r.GET("/get/patient/appointments", h.ListForPatient)
	r.GET("/get/nurse/appointments", h.ListForNurse)
	r.PUT("/update/appointment/:id", h.Update)
	r.DELETE("/delete/appointment/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("nurse_id and a valid ISO-8601 appointment_datetime are required"))
		return
	}

	appt, err := h.svc.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appt))
}

func (h *Handler) ListAll(c *gin.Context) {
	appointments, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) ListForPatient(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	appointments, err := h.svc.ListForPatient(c.Request.Context(), callerID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) ListForNurse(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalNurse)
	if !ok {
		return
	}

	appointments, err := h.svc.ListForNurse(c.Request.Context(), callerID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) Update(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("a valid ISO-8601 appointment_datetime is required"))
		return
	}

	if err := h.svc.Update(c.Request.Context(), callerID, id, &req); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("appointment updated successfully"))
}

func (h *Handler) Delete(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), callerID, id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("appointment deleted successfully"))
}
