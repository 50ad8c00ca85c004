package review

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/handler"
	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/service/review"
)

type Handler struct {
	svc *review.Service
}

func NewHandler(svc *review.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes exposes the unauthenticated review reads.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/get/nurse/reviews/:nurse_id", h.ListForNurse)
	r.GET("/get/review/:id", h.Get)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/create/review", h.Create)
	r.PUT("/update/review/:id", h.Update)
	r.DELETE("/delete/review/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("nurse_id and a rating between 1 and 5 are required"))
		return
	}

	rev, err := h.svc.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(rev))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid review ID"))
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(detail))
}

func (h *Handler) ListForNurse(c *gin.Context) {
	nurseID, err := uuid.Parse(c.Param("nurse_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid nurse ID"))
		return
	}

	reviews, err := h.svc.ListForNurse(c.Request.Context(), nurseID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(reviews))
}

func (h *Handler) Update(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid review ID"))
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("a rating between 1 and 5 is required"))
		return
	}

	if err := h.svc.Update(c.Request.Context(), callerID, id, &req); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("review updated successfully"))
}

func (h *Handler) Delete(c *gin.Context) {
	callerID, ok := handler.RequirePrincipal(c, model.PrincipalPatient)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid review ID"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), callerID, id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("review deleted successfully"))
}
