package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/handler"
	"github.com/nurselink/booking-api/internal/service/directory"
)

type Handler struct {
	svc *directory.Service
}

func NewHandler(svc *directory.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/get_nurses", h.ListNurses)
	r.GET("/get_nurse/:id", h.GetNurse)
}

func (h *Handler) ListNurses(c *gin.Context) {
	nurses, err := h.svc.ListNurses(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nurses))
}

func (h *Handler) GetNurse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid nurse ID"))
		return
	}

	username, err := h.svc.GetNurse(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(username))
}
