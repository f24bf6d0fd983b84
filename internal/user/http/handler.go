package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/meeting-booking-backend/internal/auth"
	"github.com/nekogravitycat/meeting-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/meeting-booking-backend/internal/user"
)

type UserHandler struct {
	userService user.Service
}

func NewHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Email returns the authenticated account's email address.
func (h *UserHandler) Email(c *gin.Context) {
	token := auth.GetToken(c)

	email, err := h.userService.Email(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, EmailResponse{Email: email})
}
