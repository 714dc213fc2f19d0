package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

type CreateUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

const sessionCookieMaxAge = 60 * 60 * 24 * 7 // 7 days

// CreateUser signs a user up and hands back the sessionId cookie. If the
// client already carries one it is reused, so signup stays idempotent with
// respect to the credential.
func (h *UserController) CreateUser(c *gin.Context) {
	var body CreateUserInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := c.Cookie("sessionId")
	if err != nil || sessionID == "" {
		sessionID = utils.NewSessionToken()
		c.SetCookie("sessionId", sessionID, sessionCookieMaxAge, "/", "", false, false)
	}

	if _, err := h.Svc.Create(c.Request.Context(), body.Name, body.Email, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}
