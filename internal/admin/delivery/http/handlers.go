package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eva-assistant/internal/admin"
	"eva-assistant/pkg/response"
)

// Login godoc
// @Summary     Dashboard login
// @Description Verifies credentials and returns a bearer token.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       body body admin.LoginInput true "Credentials"
// @Success     200 {object} admin.LoginOutput
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /admin/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var input admin.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, input)
	if errors.Is(err, admin.ErrInvalidCredentials) {
		response.Unauthorized(c)
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, output)
}

// ListContacts godoc
// @Summary     List WhatsApp contacts
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Router      /admin/contacts [GET]
func (h *handler) ListContacts(c *gin.Context) {
	ctx := c.Request.Context()

	contacts, err := h.uc.ListContacts(ctx, getScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListContacts: %v", err)
		response.InternalError(c, err)
		return
	}

	if contacts == nil {
		contacts = []string{}
	}
	response.OK(c, gin.H{"contacts": contacts, "count": len(contacts)})
}

// SessionHistory godoc
// @Summary     Read one conversation transcript
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Param       session path string true "WhatsApp number"
// @Success     200 {object} response.Resp
// @Router      /admin/chats/{session} [GET]
func (h *handler) SessionHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	history, err := h.uc.SessionHistory(ctx, getScope(c), sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.SessionHistory: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"session": sessionID, "messages": history, "count": len(history)})
}

// ListUsers godoc
// @Summary     List dashboard accounts
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Router      /admin/users [GET]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.uc.ListUsers(ctx, getScope(c))
	if errors.Is(err, admin.ErrForbidden) {
		response.Forbidden(c)
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUsers: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"users": users, "count": len(users)})
}

// CreateUser godoc
// @Summary     Create a dashboard account
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body admin.CreateUserInput true "Account data"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Not a super admin"
// @Failure     409 {object} response.Resp "Username taken"
// @Router      /admin/users [POST]
func (h *handler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var input admin.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err, nil)
		return
	}

	user, err := h.uc.CreateUser(ctx, getScope(c), input)
	switch {
	case errors.Is(err, admin.ErrForbidden):
		response.Forbidden(c)
		return
	case errors.Is(err, admin.ErrUserExists):
		response.Conflict(c, err)
		return
	case errors.Is(err, admin.ErrInvalidRole):
		response.Error(c, err, nil)
		return
	case err != nil:
		h.l.Errorf(ctx, "uc.CreateUser: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, user)
}

// DeleteUser godoc
// @Summary     Delete a dashboard account
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Param       username path string true "Username"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Not a super admin or self-delete"
// @Failure     404 {object} response.Resp "No such account"
// @Router      /admin/users/{username} [DELETE]
func (h *handler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	err := h.uc.DeleteUser(ctx, getScope(c), username)
	switch {
	case errors.Is(err, admin.ErrForbidden), errors.Is(err, admin.ErrSelfDelete):
		response.ErrorStatus(c, http.StatusForbidden, err)
		return
	case errors.Is(err, admin.ErrUserNotFound):
		response.NotFound(c, err)
		return
	case err != nil:
		h.l.Errorf(ctx, "uc.DeleteUser: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": username})
}
