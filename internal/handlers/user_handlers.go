package handlers

import (
	"errors"
	"net/http"

	"client_intake_backend/internal/locales"
	"client_intake_backend/internal/middleware"
	"client_intake_backend/internal/models"
	"client_intake_backend/internal/services"
	"client_intake_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const formTemplate = "form.html"

// UserHandler serves the intake form and the stored-record listing.
type UserHandler struct {
	userService services.UserService
	csrf        *middleware.CSRF
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us services.UserService, csrf *middleware.CSRF) *UserHandler {
	return &UserHandler{userService: us, csrf: csrf}
}

// formView bundles everything the form template renders. fieldErrors
// maps field name to a localized message; banner is a form-level
// message shown when no single field is at fault.
type formView struct {
	status      int
	locale      locales.Locale
	fields      services.SubmitUserRequest
	fieldErrors map[string]string
	banner      string
	success     bool
}

func (h *UserHandler) render(c *gin.Context, v formView) {
	token, err := h.csrf.Mint()
	if err != nil {
		utils.LogError(err, "render: failed to mint CSRF token")
		// Without a token the form cannot be submitted; fail the render.
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(v.status, formTemplate, gin.H{
		"locale":      v.locale.Code,
		"labels":      v.locale.Labels,
		"csrf_token":  token,
		"fields":      v.fields,
		"fieldErrors": v.fieldErrors,
		"banner":      v.banner,
		"success":     v.success,
		"successMsg":  v.locale.Messages[locales.MsgSuccess],
	})
}

// ShowForm renders the empty form with a fresh CSRF token.
func (h *UserHandler) ShowForm(c *gin.Context) {
	h.render(c, formView{status: http.StatusOK, locale: locales.FromRequest(c)})
}

// SubmitForm handles a form POST: CSRF check first, then the
// submission pipeline, re-rendering the form with either a success
// confirmation or field-level errors.
func (h *UserHandler) SubmitForm(c *gin.Context) {
	loc := locales.FromRequest(c)

	if !c.GetBool(middleware.ContextKey) {
		h.render(c, formView{
			status: http.StatusForbidden,
			locale: loc,
			banner: loc.Messages[locales.MsgCSRFInvalid],
		})
		return
	}

	var req services.SubmitUserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.LogError(err, "SubmitForm: failed to bind form payload")
		h.render(c, formView{
			status: http.StatusBadRequest,
			locale: loc,
			banner: loc.Messages[locales.MsgStorage],
		})
		return
	}

	_, fieldKeys, err := h.userService.SubmitUser(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionInvalid):
			fieldErrors := make(map[string]string, len(fieldKeys))
			for _, key := range fieldKeys {
				fieldErrors[key] = loc.Messages[key]
			}
			h.render(c, formView{
				status:      http.StatusOK,
				locale:      loc,
				fields:      req,
				fieldErrors: fieldErrors,
			})
		case errors.Is(err, services.ErrEmailExists):
			h.render(c, formView{
				status:      http.StatusOK,
				locale:      loc,
				fields:      req,
				fieldErrors: map[string]string{"email": loc.Messages[locales.MsgEmailExists]},
			})
		default:
			utils.LogError(err, "SubmitForm: submission pipeline failed")
			h.render(c, formView{
				status: http.StatusInternalServerError,
				locale: loc,
				fields: req,
				banner: loc.Messages[locales.MsgStorage],
			})
		}
		return
	}

	h.render(c, formView{status: http.StatusOK, locale: loc, success: true})
}

// GetUsers returns every stored record as JSON.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		utils.LogError(err, "GetUsers: Error from userService.ListUsers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch users.", "Internal error"))
		return
	}

	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"data":    users,
	})
}
