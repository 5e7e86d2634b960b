package httpv1

import (
	"net/http"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type authRoutes struct {
	auth        service.Auth
	redirectURL string
}

func newAuthRoutes(g *echo.Group, auth service.Auth, redirectURL string, jwtAuth echo.MiddlewareFunc) {
	r := &authRoutes{auth: auth, redirectURL: redirectURL}

	g.POST("/login", r.login)

	protected := g.Group("", jwtAuth)
	protected.GET("/settings", r.settings)
	protected.PUT("/profile", r.updateProfile)
	protected.PUT("/preferences", r.updatePreferences)
	protected.PUT("/notifications", r.updateNotifications)
	protected.POST("/password", r.changePassword)
}

func (r *authRoutes) login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid JSON data"})
	}

	token, err := r.auth.Login(c.Request().Context(), req.Username, req.Password, c.RealIP())
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			log.WithField("username", req.Username).Error(err)
		}
		return c.JSON(code, echo.Map{"success": false, "error": errorMessage(code, err)})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"token":        token,
		"redirect_url": r.redirectURL,
	})
}

func (r *authRoutes) settings(c echo.Context) error {
	s, err := r.auth.Settings(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (r *authRoutes) updateProfile(c echo.Context) error {
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	err := r.auth.UpdateProfile(c.Request().Context(), userID(c), domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Profile updated successfully"})
}

func (r *authRoutes) updatePreferences(c echo.Context) error {
	var req displayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	err := r.auth.UpdateDisplay(c.Request().Context(), userID(c), domain.DisplayPreferences{
		DarkMode:        req.DarkMode,
		CompactView:     req.CompactView,
		RefreshInterval: req.RefreshInterval,
		ItemsPerPage:    req.ItemsPerPage,
		Timezone:        req.Timezone,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Preferences updated successfully"})
}

func (r *authRoutes) updateNotifications(c echo.Context) error {
	var req notificationsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, bindMessage(err))
	}

	err := r.auth.UpdateNotifications(c.Request().Context(), userID(c), domain.NotificationPreferences{
		EmailAnomalies:       req.EmailAnomalies,
		EmailCritical:        req.EmailCritical,
		EmailReports:         req.EmailReports,
		EmailUpdates:         req.EmailUpdates,
		BrowserNotifications: req.BrowserNotifications,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Notification settings updated successfully"})
}

func (r *authRoutes) changePassword(c echo.Context) error {
	var req passwordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	err := r.auth.ChangePassword(c.Request().Context(), userID(c), domain.PasswordChange{
		Current: req.Current,
		New:     req.New,
		Confirm: req.Confirm,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Password changed successfully"})
}
