package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ayursutra-server/internal/config"
	"ayursutra-server/internal/middleware"
	"ayursutra-server/internal/models"
	"ayursutra-server/internal/utils"
)

// SessionHandler issues dashboard sessions. No credentials are checked: the
// caller picks a name and a role on the dashboard login screen.
type SessionHandler struct {
	Cfg *config.Config
	Log *zap.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(cfg *config.Config, log *zap.Logger) *SessionHandler {
	return &SessionHandler{Cfg: cfg, Log: log}
}

// sessionNamespace scopes the name-derived user ids.
var sessionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("ayursutra:session"))

// userID is stable per role and case-folded name, so signing in again under
// the same name resumes the same bookings and medical history.
func userID(role models.Role, name string) string {
	return uuid.NewSHA1(sessionNamespace, []byte(string(role)+":"+strings.ToLower(name))).String()
}

// StartSessionRequest represents the request body for a simulated login.
type StartSessionRequest struct {
	Name string `json:"name" binding:"required,max=120"`
	Role string `json:"role" binding:"required,oneof=patient doctor admin"`
}

// SessionResponse is returned by StartSession.
type SessionResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      models.CurrentUser `json:"user"`
}

// StartSession handles the simulated login.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.ValidationFailed(c, []string{"name is required"})
		return
	}

	role := models.Role(req.Role)
	user := models.CurrentUser{
		ID:   userID(role, name),
		Name: name,
		Role: role,
	}
	ttl := time.Duration(h.Cfg.JWTExpirationMinutes) * time.Minute
	token, expiresAt, err := utils.GenerateSessionToken(user, h.Cfg.JWTSecret, ttl)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	h.Log.Info("session started", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	utils.Created(c, "Session started", SessionResponse{Token: token, ExpiresAt: expiresAt, User: user})
}

// GetSession returns the current user.
func (h *SessionHandler) GetSession(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	utils.Success(c, "Session fetched successfully", user)
}
