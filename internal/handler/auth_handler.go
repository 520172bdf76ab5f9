package handler

import (
	"net/http"
	"time"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/dto"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/service"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/apperror"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const issueTokenRateLimit = 2 * time.Second

type AuthHandler struct {
	authService service.AuthService
	redisClient *redis.Client
}

func NewAuthHandler(authService service.AuthService, redisClient *redis.Client) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		redisClient: redisClient,
	}
}

// IssueToken handles POST /jwt.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var input dto.IssueTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": formatValidationError(err)})
		return
	}

	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, input.Email, "issue_token", issueTokenRateLimit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !allowed {
		response.Error(c, apperror.ErrRateLimitExceeded)
		return
	}

	res, err := h.authService.IssueToken(c.Request.Context(), input.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
