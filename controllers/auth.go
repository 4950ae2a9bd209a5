// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an admin user and returns a bearer token.
// There is no open registration; users come from the seed script.
func Login(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var user models.User
	if err := config.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIError(c, http.StatusUnauthorized, utils.ErrCodeAuth, utils.T(locale, utils.MsgAuthRequired))
		} else {
			log.Error().Err(err).Msg("load user")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.APIError(c, http.StatusUnauthorized, utils.ErrCodeAuth, utils.T(locale, utils.MsgAuthRequired))
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		log.Error().Err(err).Msg("generate token")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	maxAge := utils.TokenExpiryHours() * 3600
	c.SetCookie("token", token, maxAge, "/", "", true, true)

	utils.APISuccess(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	}, "")
}

// Me returns the authenticated user.
func Me(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	userID, exists := c.Get("userId")
	if !exists {
		utils.APIError(c, http.StatusUnauthorized, utils.ErrCodeAuth, utils.T(locale, utils.MsgAuthRequired))
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.APIError(c, http.StatusUnauthorized, utils.ErrCodeAuth, utils.T(locale, utils.MsgAuthRequired))
		return
	}

	utils.APISuccess(c, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}, "")
}
