// controllers/contact_method.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CreateContactMethodInput struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	QRCode string `json:"qrCode"`
}

type UpdateContactMethodInput struct {
	Value    *string `json:"value"`
	IsActive *bool   `json:"isActive"`
	QRCode   *string `json:"qrCode"`
}

// GetActiveContactMethods is the public contact page endpoint.
func GetActiveContactMethods(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var methods []models.ContactMethod
	if err := config.DB.Where("is_active = ?", true).Order("type").Find(&methods).Error; err != nil {
		log.Error().Err(err).Msg("list active contact methods")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, methods, utils.T(locale, utils.MsgFetchSuccess))
}

// GetContactMethods lists all contact methods, active or not.
func GetContactMethods(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var methods []models.ContactMethod
	if err := config.DB.Order("type").Find(&methods).Error; err != nil {
		log.Error().Err(err).Msg("list contact methods")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, methods, utils.T(locale, utils.MsgFetchSuccess))
}

// CreateContactMethod adds a channel; the type is uppercased and unique.
func CreateContactMethod(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input CreateContactMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if input.Type == "" || input.Value == "" {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	method := models.ContactMethod{
		Type:     strings.ToUpper(strings.TrimSpace(input.Type)),
		Value:    input.Value,
		QRCode:   input.QRCode,
		IsActive: true,
	}

	if err := config.DB.Create(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.APIError(c, http.StatusConflict, utils.ErrCodeDuplicate, utils.T(locale, utils.MsgDuplicate))
			return
		}
		log.Error().Err(err).Msg("create contact method")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, method, utils.T(locale, utils.MsgCreateSuccess))
}

// UpdateContactMethod updates value, active flag or QR code URL.
func UpdateContactMethod(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	methodUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var input UpdateContactMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var method models.ContactMethod
	if err := config.DB.First(&method, "id = ?", methodUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("load contact method")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	if input.Value != nil {
		method.Value = *input.Value
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}
	if input.QRCode != nil {
		method.QRCode = *input.QRCode
	}

	if err := config.DB.Save(&method).Error; err != nil {
		log.Error().Err(err).Msg("update contact method")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, method, utils.T(locale, utils.MsgUpdateSuccess))
}

// DeleteContactMethod hard-deletes a channel.
func DeleteContactMethod(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	methodUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	result := config.DB.Delete(&models.ContactMethod{}, "id = ?", methodUUID)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("delete contact method")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	if result.RowsAffected == 0 {
		utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		return
	}

	utils.APISuccess(c, nil, utils.T(locale, utils.MsgDeleteSuccess))
}
