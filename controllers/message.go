// controllers/message.go
package controllers

import (
	"errors"
	"net/http"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CreateMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateMessageInput struct {
	Status *string `json:"status"`
	Reply  *string `json:"reply"`
}

type BatchMessageInput struct {
	Action     string   `json:"action"`
	MessageIDs []string `json:"messageIds"`
}

// CreateMessage is the public contact-form endpoint.
func CreateMessage(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if !utils.ValidateEmail(input.Email) {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	message := models.Message{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.MessageStatusUnread,
	}

	if err := config.DB.Create(&message).Error; err != nil {
		log.Error().Err(err).Msg("create message")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, message, utils.T(locale, utils.MsgCreateSuccess))
}

// GetMessages lists contact messages, optionally filtered by status.
func GetMessages(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	query := config.DB.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var messages []models.Message
	if err := query.Find(&messages).Error; err != nil {
		log.Error().Err(err).Msg("list messages")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, messages, utils.T(locale, utils.MsgFetchSuccess))
}

// GetMessage retrieves one message and marks it READ.
func GetMessage(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var message models.Message
	if err := config.DB.First(&message, "id = ?", messageUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("get message")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	if message.Status == models.MessageStatusUnread {
		message.Status = models.MessageStatusRead
		if err := config.DB.Model(&message).Update("status", message.Status).Error; err != nil {
			log.Error().Err(err).Msg("mark message read")
		}
	}

	utils.APISuccess(c, message, utils.T(locale, utils.MsgFetchSuccess))
}

// UpdateMessage sets the reply and/or status of a message. Writing a
// reply marks the message READ.
func UpdateMessage(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var input UpdateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if input.Status != nil &&
		*input.Status != models.MessageStatusUnread && *input.Status != models.MessageStatusRead {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var message models.Message
	if err := config.DB.First(&message, "id = ?", messageUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("load message")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	if input.Status != nil {
		message.Status = *input.Status
	}
	if input.Reply != nil {
		message.Reply = input.Reply
		message.Status = models.MessageStatusRead
	}

	if err := config.DB.Save(&message).Error; err != nil {
		log.Error().Err(err).Msg("update message")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, message, utils.T(locale, utils.MsgUpdateSuccess))
}

// DeleteMessage hard-deletes a message.
func DeleteMessage(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	result := config.DB.Delete(&models.Message{}, "id = ?", messageUUID)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("delete message")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	if result.RowsAffected == 0 {
		utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		return
	}

	utils.APISuccess(c, nil, utils.T(locale, utils.MsgDeleteSuccess))
}

// BatchMessages applies one action to a list of message IDs.
// Supported actions: "delete" and "read".
func BatchMessages(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input BatchMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if len(input.MessageIDs) == 0 {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	ids := make([]uuid.UUID, 0, len(input.MessageIDs))
	for _, raw := range input.MessageIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		ids = append(ids, id)
	}

	switch input.Action {
	case "delete":
		result := config.DB.Where("id IN ?", ids).Delete(&models.Message{})
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("batch delete messages")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
			return
		}
		utils.APISuccess(c, gin.H{"deleted": result.RowsAffected}, utils.T(locale, utils.MsgDeleteSuccess))

	case "read":
		result := config.DB.Model(&models.Message{}).
			Where("id IN ?", ids).
			Update("status", models.MessageStatusRead)
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("batch mark messages read")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
			return
		}
		utils.APISuccess(c, gin.H{"updated": result.RowsAffected}, utils.T(locale, utils.MsgUpdateSuccess))

	default:
		utils.APIError(c, http.StatusBadRequest, utils.ErrCodeInvalidAction, utils.T(locale, utils.MsgInvalidAction))
	}
}
