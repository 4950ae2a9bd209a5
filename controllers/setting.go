// controllers/setting.go
package controllers

import (
	"errors"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GetSettings returns all settings as a flat key/value map.
func GetSettings(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var settings []models.Setting
	if err := config.DB.Order("key").Find(&settings).Error; err != nil {
		log.Error().Err(err).Msg("list settings")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	utils.APISuccess(c, values, utils.T(locale, utils.MsgFetchSuccess))
}

// UpdateSettings upserts each submitted key independently and reports
// per-key results; a partial failure is not rolled back.
func UpdateSettings(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input map[string]string
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if len(input) == 0 {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	saved := make([]string, 0, len(input))
	failed := make([]string, 0)
	for key, value := range input {
		if key == "" {
			failed = append(failed, key)
			continue
		}
		var setting models.Setting
		err := config.DB.Where("key = ?", key).First(&setting).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			setting = models.Setting{Key: key, Value: value}
			err = config.DB.Create(&setting).Error
		case err == nil:
			err = config.DB.Model(&setting).Update("value", value).Error
		}
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("save setting")
			failed = append(failed, key)
			continue
		}
		saved = append(saved, key)
	}

	message := utils.T(locale, utils.MsgUpdateSuccess)
	if len(failed) > 0 {
		message = utils.T(locale, utils.MsgPartialSave)
	}
	utils.APISuccess(c, gin.H{"saved": saved, "failed": failed}, message)
}
