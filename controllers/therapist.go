// controllers/therapist.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TherapistTranslationInput struct {
	Locale                 string   `json:"locale"`
	Name                   string   `json:"name"`
	Bio                    string   `json:"bio"`
	SpecialtiesTranslation []string `json:"specialtiesTranslation"`
}

type CreateTherapistInput struct {
	ImageURL        string                      `json:"imageUrl"`
	Specialties     []string                    `json:"specialties"`
	ExperienceYears *int                        `json:"experienceYears"`
	WorkStatus      string                      `json:"workStatus"`
	Translations    []TherapistTranslationInput `json:"translations"`
}

type UpdateTherapistInput struct {
	ImageURL        *string                     `json:"imageUrl"`
	Specialties     []string                    `json:"specialties"`
	ExperienceYears *int                        `json:"experienceYears"`
	WorkStatus      *string                     `json:"workStatus"`
	Translations    []TherapistTranslationInput `json:"translations"`
}

type BatchTherapistInput struct {
	Action       string   `json:"action"`
	TherapistIDs []string `json:"therapistIds"`
	WorkStatus   string   `json:"workStatus"`
}

type TherapistView struct {
	ID              uuid.UUID `json:"id"`
	ImageURL        string    `json:"imageUrl"`
	Specialties     []string  `json:"specialties"`
	ExperienceYears int       `json:"experienceYears"`
	WorkStatus      string    `json:"workStatus"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func pickTherapistTranslation(translations []models.TherapistTranslation, locale string) *models.TherapistTranslation {
	var fallback *models.TherapistTranslation
	for i := range translations {
		if translations[i].Locale == locale {
			return &translations[i]
		}
		if translations[i].Locale == utils.DefaultLocale {
			fallback = &translations[i]
		}
	}
	if fallback == nil && len(translations) > 0 {
		fallback = &translations[0]
	}
	return fallback
}

func projectTherapist(t models.Therapist, locale string) TherapistView {
	view := TherapistView{
		ID:              t.ID,
		ImageURL:        t.ImageURL,
		Specialties:     t.Specialties,
		ExperienceYears: t.ExperienceYears,
		WorkStatus:      t.WorkStatus,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if tr := pickTherapistTranslation(t.Translations, locale); tr != nil {
		view.Name = tr.Name
		view.Bio = tr.Bio
		if len(tr.SpecialtiesTranslation) > 0 {
			view.Specialties = tr.SpecialtiesTranslation
		}
	}
	if view.Specialties == nil {
		view.Specialties = []string{}
	}
	return view
}

// GetTherapists lists all therapists projected into the requested locale.
func GetTherapists(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var therapists []models.Therapist
	if err := config.DB.Preload("Translations").Order("created_at").Find(&therapists).Error; err != nil {
		log.Error().Err(err).Msg("list therapists")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	views := make([]TherapistView, 0, len(therapists))
	for _, t := range therapists {
		views = append(views, projectTherapist(t, locale))
	}
	utils.APISuccess(c, views, utils.T(locale, utils.MsgFetchSuccess))
}

// GetTherapist retrieves a specific therapist by ID
func GetTherapist(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	therapistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var therapist models.Therapist
	if err := config.DB.Preload("Translations").First(&therapist, "id = ?", therapistUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("get therapist")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	utils.APISuccess(c, projectTherapist(therapist, locale), utils.T(locale, utils.MsgFetchSuccess))
}

// CreateTherapist creates a therapist with its translation rows.
func CreateTherapist(c *gin.Context) {
	createTherapist(c, false)
}

// AdminCreateTherapist additionally requires all supported locales.
func AdminCreateTherapist(c *gin.Context) {
	createTherapist(c, true)
}

func createTherapist(c *gin.Context, requireAllLocales bool) {
	locale := utils.ResolveLocale(c)

	var input CreateTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	if input.ImageURL == "" || len(input.Translations) == 0 {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	workStatus := input.WorkStatus
	if workStatus == "" {
		workStatus = models.WorkStatusAvailable
	}
	if !models.ValidWorkStatus(workStatus) {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	seen := map[string]bool{}
	translations := make([]models.TherapistTranslation, 0, len(input.Translations))
	for _, tr := range input.Translations {
		if tr.Locale == "" || tr.Name == "" || !utils.IsSupportedLocale(tr.Locale) || seen[tr.Locale] {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		seen[tr.Locale] = true
		translations = append(translations, models.TherapistTranslation{
			Locale:                 tr.Locale,
			Name:                   tr.Name,
			Bio:                    tr.Bio,
			SpecialtiesTranslation: tr.SpecialtiesTranslation,
		})
	}
	if requireAllLocales {
		for _, l := range utils.SupportedLocales {
			if !seen[l] {
				utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
				return
			}
		}
	}

	therapist := models.Therapist{
		ImageURL:    input.ImageURL,
		Specialties: input.Specialties,
		WorkStatus:  workStatus,
	}
	if input.ExperienceYears != nil {
		therapist.ExperienceYears = *input.ExperienceYears
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&therapist).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].TherapistID = therapist.ID
			if err := tx.Create(&translations[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.APIError(c, http.StatusConflict, utils.ErrCodeDuplicate, utils.T(locale, utils.MsgDuplicate))
			return
		}
		log.Error().Err(err).Msg("create therapist")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	var created models.Therapist
	if err := config.DB.Preload("Translations").First(&created, "id = ?", therapist.ID).Error; err != nil {
		log.Error().Err(err).Msg("reload therapist")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	utils.APISuccess(c, created, utils.T(locale, utils.MsgCreateSuccess))
}

// UpdateTherapist upserts fields and translation rows in one transaction.
func UpdateTherapist(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	therapistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var input UpdateTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if input.WorkStatus != nil && !models.ValidWorkStatus(*input.WorkStatus) {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var therapist models.Therapist
	if err := config.DB.First(&therapist, "id = ?", therapistUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("load therapist")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if input.ImageURL != nil {
			therapist.ImageURL = *input.ImageURL
		}
		if input.Specialties != nil {
			therapist.Specialties = input.Specialties
		}
		if input.ExperienceYears != nil {
			therapist.ExperienceYears = *input.ExperienceYears
		}
		if input.WorkStatus != nil {
			therapist.WorkStatus = *input.WorkStatus
		}
		if err := tx.Save(&therapist).Error; err != nil {
			return err
		}

		for _, tr := range input.Translations {
			if tr.Locale == "" || !utils.IsSupportedLocale(tr.Locale) {
				continue
			}
			var existing models.TherapistTranslation
			err := tx.Where("therapist_id = ? AND locale = ?", therapist.ID, tr.Locale).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if tr.Name == "" {
					continue
				}
				created := models.TherapistTranslation{
					TherapistID:            therapist.ID,
					Locale:                 tr.Locale,
					Name:                   tr.Name,
					Bio:                    tr.Bio,
					SpecialtiesTranslation: tr.SpecialtiesTranslation,
				}
				if err := tx.Create(&created).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			if tr.Name != "" {
				existing.Name = tr.Name
			}
			if tr.Bio != "" {
				existing.Bio = tr.Bio
			}
			if tr.SpecialtiesTranslation != nil {
				existing.SpecialtiesTranslation = tr.SpecialtiesTranslation
			}
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("update therapist")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	var updated models.Therapist
	if err := config.DB.Preload("Translations").First(&updated, "id = ?", therapist.ID).Error; err != nil {
		log.Error().Err(err).Msg("reload therapist")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	utils.APISuccess(c, updated, utils.T(locale, utils.MsgUpdateSuccess))
}

// DeleteTherapist removes translations then the therapist row, ordered
// inside one transaction.
func DeleteTherapist(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	therapistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var deleted int64
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("therapist_id = ?", therapistUUID).Delete(&models.TherapistTranslation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Therapist{}, "id = ?", therapistUUID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("delete therapist")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	if deleted == 0 {
		utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		return
	}

	utils.APISuccess(c, nil, utils.T(locale, utils.MsgDeleteSuccess))
}

// BatchTherapists applies one action to a list of therapist IDs.
// Supported actions: "delete" and "status" (work status update).
func BatchTherapists(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input BatchTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if len(input.TherapistIDs) == 0 {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	ids := make([]uuid.UUID, 0, len(input.TherapistIDs))
	for _, raw := range input.TherapistIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		ids = append(ids, id)
	}

	switch input.Action {
	case "delete":
		var affected int64
		err := config.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("therapist_id IN ?", ids).Delete(&models.TherapistTranslation{}).Error; err != nil {
				return err
			}
			result := tx.Where("id IN ?", ids).Delete(&models.Therapist{})
			if result.Error != nil {
				return result.Error
			}
			affected = result.RowsAffected
			return nil
		})
		if err != nil {
			log.Error().Err(err).Msg("batch delete therapists")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
			return
		}
		utils.APISuccess(c, gin.H{"deleted": affected}, utils.T(locale, utils.MsgDeleteSuccess))

	case "status":
		if !models.ValidWorkStatus(input.WorkStatus) {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		result := config.DB.Model(&models.Therapist{}).
			Where("id IN ?", ids).
			Update("work_status", input.WorkStatus)
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("batch update therapists")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
			return
		}
		utils.APISuccess(c, gin.H{"updated": result.RowsAffected}, utils.T(locale, utils.MsgUpdateSuccess))

	default:
		utils.APIError(c, http.StatusBadRequest, utils.ErrCodeInvalidAction, utils.T(locale, utils.MsgInvalidAction))
	}
}
