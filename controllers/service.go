// controllers/service.go
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

// TranslationInput is a localized name/description/slug payload shared by
// service and therapist create/update endpoints.
type TranslationInput struct {
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Price        *float64           `json:"price"`
	Duration     *int               `json:"duration"` // in minutes
	ImageURL     string             `json:"imageUrl"`
	Translations []TranslationInput `json:"translations"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Price        *float64           `json:"price"`
	Duration     *int               `json:"duration"`
	ImageURL     *string            `json:"imageUrl"`
	Translations []TranslationInput `json:"translations"`
}

// BatchServiceInput is the PATCH payload for batch operations on services.
type BatchServiceInput struct {
	Action     string   `json:"action"`
	ServiceIDs []string `json:"serviceIds"`
}

// ServiceView is the flat, locale-projected shape returned to clients.
type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	ImageURL    string    `json:"imageUrl"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// pickTranslation returns the translation for locale, falling back to
// English, then to the first row.
func pickServiceTranslation(translations []models.ServiceTranslation, locale string) *models.ServiceTranslation {
	var fallback *models.ServiceTranslation
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

func projectService(s models.Service, locale string) ServiceView {
	view := ServiceView{
		ID:        s.ID,
		Price:     s.Price,
		Duration:  s.Duration,
		ImageURL:  s.ImageURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if tr := pickServiceTranslation(s.Translations, locale); tr != nil {
		view.Name = tr.Name
		view.Description = tr.Description
		view.Slug = tr.Slug
	}
	return view
}

// defaultServices is returned when the services table is still empty.
func defaultServices(locale string) []ServiceView {
	builtin := []models.Service{
		{
			ID: uuid.MustParse("7b4f1d7e-0001-4000-8000-000000000001"), Price: 1200, Duration: 60,
			Translations: []models.ServiceTranslation{
				{Locale: "en", Name: "Traditional Thai Massage", Description: "Full-body stretching and acupressure.", Slug: "traditional-thai-massage"},
				{Locale: "zh", Name: "传统泰式按摩", Description: "全身伸展与指压。", Slug: "传统泰式按摩"},
				{Locale: "ko", Name: "전통 타이 마사지", Description: "전신 스트레칭과 지압.", Slug: "전통-타이-마사지"},
			},
		},
		{
			ID: uuid.MustParse("7b4f1d7e-0001-4000-8000-000000000002"), Price: 1500, Duration: 90,
			Translations: []models.ServiceTranslation{
				{Locale: "en", Name: "Aromatherapy Oil Massage", Description: "Relaxing massage with essential oils.", Slug: "aromatherapy-oil-massage"},
				{Locale: "zh", Name: "精油芳香按摩", Description: "使用精油的放松按摩。", Slug: "精油芳香按摩"},
				{Locale: "ko", Name: "아로마 오일 마사지", Description: "에센셜 오일을 사용한 릴렉스 마사지.", Slug: "아로마-오일-마사지"},
			},
		},
		{
			ID: uuid.MustParse("7b4f1d7e-0001-4000-8000-000000000003"), Price: 800, Duration: 45,
			Translations: []models.ServiceTranslation{
				{Locale: "en", Name: "Foot Reflexology", Description: "Pressure-point foot massage.", Slug: "foot-reflexology"},
				{Locale: "zh", Name: "足部反射按摩", Description: "足部穴位按摩。", Slug: "足部反射按摩"},
				{Locale: "ko", Name: "발 반사 마사지", Description: "발 지압 마사지.", Slug: "발-반사-마사지"},
			},
		},
	}
	views := make([]ServiceView, 0, len(builtin))
	for _, s := range builtin {
		views = append(views, projectService(s, locale))
	}
	return views
}

// GetServices lists all services projected into the requested locale.
func GetServices(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var services []models.Service
	if err := config.DB.Preload("Translations").Order("created_at").Find(&services).Error; err != nil {
		log.Error().Err(err).Msg("list services")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	if len(services) == 0 {
		utils.APISuccess(c, defaultServices(locale), utils.T(locale, utils.MsgFetchSuccess))
		return
	}

	views := make([]ServiceView, 0, len(services))
	for _, s := range services {
		views = append(views, projectService(s, locale))
	}
	utils.APISuccess(c, views, utils.T(locale, utils.MsgFetchSuccess))
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var service models.Service
	if err := config.DB.Preload("Translations").First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("get service")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	utils.APISuccess(c, projectService(service, locale), utils.T(locale, utils.MsgFetchSuccess))
}

// CreateService creates a service with its translation rows.
func CreateService(c *gin.Context) {
	createService(c, false)
}

// AdminCreateService is the v1 admin variant: it additionally requires a
// translation for every supported locale and validates provided slugs.
func AdminCreateService(c *gin.Context) {
	createService(c, true)
}

func createService(c *gin.Context, requireAllLocales bool) {
	locale := utils.ResolveLocale(c)

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	if input.Price == nil || input.Duration == nil || input.ImageURL == "" || len(input.Translations) == 0 {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	translations, ok := buildTranslations(c, locale, input.Translations, requireAllLocales)
	if !ok {
		return
	}

	service := models.Service{
		Price:    *input.Price,
		Duration: *input.Duration,
		ImageURL: input.ImageURL,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}
		for i := range translations {
			translations[i].ServiceID = service.ID
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
		log.Error().Err(err).Msg("create service")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	var created models.Service
	if err := config.DB.Preload("Translations").First(&created, "id = ?", service.ID).Error; err != nil {
		log.Error().Err(err).Msg("reload service")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	utils.APISuccess(c, created, utils.T(locale, utils.MsgCreateSuccess))
}

// buildTranslations validates translation inputs and fills derived slugs.
// Writes a validation error response and returns false on failure.
func buildTranslations(c *gin.Context, locale string, inputs []TranslationInput, requireAllLocales bool) ([]models.ServiceTranslation, bool) {
	seen := map[string]bool{}
	translations := make([]models.ServiceTranslation, 0, len(inputs))
	for _, tr := range inputs {
		if tr.Locale == "" || tr.Name == "" || !utils.IsSupportedLocale(tr.Locale) || seen[tr.Locale] {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return nil, false
		}
		seen[tr.Locale] = true

		slug := tr.Slug
		if slug == "" {
			slug = utils.Slugify(tr.Name)
		} else if requireAllLocales && !utils.ValidateSlug(slug) {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return nil, false
		}
		if slug == "" {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return nil, false
		}

		translations = append(translations, models.ServiceTranslation{
			Locale:      tr.Locale,
			Name:        tr.Name,
			Description: tr.Description,
			Slug:        slug,
		})
	}
	if requireAllLocales {
		for _, l := range utils.SupportedLocales {
			if !seen[l] {
				utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
				return nil, false
			}
		}
	}
	return translations, true
}

// UpdateService upserts the service fields and each translation row
// inside one transaction, then returns the full entity.
func UpdateService(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("load service")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if input.Price != nil {
			service.Price = *input.Price
		}
		if input.Duration != nil {
			service.Duration = *input.Duration
		}
		if input.ImageURL != nil {
			service.ImageURL = *input.ImageURL
		}
		if err := tx.Save(&service).Error; err != nil {
			return err
		}

		for _, tr := range input.Translations {
			if tr.Locale == "" || !utils.IsSupportedLocale(tr.Locale) {
				continue
			}
			var existing models.ServiceTranslation
			err := tx.Where("service_id = ? AND locale = ?", service.ID, tr.Locale).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				slug := tr.Slug
				if slug == "" {
					slug = utils.Slugify(tr.Name)
				}
				if tr.Name == "" || slug == "" {
					continue
				}
				created := models.ServiceTranslation{
					ServiceID:   service.ID,
					Locale:      tr.Locale,
					Name:        tr.Name,
					Description: tr.Description,
					Slug:        slug,
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
			if tr.Description != "" {
				existing.Description = tr.Description
			}
			if tr.Slug != "" {
				existing.Slug = tr.Slug
			}
			if err := tx.Save(&existing).Error; err != nil {
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
		log.Error().Err(err).Msg("update service")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	var updated models.Service
	if err := config.DB.Preload("Translations").First(&updated, "id = ?", service.ID).Error; err != nil {
		log.Error().Err(err).Msg("reload service")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	utils.APISuccess(c, updated, utils.T(locale, utils.MsgUpdateSuccess))
}

// DeleteService removes the translations and then the service row in one
// transaction. The cascade is ordered manually, not left to the database.
func DeleteService(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var deleted int64
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceUUID).Delete(&models.ServiceTranslation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Service{}, "id = ?", serviceUUID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("delete service")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	if deleted == 0 {
		utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		return
	}

	utils.APISuccess(c, nil, utils.T(locale, utils.MsgDeleteSuccess))
}

// BatchServices applies one action to a list of service IDs transactionally.
// Supported: {"action": "delete", "serviceIds": [...]}.
func BatchServices(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input BatchServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	if input.Action != "delete" {
		utils.APIError(c, http.StatusBadRequest, utils.ErrCodeInvalidAction, utils.T(locale, utils.MsgInvalidAction))
		return
	}
	if len(input.ServiceIDs) == 0 {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	ids := make([]uuid.UUID, 0, len(input.ServiceIDs))
	for _, raw := range input.ServiceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		ids = append(ids, id)
	}

	var affected int64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id IN ?", ids).Delete(&models.ServiceTranslation{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", ids).Delete(&models.Service{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("batch delete services")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, gin.H{"deleted": affected}, utils.T(locale, utils.MsgDeleteSuccess))
}
