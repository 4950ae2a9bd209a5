// Seed script: creates the admin user, a starter catalogue of services
// and therapists with en/zh/ko translations, and the contact channels.
// Run with: go run ./scripts/seed
package main

import (
	"os"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	config.InitLogger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Warn().
			Str("suggested", utils.GenerateJWTSecret()).
			Msg("JWT_SECRET not set, add one to .env before starting the server")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.ServiceTranslation{},
		&models.Therapist{},
		&models.TherapistTranslation{},
		&models.Booking{},
		&models.Message{},
		&models.ContactMethod{},
		&models.Setting{},
		&models.NotificationLog{},
	)

	seedAdmin()
	seedServices()
	seedTherapists()
	seedContactMethods()

	log.Info().Msg("seed completed")
}

func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Info().Str("email", email).Msg("admin user already exists")
		return
	}

	user := models.User{
		Email:    email,
		Password: password, // hashed in BeforeCreate hook
		Name:     "Administrator",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Error().Err(err).Msg("create admin user")
		return
	}
	log.Info().Str("email", email).Msg("admin user created")
}

func seedServices() {
	var count int64
	config.DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		log.Info().Int64("count", count).Msg("services already seeded")
		return
	}

	catalogue := []models.Service{
		{
			Price: 1200, Duration: 60, ImageURL: "/images/services/thai.jpg",
			Translations: []models.ServiceTranslation{
				{Locale: "en", Name: "Traditional Thai Massage", Description: "Full-body stretching and acupressure.", Slug: "traditional-thai-massage"},
				{Locale: "zh", Name: "传统泰式按摩", Description: "全身伸展与指压。", Slug: "传统泰式按摩"},
				{Locale: "ko", Name: "전통 타이 마사지", Description: "전신 스트레칭과 지압.", Slug: "전통-타이-마사지"},
			},
		},
		{
			Price: 1500, Duration: 90, ImageURL: "/images/services/aroma.jpg",
			Translations: []models.ServiceTranslation{
				{Locale: "en", Name: "Aromatherapy Oil Massage", Description: "Relaxing massage with essential oils.", Slug: "aromatherapy-oil-massage"},
				{Locale: "zh", Name: "精油芳香按摩", Description: "使用精油的放松按摩。", Slug: "精油芳香按摩"},
				{Locale: "ko", Name: "아로마 오일 마사지", Description: "에센셜 오일을 사용한 릴렉스 마사지.", Slug: "아로마-오일-마사지"},
			},
		},
		{
			Price: 800, Duration: 45, ImageURL: "/images/services/foot.jpg",
			Translations: []models.ServiceTranslation{
				{Locale: "en", Name: "Foot Reflexology", Description: "Pressure-point foot massage.", Slug: "foot-reflexology"},
				{Locale: "zh", Name: "足部反射按摩", Description: "足部穴位按摩。", Slug: "足部反射按摩"},
				{Locale: "ko", Name: "발 반사 마사지", Description: "발 지압 마사지.", Slug: "발-반사-마사지"},
			},
		},
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for i := range catalogue {
			if err := tx.Create(&catalogue[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("seed services")
		return
	}
	log.Info().Int("count", len(catalogue)).Msg("services seeded")
}

func seedTherapists() {
	var count int64
	config.DB.Model(&models.Therapist{}).Count(&count)
	if count > 0 {
		log.Info().Int64("count", count).Msg("therapists already seeded")
		return
	}

	therapists := []models.Therapist{
		{
			ImageURL:        "/images/therapists/nida.jpg",
			Specialties:     models.StringList{"Thai massage", "Deep tissue"},
			ExperienceYears: 12,
			WorkStatus:      models.WorkStatusAvailable,
			Translations: []models.TherapistTranslation{
				{Locale: "en", Name: "Nida", Bio: "Certified in northern-style Thai massage.", SpecialtiesTranslation: models.StringList{"Thai massage", "Deep tissue"}},
				{Locale: "zh", Name: "妮达", Bio: "持有泰北式按摩认证。", SpecialtiesTranslation: models.StringList{"泰式按摩", "深层组织按摩"}},
				{Locale: "ko", Name: "니다", Bio: "북부식 타이 마사지 자격 보유.", SpecialtiesTranslation: models.StringList{"타이 마사지", "딥 티슈"}},
			},
		},
		{
			ImageURL:        "/images/therapists/som.jpg",
			Specialties:     models.StringList{"Aromatherapy", "Foot reflexology"},
			ExperienceYears: 8,
			WorkStatus:      models.WorkStatusAvailable,
			Translations: []models.TherapistTranslation{
				{Locale: "en", Name: "Som", Bio: "Aromatherapy specialist.", SpecialtiesTranslation: models.StringList{"Aromatherapy", "Foot reflexology"}},
				{Locale: "zh", Name: "索姆", Bio: "芳香疗法专家。", SpecialtiesTranslation: models.StringList{"芳香疗法", "足部反射按摩"}},
				{Locale: "ko", Name: "쏨", Bio: "아로마 테라피 전문가.", SpecialtiesTranslation: models.StringList{"아로마 테라피", "발 반사 마사지"}},
			},
		},
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for i := range therapists {
			if err := tx.Create(&therapists[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("seed therapists")
		return
	}
	log.Info().Int("count", len(therapists)).Msg("therapists seeded")
}

func seedContactMethods() {
	methods := []models.ContactMethod{
		{Type: "LINE", Value: "@massagepro", IsActive: true, QRCode: "/images/qr/line.png"},
		{Type: "WHATSAPP", Value: "+66812345678", IsActive: true, QRCode: "/images/qr/whatsapp.png"},
		{Type: "WECHAT", Value: "massagepro-spa", IsActive: true, QRCode: "/images/qr/wechat.png"},
		{Type: "TELEGRAM", Value: "@massagepro_spa", IsActive: false},
	}

	for _, method := range methods {
		var existing models.ContactMethod
		if err := config.DB.Where("type = ?", method.Type).First(&existing).Error; err == nil {
			continue
		}
		if err := config.DB.Create(&method).Error; err != nil {
			log.Error().Err(err).Str("type", method.Type).Msg("seed contact method")
		}
	}
	log.Info().Msg("contact methods seeded")
}
