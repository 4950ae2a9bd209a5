// controllers/dashboard.go
package controllers

import (
	"time"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetDashboardOverview returns the admin landing-page counters.
func GetDashboardOverview(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var (
		totalServices   int64
		totalTherapists int64
		totalBookings   int64
		pendingBookings int64
		todayBookings   int64
		unreadMessages  int64
	)

	today := utils.BeginningOfDay(time.Now())

	counts := []func() error{
		func() error {
			return config.DB.Model(&models.Service{}).Count(&totalServices).Error
		},
		func() error {
			return config.DB.Model(&models.Therapist{}).Count(&totalTherapists).Error
		},
		func() error {
			return config.DB.Model(&models.Booking{}).Count(&totalBookings).Error
		},
		func() error {
			return config.DB.Model(&models.Booking{}).
				Where("status = ?", models.BookingStatusPending).Count(&pendingBookings).Error
		},
		func() error {
			return config.DB.Model(&models.Booking{}).
				Where("date = ?", today).Count(&todayBookings).Error
		},
		func() error {
			return config.DB.Model(&models.Message{}).
				Where("status = ?", models.MessageStatusUnread).Count(&unreadMessages).Error
		},
	}
	for _, count := range counts {
		if err := count(); err != nil {
			log.Error().Err(err).Msg("dashboard counts")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
			return
		}
	}

	utils.APISuccess(c, gin.H{
		"totalServices":   totalServices,
		"totalTherapists": totalTherapists,
		"totalBookings":   totalBookings,
		"pendingBookings": pendingBookings,
		"todayBookings":   todayBookings,
		"unreadMessages":  unreadMessages,
	}, utils.T(locale, utils.MsgFetchSuccess))
}
