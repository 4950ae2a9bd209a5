// controllers/booking.go
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

type CreateBookingInput struct {
	ServiceID     string `json:"serviceId"`
	TherapistID   string `json:"therapistId"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:mm
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes"`
}

type UpdateBookingInput struct {
	ServiceID     *string `json:"serviceId"`
	TherapistID   *string `json:"therapistId"`
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone"`
	Notes         *string `json:"notes"`
	Status        *string `json:"status"`
}

type BatchBookingInput struct {
	Action     string   `json:"action"`
	BookingIDs []string `json:"bookingIds"`
	Status     string   `json:"status"`
}

// GetBookings lists bookings, optionally filtered by status and date.
func GetBookings(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	query := config.DB.Preload("Service.Translations").Preload("Therapist.Translations").
		Order("date, time")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		d, err := utils.ParseDate(date)
		if err != nil {
			utils.APIError(c, http.StatusBadRequest, utils.ErrCodeInvalidDate, utils.T(locale, utils.MsgInvalidDate))
			return
		}
		query = query.Where("date = ?", d)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		log.Error().Err(err).Msg("list bookings")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, bookings, utils.T(locale, utils.MsgFetchSuccess))
}

// GetClientBookings lists bookings for the calling customer, matched by
// the email or phone query param.
func GetClientBookings(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	email := c.Query("email")
	phone := c.Query("phone")
	if email == "" && phone == "" {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	query := config.DB.Preload("Service.Translations").Order("date desc, time desc")
	if email != "" {
		query = query.Where("customer_email = ?", email)
	} else {
		query = query.Where("customer_phone = ?", phone)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		log.Error().Err(err).Msg("list client bookings")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, bookings, utils.T(locale, utils.MsgFetchSuccess))
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Service.Translations").Preload("Therapist.Translations").
		First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("get booking")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	utils.APISuccess(c, booking, utils.T(locale, utils.MsgFetchSuccess))
}

// CreateBooking is the public booking create path. It validates the
// customer fields, requires a parseable date and a 24h HH:mm time, and
// rejects bookings that are not in the future.
func CreateBooking(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	if input.ServiceID == "" || input.Date == "" || input.Time == "" ||
		input.CustomerName == "" || input.CustomerEmail == "" || input.CustomerPhone == "" {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if !utils.ValidateEmail(input.CustomerEmail) || !utils.ValidatePhone(input.CustomerPhone) {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if !utils.ValidateTime(input.Time) {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.APIError(c, http.StatusBadRequest, utils.ErrCodeInvalidDate, utils.T(locale, utils.MsgInvalidDate))
		return
	}

	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("load booking service")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	var therapistID *uuid.UUID
	if input.TherapistID != "" {
		id, err := uuid.Parse(input.TherapistID)
		if err != nil {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		var therapist models.Therapist
		if err := config.DB.First(&therapist, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
			} else {
				log.Error().Err(err).Msg("load booking therapist")
				utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
			}
			return
		}
		therapistID = &id
	}

	booking := models.Booking{
		ServiceID:     serviceUUID,
		TherapistID:   therapistID,
		Date:          date,
		Time:          input.Time,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Notes:         input.Notes,
		Status:        models.BookingStatusPending,
	}

	if !booking.StartsAt().After(time.Now()) {
		utils.APIValidationError(c, utils.T(locale, utils.MsgPastBooking))
		return
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		log.Error().Err(err).Msg("create booking")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	config.IncBookingCreated(booking.Status)

	utils.APISuccess(c, booking, utils.T(locale, utils.MsgCreateSuccess))
}

// UpdateBooking updates booking fields and/or its status.
func UpdateBooking(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		} else {
			log.Error().Err(err).Msg("load booking")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		}
		return
	}

	if input.Status != nil {
		if !models.ValidBookingStatus(*input.Status) {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		booking.Status = *input.Status
	}
	if input.Date != nil {
		d, err := utils.ParseDate(*input.Date)
		if err != nil {
			utils.APIError(c, http.StatusBadRequest, utils.ErrCodeInvalidDate, utils.T(locale, utils.MsgInvalidDate))
			return
		}
		booking.Date = d
	}
	if input.Time != nil {
		if !utils.ValidateTime(*input.Time) {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		booking.Time = *input.Time
	}
	if input.ServiceID != nil {
		id, err := uuid.Parse(*input.ServiceID)
		if err != nil {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		booking.ServiceID = id
	}
	if input.TherapistID != nil {
		if *input.TherapistID == "" {
			booking.TherapistID = nil
		} else {
			id, err := uuid.Parse(*input.TherapistID)
			if err != nil {
				utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
				return
			}
			booking.TherapistID = &id
		}
	}
	if input.CustomerName != nil {
		booking.CustomerName = *input.CustomerName
	}
	if input.CustomerEmail != nil {
		booking.CustomerEmail = *input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		if !utils.ValidatePhone(*input.CustomerPhone) {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		booking.CustomerPhone = *input.CustomerPhone
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		log.Error().Err(err).Msg("update booking")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}

	utils.APISuccess(c, booking, utils.T(locale, utils.MsgUpdateSuccess))
}

// DeleteBooking hard-deletes a booking.
func DeleteBooking(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	result := config.DB.Delete(&models.Booking{}, "id = ?", bookingUUID)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("delete booking")
		utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
		return
	}
	if result.RowsAffected == 0 {
		utils.APINotFoundError(c, utils.T(locale, utils.MsgNotFound))
		return
	}

	utils.APISuccess(c, nil, utils.T(locale, utils.MsgDeleteSuccess))
}

// BatchBookings applies one action to a list of booking IDs.
// Supported actions: "delete" and "status".
func BatchBookings(c *gin.Context) {
	locale := utils.ResolveLocale(c)

	var input BatchBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}
	if len(input.BookingIDs) == 0 {
		utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
		return
	}

	ids := make([]uuid.UUID, 0, len(input.BookingIDs))
	for _, raw := range input.BookingIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		ids = append(ids, id)
	}

	switch input.Action {
	case "delete":
		result := config.DB.Where("id IN ?", ids).Delete(&models.Booking{})
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("batch delete bookings")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
			return
		}
		utils.APISuccess(c, gin.H{"deleted": result.RowsAffected}, utils.T(locale, utils.MsgDeleteSuccess))

	case "status":
		if !models.ValidBookingStatus(input.Status) {
			utils.APIValidationError(c, utils.T(locale, utils.MsgInvalidInput))
			return
		}
		result := config.DB.Model(&models.Booking{}).
			Where("id IN ?", ids).
			Update("status", input.Status)
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("batch update bookings")
			utils.APIServerError(c, utils.T(locale, utils.MsgServerError))
			return
		}
		utils.APISuccess(c, gin.H{"updated": result.RowsAffected}, utils.T(locale, utils.MsgUpdateSuccess))

	default:
		utils.APIError(c, http.StatusBadRequest, utils.ErrCodeInvalidAction, utils.T(locale, utils.MsgInvalidAction))
	}
}
