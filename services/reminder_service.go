// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"massagepro-backend/config"
	"massagepro-backend/models"
	"massagepro-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// smsSender abstracts SMS delivery so the sweep does not depend on a
// live Twilio account.
type smsSender interface {
	Send(to, from, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
}

func (t *twilioSender) Send(to, from, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	_, err := t.client.Api.CreateMessage(params)
	return err
}

// ReminderService sends an SMS reminder the day before each confirmed
// booking and records every delivery attempt.
type ReminderService struct {
	db     *gorm.DB
	sender smsSender
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		sender: &twilioSender{
			client: twilio.NewRestClientWithParams(twilio.ClientParams{
				Username: accountSid,
				Password: authToken,
			}),
		},
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run daily at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Info().Msg("reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	s.remindUpcoming(time.Now())
}

// remindUpcoming notifies every customer with a confirmed booking on the
// day after now. Failures are logged per booking; the sweep keeps going.
func (s *ReminderService) remindUpcoming(now time.Time) {
	if s.from == "" {
		log.Warn().Msg("TWILIO_FROM_NUMBER not set, skipping reminder sweep")
		return
	}

	tomorrow := utils.BeginningOfDay(now.AddDate(0, 0, 1))

	var bookings []models.Booking
	err := s.db.Preload("Service.Translations").
		Where("date = ? AND status = ?", tomorrow, models.BookingStatusConfirmed).
		Find(&bookings).Error
	if err != nil {
		log.Error().Err(err).Msg("load bookings for reminders")
		return
	}

	for _, booking := range bookings {
		s.sendReminder(booking)
	}

	log.Info().Int("bookings", len(bookings)).Msg("reminder sweep completed")
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	serviceName := ""
	if booking.Service != nil {
		if len(booking.Service.Translations) > 0 {
			serviceName = booking.Service.Translations[0].Name
		}
		for _, tr := range booking.Service.Translations {
			if tr.Locale == utils.DefaultLocale {
				serviceName = tr.Name
			}
		}
	}

	body := fmt.Sprintf("Hi %s, this is a reminder of your %s appointment tomorrow at %s. See you soon!",
		booking.CustomerName, serviceName, booking.Time)

	entry := models.NotificationLog{
		BookingID: booking.ID,
		Channel:   "sms",
		SentAt:    time.Now(),
	}

	if err := s.sender.Send(booking.CustomerPhone, s.from, body); err != nil {
		log.Error().Err(err).Str("booking", booking.ID.String()).Msg("send reminder")
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
		config.IncReminderSent("failed")
	} else {
		entry.Status = "sent"
		config.IncReminderSent("sent")
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Error().Err(err).Msg("write notification log")
	}
}
