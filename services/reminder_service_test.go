package services

import (
	"errors"
	"testing"
	"time"

	"massagepro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordingSender struct {
	sent   []string
	failTo string
}

func (r *recordingSender) Send(to, from, body string) error {
	if to == r.failTo {
		return errors.New("delivery rejected")
	}
	r.sent = append(r.sent, to)
	return nil
}

func setupReminderDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(
		&models.Service{},
		&models.ServiceTranslation{},
		&models.Booking{},
		&models.NotificationLog{},
	), "migrate schema")
	return db
}

func seedReminderBooking(t *testing.T, db *gorm.DB, service models.Service, date time.Time, status, phone string) models.Booking {
	t.Helper()

	booking := models.Booking{
		ServiceID:     service.ID,
		Date:          date,
		Time:          "14:00",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: phone,
		Status:        status,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func TestRemindUpcomingSelectsNextDayConfirmed(t *testing.T) {
	db := setupReminderDB(t)

	service := models.Service{Price: 1200, Duration: 60}
	require.NoError(t, db.Create(&service).Error)

	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.Local)
	day := func(offset int) time.Time {
		return time.Date(2030, 6, 1+offset, 0, 0, 0, 0, time.Local)
	}

	seedReminderBooking(t, db, service, day(0), models.BookingStatusConfirmed, "+66810000001")
	seedReminderBooking(t, db, service, day(1), models.BookingStatusConfirmed, "+66810000002")
	seedReminderBooking(t, db, service, day(1), models.BookingStatusPending, "+66810000003")
	seedReminderBooking(t, db, service, day(1), models.BookingStatusCancelled, "+66810000004")
	seedReminderBooking(t, db, service, day(2), models.BookingStatusConfirmed, "+66810000005")

	sender := &recordingSender{}
	s := &ReminderService{db: db, sender: sender, from: "+15550000000"}
	s.remindUpcoming(now)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+66810000002", sender.sent[0])

	var logs []models.NotificationLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "sent", logs[0].Status)
	assert.Equal(t, "sms", logs[0].Channel)
}

func TestRemindUpcomingLogsFailedDeliveries(t *testing.T) {
	db := setupReminderDB(t)

	service := models.Service{Price: 1200, Duration: 60}
	require.NoError(t, db.Create(&service).Error)

	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.Local)
	tomorrow := time.Date(2030, 6, 2, 0, 0, 0, 0, time.Local)

	ok := seedReminderBooking(t, db, service, tomorrow, models.BookingStatusConfirmed, "+66810000001")
	bad := seedReminderBooking(t, db, service, tomorrow, models.BookingStatusConfirmed, "+66810000002")

	sender := &recordingSender{failTo: bad.CustomerPhone}
	s := &ReminderService{db: db, sender: sender, from: "+15550000000"}
	s.remindUpcoming(now)

	// The sweep keeps going past a failed delivery and logs both attempts.
	require.Len(t, sender.sent, 1)
	assert.Equal(t, ok.CustomerPhone, sender.sent[0])

	var logs []models.NotificationLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 2)

	byBooking := map[string]models.NotificationLog{}
	for _, entry := range logs {
		byBooking[entry.BookingID.String()] = entry
	}
	assert.Equal(t, "sent", byBooking[ok.ID.String()].Status)
	assert.Equal(t, "failed", byBooking[bad.ID.String()].Status)
	assert.Equal(t, "delivery rejected", byBooking[bad.ID.String()].ErrorMessage)
}

func TestRemindUpcomingSkipsWithoutFromNumber(t *testing.T) {
	db := setupReminderDB(t)

	service := models.Service{Price: 1200, Duration: 60}
	require.NoError(t, db.Create(&service).Error)

	tomorrow := time.Date(2030, 6, 2, 0, 0, 0, 0, time.Local)
	seedReminderBooking(t, db, service, tomorrow, models.BookingStatusConfirmed, "+66810000001")

	sender := &recordingSender{}
	s := &ReminderService{db: db, sender: sender, from: ""}
	s.remindUpcoming(time.Date(2030, 6, 1, 9, 0, 0, 0, time.Local))

	assert.Empty(t, sender.sent)

	var count int64
	db.Model(&models.NotificationLog{}).Count(&count)
	assert.Zero(t, count)
}
