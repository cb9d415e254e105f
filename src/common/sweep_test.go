package common

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestInReminderWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, InReminderWindow(now.Add(71*time.Hour+30*time.Minute), now))
	assert.True(t, InReminderWindow(now.Add(71*time.Hour), now))

	// The window is half-open at 72h so the next pass picks it up instead.
	assert.False(t, InReminderWindow(now.Add(72*time.Hour), now))
	assert.False(t, InReminderWindow(now.Add(70*time.Hour+59*time.Minute), now))
	assert.False(t, InReminderWindow(now.Add(-time.Hour), now))
}

func TestExpireStaleReservationsDoubleRun(t *testing.T) {
	mock := newMockDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "code", "status", "cutoff_date"}).
		AddRow(3, "HB-STALE001", "active", now.Add(-2*time.Hour))
	mock.ExpectQuery(`SELECT (.+) FROM "reservations"`).WillReturnRows(rows)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reservations"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	assert.Nil(t, ExpireStaleReservations(now))

	// An immediate re-run finds nothing left to expire.
	mock.ExpectQuery(`SELECT (.+) FROM "reservations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	assert.Nil(t, ExpireStaleReservations(now))

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSendCutoffRemindersGuardedUpdate(t *testing.T) {
	mock := newMockDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "code", "status", "payment_status", "cutoff_date"}).
		AddRow(4, "HB-DUESOON1", "active", "paid", now.Add(71*time.Hour+30*time.Minute))
	mock.ExpectQuery(`SELECT (.+) FROM "reservations"`).WillReturnRows(rows)
	mock.ExpectBegin()
	// A concurrent pass already recorded the reminder.
	mock.ExpectExec(`UPDATE "reservations"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.Nil(t, SendCutoffReminders(now))

	// Guard lost: no reminder notification goes out.
	assert.Nil(t, mock.ExpectationsWereMet())
}
