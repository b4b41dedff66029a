package postgres

import (
	"context"
	"database/sql"
	"testing"

	"conferenceschedule/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_ListInterestedEvents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM event_interests ei(.|\n)*ei.interest > 0`).
		WithArgs(int64(42), "pycon8").
		WillReturnRows(sqlmock.NewRows([]string{"id", "schedule_id"}).AddRow(10, 1).AddRow(21, 2))

	repo := NewAttendanceRepository(db)
	got, err := repo.ListInterestedEvents(context.Background(), 42, "pycon8")
	require.NoError(t, err)
	assert.Equal(t, []domain.EventRef{{EventID: 10, ScheduleID: 1}, {EventID: 21, ScheduleID: 2}}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListBookedEvents(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    []domain.EventRef
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM event_bookings eb`).
					WithArgs(int64(42), "pycon8").
					WillReturnRows(sqlmock.NewRows([]string{"id", "schedule_id"}).AddRow(11, 1))
			},
			want: []domain.EventRef{{EventID: 11, ScheduleID: 1}},
		},
		{
			name: "none",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM event_bookings eb`).
					WithArgs(int64(42), "pycon8").
					WillReturnRows(sqlmock.NewRows([]string{"id", "schedule_id"}))
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM event_bookings`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewAttendanceRepository(db)
			got, err := repo.ListBookedEvents(ctx, 42, "pycon8")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttendanceRepository_ListPurchasedFareIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT DISTINCT t.fare_id\s+FROM tickets t`).
		WithArgs(int64(42), "pycon8", domain.TicketTypePartner).
		WillReturnRows(sqlmock.NewRows([]string{"fare_id"}).AddRow(5).AddRow(7))

	repo := NewAttendanceRepository(db)
	got, err := repo.ListPurchasedFareIDs(context.Background(), 42, "pycon8", domain.TicketTypePartner)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 7}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
