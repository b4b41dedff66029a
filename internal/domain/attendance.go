package domain

import "context"

// EventRef identifies an event and the schedule it belongs to.
type EventRef struct {
	EventID    int64
	ScheduleID int64
}

// AttendanceRepository reads what a user marked, booked or bought for a conference.
type AttendanceRepository interface {
	// ListInterestedEvents returns events the user starred (interest > 0).
	ListInterestedEvents(ctx context.Context, userID int64, conference string) ([]EventRef, error)
	ListBookedEvents(ctx context.Context, userID int64, conference string) ([]EventRef, error)
	// ListPurchasedFareIDs returns ids of fares of ticketType the user holds a ticket for.
	ListPurchasedFareIDs(ctx context.Context, userID int64, conference, ticketType string) ([]int64, error)
}
