package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TicketTypePartner marks fares sold for the partner program.
const TicketTypePartner = "partner"

// Fare blob field names.
const (
	BlobFieldDate      = "date"
	BlobFieldDeparture = "departure"
	BlobFieldDuration  = "duration"
)

// Fare blob parse errors. Values returned by FareBlob wrap one of these.
var (
	ErrBlobFieldMissing = errors.New("fare blob field missing")
	ErrBlobFieldInvalid = errors.New("fare blob field invalid")
)

// Fare is a purchasable item of a conference.
// swagger:model Fare
type Fare struct {
	ID          int64  `json:"id"`
	Conference  string `json:"conference"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	TicketType  string `json:"ticket_type"`
	Description string `json:"description"`
	Blob        string `json:"blob"`
}

// FareBlob is the parsed form of a fare's free-text blob: one "key = value"
// pair per line, keys matched case-insensitively, first occurrence wins.
type FareBlob struct {
	fields map[string]string
}

// ParseFareBlob indexes the "key = value" lines of text. Lines without '=' are ignored.
func ParseFareBlob(text string) FareBlob {
	fields := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	return FareBlob{fields: fields}
}

// ParsedBlob parses the fare's blob.
func (f *Fare) ParsedBlob() FareBlob {
	return ParseFareBlob(f.Blob)
}

// Lookup returns the value of field. Empty values count as missing.
func (b FareBlob) Lookup(field string) (string, bool) {
	v, ok := b.fields[strings.ToLower(field)]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (b FareBlob) require(field string) (string, error) {
	v, ok := b.Lookup(field)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrBlobFieldMissing, field)
	}
	return v, nil
}

// Date parses the "date" field (YYYY/MM/DD) as midnight UTC.
func (b FareBlob) Date() (time.Time, error) {
	v, err := b.require(BlobFieldDate)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse("2006/1/2", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrBlobFieldInvalid, BlobFieldDate, v)
	}
	return d, nil
}

// Departure parses the "departure" field (HH:MM) as an offset from midnight.
func (b FareBlob) Departure() (time.Duration, error) {
	v, err := b.require(BlobFieldDeparture)
	if err != nil {
		return 0, err
	}
	t, err := time.Parse("15:4", v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBlobFieldInvalid, BlobFieldDeparture, v)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Duration parses the "duration" field as whole minutes.
func (b FareBlob) Duration() (int, error) {
	v, err := b.require(BlobFieldDuration)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBlobFieldInvalid, BlobFieldDuration, v)
	}
	return n, nil
}

// FareRepository reads fares.
type FareRepository interface {
	ListByConference(ctx context.Context, conference string) ([]*Fare, error)
}
