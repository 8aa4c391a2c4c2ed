package reservation

import (
	"regexp"
	"strings"
	"time"

	"festivo/internal/pkg/errs"
)

const (
	MaxNameLength    = 255
	MaxEmailLength   = 255
	MaxContactLength = 32
	MaxAddressLength = 1000
	MaxNotesLength   = 2000
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// CustomerDetails holds the contact fields captured with every booking.
type CustomerDetails struct {
	fullName      string
	email         string
	contactNumber string
	address       string
}

// NewCustomerDetails validates presence and bounds of the required contact
// fields, returning all failures together keyed by field.
func NewCustomerDetails(fullName, email, contactNumber, address string) (CustomerDetails, error) {
	fe := errs.FieldErrors{}

	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	contactNumber = strings.TrimSpace(contactNumber)
	address = strings.TrimSpace(address)

	switch {
	case fullName == "":
		fe.Add("full_name", "full name is required")
	case len(fullName) > MaxNameLength:
		fe.Add("full_name", "full name is too long")
	}

	switch {
	case email == "":
		fe.Add("email", "email is required")
	case len(email) > MaxEmailLength:
		fe.Add("email", "email is too long")
	case !emailRegex.MatchString(email):
		fe.Add("email", "email format is invalid")
	}

	switch {
	case contactNumber == "":
		fe.Add("contact_number", "contact number is required")
	case len(contactNumber) > MaxContactLength:
		fe.Add("contact_number", "contact number is too long")
	}

	switch {
	case address == "":
		fe.Add("address", "address is required")
	case len(address) > MaxAddressLength:
		fe.Add("address", "address is too long")
	}

	if fe.HasErrors() {
		return CustomerDetails{}, fe
	}

	return CustomerDetails{
		fullName:      fullName,
		email:         email,
		contactNumber: contactNumber,
		address:       address,
	}, nil
}

func ReconstructCustomerDetails(fullName, email, contactNumber, address string) CustomerDetails {
	return CustomerDetails{
		fullName:      fullName,
		email:         email,
		contactNumber: contactNumber,
		address:       address,
	}
}

func (c CustomerDetails) FullName() string      { return c.fullName }
func (c CustomerDetails) Email() string         { return c.email }
func (c CustomerDetails) ContactNumber() string { return c.contactNumber }
func (c CustomerDetails) Address() string       { return c.address }

// EventDetails holds the what/when/where of the booked event.
type EventDetails struct {
	eventType  string
	eventDate  time.Time
	eventTime  *string
	venue      string
	guestCount int
}

// NewEventDetails validates the event fields. The date must be strictly in
// the future at creation time.
func NewEventDetails(eventType string, eventDate time.Time, eventTime *string, venue string, guestCount int, now time.Time) (EventDetails, error) {
	fe := errs.FieldErrors{}

	eventType = strings.TrimSpace(eventType)
	venue = strings.TrimSpace(venue)

	if eventType == "" {
		fe.Add("event_type", "event type is required")
	}
	if eventDate.IsZero() {
		fe.Add("event_date", "event date is required")
	} else if !eventDate.After(now) {
		fe.Add("event_date", "event date must be in the future")
	}
	if venue == "" {
		fe.Add("venue", "venue is required")
	}
	if guestCount <= 0 {
		fe.Add("guest_count", "guest count must be a positive number")
	}

	if fe.HasErrors() {
		return EventDetails{}, fe
	}

	var trimmedTime *string
	if eventTime != nil {
		t := strings.TrimSpace(*eventTime)
		if t != "" {
			trimmedTime = &t
		}
	}

	return EventDetails{
		eventType:  eventType,
		eventDate:  eventDate,
		eventTime:  trimmedTime,
		venue:      venue,
		guestCount: guestCount,
	}, nil
}

func ReconstructEventDetails(eventType string, eventDate time.Time, eventTime *string, venue string, guestCount int) EventDetails {
	return EventDetails{
		eventType:  eventType,
		eventDate:  eventDate,
		eventTime:  eventTime,
		venue:      venue,
		guestCount: guestCount,
	}
}

func (e EventDetails) EventType() string  { return e.eventType }
func (e EventDetails) EventDate() time.Time { return e.eventDate }
func (e EventDetails) EventTime() *string { return e.eventTime }
func (e EventDetails) Venue() string      { return e.venue }
func (e EventDetails) GuestCount() int    { return e.guestCount }
