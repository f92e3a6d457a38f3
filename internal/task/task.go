// Package task defines the core domain types for agendapet.
package task

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// DeadlineUndefined is the sentinel deadline value meaning "no deadline set".
const DeadlineUndefined = "Sem prazo definido"

// Validation errors.
var (
	ErrEmptyClient        = errors.New("client cannot be empty")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidDeadline    = errors.New("deadline must be in DD/MM/YYYY or DD/MM/YYYY HH:mm format")
	ErrInvalidPaymentInfo = errors.New("payment status must be 'pago', 'pendente' or empty")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("appointment not found")
)

// PaymentStatus represents the payment state of an appointment.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "pago"
	PaymentPending PaymentStatus = "pendente"
)

// Valid returns true if the payment status is a known value or empty.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPaid, PaymentPending, "":
		return true
	default:
		return false
	}
}

// Task represents a pet-care appointment.
//
// The scheduled moment is carried by two redundant fields owned by the
// booking form: Deadline, free text in DD/MM/YYYY HH:mm format (or the
// DeadlineUndefined sentinel), and DeadlineTimestamp, milliseconds since
// epoch. When both are present the timestamp wins; see Parser.
type Task struct {
	ID                int64
	Client            string // tutor display name
	PetName           string
	Contact           string
	Type              string // service type, e.g. "banho", "tosa"
	Price             float64
	PaymentStatus     PaymentStatus
	Deadline          string
	DeadlineTimestamp *int64 // milliseconds since epoch, nil when unset
	CreatedAt         time.Time
}

// New creates a new Task with validation.
// deadline may be empty, the DeadlineUndefined sentinel, or a string in
// DD/MM/YYYY[ HH:mm] format.
func New(client, petName, contact, svcType, price, payment, deadline string) (*Task, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return nil, ErrEmptyClient
	}

	var p float64
	if price != "" {
		v, err := strconv.ParseFloat(price, 64)
		if err != nil || v < 0 {
			return nil, ErrNegativePrice
		}
		p = v
	}

	status := PaymentStatus(strings.ToLower(strings.TrimSpace(payment)))
	if !status.Valid() {
		return nil, ErrInvalidPaymentInfo
	}

	t := &Task{
		Client:        client,
		PetName:       strings.TrimSpace(petName),
		Contact:       strings.TrimSpace(contact),
		Type:          strings.TrimSpace(svcType),
		Price:         p,
		PaymentStatus: status,
		Deadline:      strings.TrimSpace(deadline),
		CreatedAt:     time.Now(),
	}

	if t.Deadline != "" && t.Deadline != DeadlineUndefined {
		when, ok := parseDeadlineString(t.Deadline)
		if !ok {
			return nil, ErrInvalidDeadline
		}
		ms := when.UnixMilli()
		t.DeadlineTimestamp = &ms
	}

	return t, nil
}

// Title returns the display title for calendar cells: the pet name when
// present, otherwise the client name.
func (t *Task) Title() string {
	if t.PetName != "" {
		return t.PetName
	}
	return t.Client
}

// HasDeadline returns true if the task carries any deadline information.
func (t *Task) HasDeadline() bool {
	if t.DeadlineTimestamp != nil {
		return true
	}
	return t.Deadline != "" && t.Deadline != DeadlineUndefined
}

// Matches reports whether the task matches a lowercased search term
// against the client or pet name. An empty term matches everything.
func (t *Task) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Client), term) ||
		strings.Contains(strings.ToLower(t.PetName), term)
}
