package domain

import "time"

// ReservationType billing granularity of a reservation
type ReservationType string

const (
	ReservationTypeHourly  ReservationType = "hourly"
	ReservationTypeDaily   ReservationType = "daily"
	ReservationTypeWeekly  ReservationType = "weekly"
	ReservationTypeMonthly ReservationType = "monthly"
)

// ReservationTypes all known reservation types
var ReservationTypes = []ReservationType{
	ReservationTypeHourly,
	ReservationTypeDaily,
	ReservationTypeWeekly,
	ReservationTypeMonthly,
}

// IsValid returns true for a known reservation type
func (t ReservationType) IsValid() bool {
	for _, known := range ReservationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ReservationStatus lifecycle status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ActiveReservationStatuses statuses that hold capacity
var ActiveReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
}

// IsValid returns true for a known reservation status
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// statusTransitions allowed reservation status transitions
var statusTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
}

// CanTransitionTo returns true if the reservation can move to the next status
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DepositStatus status of the card authorization hold (empreinte bancaire)
type DepositStatus string

const (
	DepositNotRequired DepositStatus = "not_required"
	DepositPending     DepositStatus = "pending"
	DepositAuthorized  DepositStatus = "authorized"
	DepositCaptured    DepositStatus = "captured"
	DepositReleased    DepositStatus = "released"
	DepositFailed      DepositStatus = "failed"
)

// depositTransitions allowed deposit status transitions
var depositTransitions = map[DepositStatus][]DepositStatus{
	DepositPending:    {DepositAuthorized, DepositFailed},
	DepositAuthorized: {DepositCaptured, DepositReleased},
}

// IsValid returns true for a known deposit status
func (s DepositStatus) IsValid() bool {
	switch s {
	case DepositNotRequired, DepositPending, DepositAuthorized, DepositCaptured, DepositReleased, DepositFailed:
		return true
	}
	return false
}

// CanTransitionTo returns true if the deposit can move to the next status
func (s DepositStatus) CanTransitionTo(next DepositStatus) bool {
	for _, allowed := range depositTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Customer contact data of the person who books
type Customer struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
}

// Amounts money amounts of a reservation in cents
type Amounts struct {
	SubtotalCents int64 // HT before discount
	DiscountCents int64
	NetCents      int64 // HT after discount
	VATCents      int64
	TotalCents    int64 // TTC
}

// Reservation a booking of a coworking space
type Reservation struct {
	ID             int64
	Reference      string // public UUID reference sent to the customer
	SpaceID        int64
	Type           ReservationType
	StartAt        time.Time
	EndAt          time.Time // exclusive
	People         int
	Customer       Customer
	Amounts        Amounts
	VATRatePercent float64
	PromoCode      *string
	Status         ReservationStatus
	DepositStatus  DepositStatus
	DepositCents   int64
	DepositHoldRef *string
	Notes          *string
	CancelledAt    *time.Time
	CancelReason   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive returns true if the reservation holds capacity
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.IsActive()
}

// Overlaps returns true if the reservation intersects [start, end).
// Touching intervals do not overlap
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartAt.Before(end) && r.EndAt.After(start)
}

// ReservationsFilter filter for the admin reservation list
type ReservationsFilter struct {
	SpaceID *int64
	Status  *ReservationStatus
	From    *time.Time // reservations ending after From
	To      *time.Time // reservations starting before To
}
