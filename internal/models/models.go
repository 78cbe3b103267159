package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusApplied      JobStatus = "applied"
	JobStatusInterviewing JobStatus = "interviewing"
	JobStatusOffer        JobStatus = "offer"
	JobStatusRejected     JobStatus = "rejected"
	JobStatusPending      JobStatus = "pending"
	JobStatusAccepted     JobStatus = "accepted"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusApplied, JobStatusInterviewing, JobStatusOffer, JobStatusRejected, JobStatusPending, JobStatusAccepted:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// IsValid reports whether the status is one of the enumerated values.
func (js JobStatus) IsValid() bool {
	switch js {
	case JobStatusApplied, JobStatusInterviewing, JobStatusOffer, JobStatusRejected, JobStatusPending, JobStatusAccepted:
		return true
	}
	return false
}

// User represents a registered account.
type User struct {
	ID uuid.UUID `json:"id" db:"id"`

	Name string `json:"name" db:"name"`

	// Unique, stored lowercase.
	Email string `json:"email" db:"email"`

	// bcrypt hash, never serialized.
	PasswordHash string `json:"-" db:"password_hash"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Job represents one tracked job application, owned by exactly one user.
type Job struct {
	ID       uuid.UUID `json:"id" db:"id"`
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	Company  string    `json:"company" db:"company"`
	Position string    `json:"position" db:"position"`
	Status   JobStatus `json:"status" db:"status"`

	// Calendar date as YYYY-MM-DD, no timezone applied.
	ApplicationDate string `json:"application_date" db:"application_date"`

	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Interview is a scheduled interview for a Job. UserID always equals the
// owning job's UserID; it is copied from the job at scheduling time.
type Interview struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"user_id" db:"user_id"`
	JobID  uuid.UUID `json:"job_id" db:"job_id"`
	Title  string    `json:"title" db:"title"`

	// Wall-clock date and time of the scheduling user, stored unconverted.
	Date string `json:"date" db:"date"`
	Time string `json:"time" db:"time"`

	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	Location        string    `json:"location" db:"location"`
	AttendeeEmail   string    `json:"attendee_email" db:"attendee_email"`
	Description     string    `json:"description" db:"description"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
