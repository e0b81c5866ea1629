package domain

import "time"

const (
	QuotationStatusPending   = "pending"
	QuotationStatusContacted = "contacted"
	QuotationStatusCompleted = "completed"
)

// Quotation is a lead submitted by a prospective client. Status moves freely
// between the three values; there is no transition constraint.
type Quotation struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	EventDate string    `json:"eventDate" db:"event_date"`
	Location  string    `json:"location" db:"location"`
	Message   string    `json:"message" db:"message"`
	Service   string    `json:"service" db:"service"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateQuotationInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventDate string `json:"eventDate"`
	Location  string `json:"location"`
	Message   string `json:"message"`
	Service   string `json:"service"`
}

func ValidQuotationStatus(s string) bool {
	return s == QuotationStatusPending || s == QuotationStatusContacted || s == QuotationStatusCompleted
}
