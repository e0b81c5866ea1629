package domain

import "time"

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review is a client testimonial. Submissions always start pending; only
// approved reviews are visible on the public listing.
type Review struct {
	ID         int64     `json:"id" db:"id"`
	ClientName string    `json:"client_name" db:"client_name"`
	Email      string    `json:"email" db:"email"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type CreateReviewInput struct {
	ClientName string `json:"client_name"`
	Email      string `json:"email"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func ValidReviewStatus(s string) bool {
	return s == ReviewStatusPending || s == ReviewStatusApproved || s == ReviewStatusRejected
}
