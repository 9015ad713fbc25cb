package models

import "time"

// InterestStatus represents the status of an interest (proposal).
type InterestStatus string

const (
	// InterestStatusSent indicates an interest awaiting a response.
	InterestStatusSent InterestStatus = "sent"
	// InterestStatusAccepted indicates an accepted interest.
	InterestStatusAccepted InterestStatus = "accepted"
	// InterestStatusRejected indicates a rejected interest.
	InterestStatusRejected InterestStatus = "rejected"
)

// Interest is a directed proposal from one user to another. The
// (sender, receiver) pair is unique at the schema level so a concurrent
// double-submit cannot create duplicates.
type Interest struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SenderID   uint           `gorm:"not null;uniqueIndex:idx_interest_pair" json:"sender_id"`
	ReceiverID uint           `gorm:"not null;uniqueIndex:idx_interest_pair" json:"receiver_id"`
	Status     InterestStatus `gorm:"type:varchar(20);default:'sent';index:idx_interests_status" json:"status"`
	Message    string         `gorm:"type:text" json:"message"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Relationships
	Sender   User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// TableName specifies the table name for GORM
func (Interest) TableName() string {
	return "interests"
}
