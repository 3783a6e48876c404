package models

import "time"

type Feedback struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Subject   string    `json:"subject" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	IPAddress string    `json:"ip_address" gorm:"size:45"`
	UserID    *string   `json:"user_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}

func (Feedback) TableName() string {
	return "feedback"
}
