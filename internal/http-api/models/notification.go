package models

import "time"

type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"not null" json:"type"` // NEW_COMMENT, NEW_REPLY
	ArticleID int64     `json:"article_id"`
	CommentID int64     `json:"comment_id"`
	Actor     string    `json:"actor"` // display name of whoever triggered it
	Message   string    `json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Associations
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Article *Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

const (
	NotificationTypeComment = "NEW_COMMENT"
	NotificationTypeReply   = "NEW_REPLY"
)

func (Notification) TableName() string {
	return "notifications"
}
