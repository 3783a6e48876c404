package models

import "time"

type Bookmark struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_article" json:"user_id"`
	ArticleID int64     `gorm:"not null;uniqueIndex:idx_user_article" json:"article_id"`
	AddedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"added_at"`

	// Associations
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Article *Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
