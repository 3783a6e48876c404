package models

import "time"

// Rating is one vote slot per (article, ip) pair. UserID is recorded when the
// voter happened to be authenticated but the slot stays keyed by IP.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `json:"article_id" gorm:"not null;uniqueIndex:idx_article_ip"`
	IPAddress string    `json:"ip_address" gorm:"size:45;not null;uniqueIndex:idx_article_ip"`
	Value     int       `json:"value" gorm:"not null;check:value IN (-1, 1)"`
	UserID    *string   `json:"user_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Article Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE;"`
	User    *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}

func (Rating) TableName() string {
	return "ratings"
}
