package models

import "time"

// Comment is append-only. AuthorID is set for authenticated submitters;
// Name and Email are populated instead for anonymous ones, never both.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `json:"article_id" gorm:"not null;index"`
	ParentID  *int64    `json:"parent_id" gorm:"index"` // nil for root comments
	AuthorID  *string   `json:"author_id,omitempty" gorm:"type:uuid;index"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Article Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE;"`
	Parent  *Comment `json:"parent,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
	Author  *User    `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

// IsChild reports whether the comment is a reply rather than a thread root.
func (c *Comment) IsChild() bool {
	return c.ParentID != nil
}

func (Comment) TableName() string {
	return "comments"
}
