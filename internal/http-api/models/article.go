package models

import "time"

type Article struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"not null"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	FullDescription string    `json:"full_description" gorm:"type:text;not null"`
	AuthorID        string    `json:"author_id" gorm:"type:uuid;not null;index"`
	CategoryID      int64     `json:"category_id" gorm:"not null;index"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Author   User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT;"`
	Tags     []Tag    `json:"tags,omitempty" gorm:"many2many:article_tags;constraint:OnDelete:CASCADE;"`
}

// AbsoluteURL is the canonical page for the article; comment submissions
// that arrive as a full page post redirect here.
func (a *Article) AbsoluteURL() string {
	return "/articles/" + a.Slug
}

func (Article) TableName() string {
	return "articles"
}
