package models

// explicit join model so the similar-articles query can address the table directly
type ArticleTag struct {
	ID        int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	ArticleID int64 `json:"article_id" gorm:"index;not null"`
	TagID     int64 `json:"tag_id" gorm:"index;not null"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
