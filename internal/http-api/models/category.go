package models

type Category struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
}

func (Category) TableName() string {
	return "categories"
}
