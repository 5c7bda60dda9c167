package models

type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:1024;not null" json:"title"`
	Slug  string `gorm:"size:1024;not null;uniqueIndex" json:"slug"`
}
