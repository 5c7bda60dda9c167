package models

type Question struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Text    string   `gorm:"type:text;not null" json:"text"`
	CatID   uint     `gorm:"not null;index" json:"cat_id"`
	Answers []Answer `gorm:"foreignKey:QID" json:"answers"`
}
