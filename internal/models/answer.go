package models

type Answer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Text    string `gorm:"type:text;not null" json:"text"`
	Correct bool   `gorm:"not null;default:false" json:"correct"`
	QID     uint   `gorm:"column:q_id;not null;index" json:"q_id"`
}
