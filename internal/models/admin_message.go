package models

// AdminMessage is a platform-wide broadcast. Plain append/delete collection,
// no lifecycle.
type AdminMessage struct {
	BaseModel
	Title    string           `gorm:"not null" json:"title"`
	Content  string           `gorm:"not null" json:"content"`
	Type     AdminMessageType `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	IsActive bool             `gorm:"default:true" json:"is_active"`
}
