package models

type Policy struct {
	ID      uint `gorm:"primaryKey"`
	UserID  uint `gorm:"not null;index"`
	QuoteID uint `gorm:"not null;index"`
}

func (Policy) TableName() string { return "policies" }
