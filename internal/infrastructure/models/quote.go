package models

import "time"

type Quote struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     uint       `gorm:"not null;index"`
	CreateTime time.Time  `gorm:"type:datetime"`
	BindTime   *time.Time `gorm:"type:datetime"`
	Bindable   bool
}

func (Quote) TableName() string { return "quotes" }
