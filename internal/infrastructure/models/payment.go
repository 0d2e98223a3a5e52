package models

import "time"

type PaymentTransaction struct {
	ID          uint      `gorm:"primaryKey"`
	Time        time.Time `gorm:"type:datetime;not null"`
	PaymentType string    `gorm:"type:varchar(20)"`
	PolicyID    uint      `gorm:"not null;index"`
	Success     bool
}

func (PaymentTransaction) TableName() string { return "payment_transactions" }
