package models

type User struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"type:varchar(80);not null"`
	Email *string `gorm:"type:varchar(120)"`
}

func (User) TableName() string { return "users" }
