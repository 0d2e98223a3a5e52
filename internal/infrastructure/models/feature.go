package models

import "time"

type Feature struct {
	ID           uint      `gorm:"primaryKey"`
	FeatureType  string    `gorm:"type:varchar(50);not null;index:idx_feature_type_entity"`
	EntityID     string    `gorm:"type:varchar(50);not null;index:idx_feature_type_entity"`
	FeatureValue *string   `gorm:"type:text"`
	ComputedAt   time.Time `gorm:"type:datetime;not null"`
}

func (Feature) TableName() string { return "features" }

type FeatureMetadata struct {
	ID          uint      `gorm:"primaryKey"`
	FeatureType string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	EntityType  string    `gorm:"type:varchar(50);not null"`
	DataType    string    `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time `gorm:"type:datetime;not null"`
}

func (FeatureMetadata) TableName() string { return "feature_metadata" }
