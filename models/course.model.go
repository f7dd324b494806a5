package models

import "gorm.io/gorm"

// Course represents a course offered on the site
type Course struct {
	gorm.Model
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration" gorm:"default:0"` // duration in weeks
	Price       int    `json:"price" gorm:"default:0"`    // integer currency units
	PaymentLink string `json:"payment_link"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
