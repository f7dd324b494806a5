package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string     `json:"name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Mobile              string     `json:"mobile" gorm:"default:''"`
	Role                string     `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	Password            string     `json:"-" gorm:"not null"`
	LastLogin           time.Time  `json:"last_login" gorm:"default:NULL"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `json:"-" gorm:"default:false"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
}
