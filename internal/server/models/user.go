// Package models holds the backend's persistent records.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64
	Phone        string
	Username     *string
	PasswordHash []byte
	Balance      decimal.Decimal
	AvatarURL    *string
	CreatedAt    time.Time
}
