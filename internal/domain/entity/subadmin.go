package entity

import (
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

// SubAdmin is a scoped administrator account. Department and the capability
// set together decide which admin sections the account may use.
type SubAdmin struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Department  enum.Department `json:"department"`
	Permissions []string        `json:"permissions"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}
