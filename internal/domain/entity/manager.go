package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// ManagerCodePrefix precedes the numeric part of every manager code.
	ManagerCodePrefix = "AWM"
	// ManagerCodeSeed is the number of the first manager code ever issued.
	ManagerCodeSeed int64 = 1001
)

// ManagerStatus is the employment state of a manager.
type ManagerStatus string

const (
	ManagerStatusActive    ManagerStatus = "active"
	ManagerStatusInactive  ManagerStatus = "inactive"
	ManagerStatusSuspended ManagerStatus = "suspended"
)

// IsValid checks if the ManagerStatus is a valid value.
func (s ManagerStatus) IsValid() bool {
	switch s {
	case ManagerStatusActive, ManagerStatusInactive, ManagerStatusSuspended:
		return true
	default:
		return false
	}
}

// Manager is a field manager responsible for exactly one area.
type Manager struct {
	ID             uuid.UUID     `json:"id"`
	ManagerCode    string        `json:"managerCode"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	PasswordHash   string        `json:"-"`
	Phone          string        `json:"phone"`
	AssignedAreaID uuid.UUID     `json:"assignedArea"`
	Status         ManagerStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// FullName joins first and last name.
func (m *Manager) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// FormatManagerCode renders n as a manager code, e.g. 1001 -> "AWM1001".
func FormatManagerCode(n int64) string {
	return ManagerCodePrefix + strconv.FormatInt(n, 10)
}

// ParseManagerCode returns the numeric part of a well-formed manager code.
// Codes with a missing prefix or a non-numeric suffix report false.
func ParseManagerCode(code string) (int64, bool) {
	suffix, found := strings.CutPrefix(code, ManagerCodePrefix)
	if !found || suffix == "" {
		return 0, false
	}

	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
