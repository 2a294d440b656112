package service

import (
	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ManagerBadge is the payload encoded in a manager's badge QR code.
type ManagerBadge struct {
	ManagerID   uuid.UUID
	ManagerCode string
}

// QRCodeService defines the interface for manager badge QR generation and parsing
type QRCodeService interface {
	// GenerateManagerBadge renders the manager's badge as a PNG QR code
	GenerateManagerBadge(manager *entity.Manager) ([]byte, error)

	// ParseManagerBadge decodes badge data scanned from a QR code
	ParseManagerBadge(qrData string) (*ManagerBadge, error)
}
