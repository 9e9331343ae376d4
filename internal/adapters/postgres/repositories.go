package postgres

import (
	"errors"

	"github.com/agroandes/trazabilidad/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Orders     ports.OrderRepository
	Pallets    ports.PalletRepository
	Dispatches ports.DispatchRepository
	Users      ports.UserRepository
	References ports.ReferenceRepository
	Outbox     ports.OutboxRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Orders:     &orderRepository{db: db},
		Pallets:    &palletRepository{db: db},
		Dispatches: &dispatchRepository{db: db},
		Users:      &userRepository{db: db},
		References: &referenceRepository{db: db},
		Outbox:     &outboxRepository{db: db},
	}
}

// isUniqueViolation relies on gorm's TranslateError being enabled on the
// connection.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
