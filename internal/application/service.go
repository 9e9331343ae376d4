package application

import (
	"time"

	"github.com/agroandes/trazabilidad/internal/ports"
)

// Service implements the packing-workflow use cases: order ledger, pallet
// allocation, dispatching, reporting and account management. All store access
// goes through injected ports; the service itself is stateless.
type Service struct {
	cfg         Config
	orders      ports.OrderRepository
	pallets     ports.PalletRepository
	dispatches  ports.DispatchRepository
	users       ports.UserRepository
	references  ports.ReferenceRepository
	revocations ports.SessionRevocationStore
	hasher      ports.PasswordHasher
	tokenSigner ports.TokenSigner
	nowFn       func() time.Time
}

// Config carries the application-level tunables.
type Config struct {
	SessionTTL  time.Duration
	DefaultRole string
}

// Dependencies groups the injected collaborators for NewService.
type Dependencies struct {
	Config      Config
	Orders      ports.OrderRepository
	Pallets     ports.PalletRepository
	Dispatches  ports.DispatchRepository
	Users       ports.UserRepository
	References  ports.ReferenceRepository
	Revocations ports.SessionRevocationStore
	Hasher      ports.PasswordHasher
	TokenSigner ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:         deps.Config,
		orders:      deps.Orders,
		pallets:     deps.Pallets,
		dispatches:  deps.Dispatches,
		users:       deps.Users,
		references:  deps.References,
		revocations: deps.Revocations,
		hasher:      deps.Hasher,
		tokenSigner: deps.TokenSigner,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}
