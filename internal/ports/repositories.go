package ports

import (
	"context"
	"time"

	"github.com/agroandes/trazabilidad/internal/domain"
)

// OrderCreateParams captures a validated order spec ready to persist.
type OrderCreateParams struct {
	ClientID     int64
	CartonTypeID int64
	HeightID     int64
	Week         int
	Quantity     int
	Quota        domain.Quantities
}

// OrderUpdateParams is the full updatable field set; the shrink guard has
// already run against the in-storage allocation when this reaches the store.
type OrderUpdateParams struct {
	ClientID     int64
	CartonTypeID int64
	HeightID     int64
	Week         int
	Quantity     int
	Quota        domain.Quantities
}

// OrderRepository persists order records and their read projections.
type OrderRepository interface {
	Create(ctx context.Context, params OrderCreateParams) (domain.Order, error)
	GetByID(ctx context.Context, orderID int64) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListPending(ctx context.Context) ([]domain.Order, error)
	// ListByWeek filters by week and optionally by status; an empty status
	// means all ("TODOS" in the report UI).
	ListByWeek(ctx context.Context, week int, status domain.OrderStatus) ([]domain.Order, error)
	ListAvailableWeeks(ctx context.Context) ([]int, error)
	Update(ctx context.Context, orderID int64, params OrderUpdateParams) (domain.Order, error)
	SoftDelete(ctx context.Context, orderID int64) error
}

// PalletAllocateParams is a pallet-creation request whose slot shape has
// already passed domain.SelectSlot.
type PalletAllocateParams struct {
	OrderID    int64
	Quantities domain.Quantities
	Slot       domain.Slot
	Value      int
}

// PalletReallocateParams is the edit counterpart of PalletAllocateParams.
type PalletReallocateParams struct {
	Quantities domain.Quantities
	Slot       domain.Slot
	Value      int
}

// PalletRepository persists pallets and performs the quota-checked allocation
// writes. AllocateTx and ReallocateTx run check-and-write inside one store
// transaction holding a row lock on the owning order, so concurrent
// allocations against the same order serialize; different orders never
// contend. Both return domain.ErrInvalidInput-wrapped errors on quota
// violations and leave the store unchanged.
type PalletRepository interface {
	AllocateTx(ctx context.Context, params PalletAllocateParams) (int64, error)
	ReallocateTx(ctx context.Context, numero int64, params PalletReallocateParams) error
	// GetByNumero returns the pallet in any estado; a soft-deleted pallet
	// reads back as ELIMINADO. Only List filters eliminated records.
	GetByNumero(ctx context.Context, numero int64) (domain.Pallet, error)
	List(ctx context.Context) ([]domain.Pallet, error)
	ListInStorageByOrder(ctx context.Context, orderID int64) ([]domain.Pallet, error)
	SetState(ctx context.Context, numero int64, state domain.PalletState) error
	// SumAllocated totals one slot over an order's non-eliminated pallets —
	// the quantity the allocation checks measure against the quota.
	SumAllocated(ctx context.Context, orderID int64, slot domain.Slot) (int, error)
	// SumInStorage returns the full twelve-slot EN CAMARA map for one order.
	SumInStorage(ctx context.Context, orderID int64) (domain.Quantities, error)
	CameraBalance(ctx context.Context) ([]domain.CameraBalanceRow, error)
	ProducedTotals(ctx context.Context) ([]domain.ProducedTotalRow, error)
}

// DispatchCreateParams groups the atomic dispatch write.
type DispatchCreateParams struct {
	OrderID       int64
	PalletNumbers []int64
	Meta          domain.DispatchMeta
}

// DispatchRepository persists dispatches. CreateTx performs the whole shipment
// as one transaction: verify each pallet belongs to the order and is EN
// CAMARA, flip them to DESPACHADO, set the order DISPATCHED, insert the
// dispatch row and the outbox event. Any failure rolls the whole unit back.
type DispatchRepository interface {
	CreateTx(ctx context.Context, params DispatchCreateParams, event OutboxEvent) (domain.Dispatch, error)
	GetByID(ctx context.Context, dispatchID int64) (domain.Dispatch, error)
	List(ctx context.Context) ([]domain.DispatchSummary, error)
	UpdateMeta(ctx context.Context, dispatchID int64, meta domain.DispatchMeta) error
}

// UserCreateParams captures a new operator account.
type UserCreateParams struct {
	Username     string
	FullName     string
	PasswordHash string
	Role         domain.Role
}

// UserRepository manages operator accounts. Duplicate usernames surface as
// domain.ErrConflict.
type UserRepository interface {
	Create(ctx context.Context, params UserCreateParams) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, userID int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, userID int64, fullName string, role domain.Role, isActive bool) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string, updatedAt time.Time) error
}

// ReferenceItem is a lookup row feeding the order forms.
type ReferenceItem struct {
	ID   int64
	Name string
}

// HeightItem is a pack-height lookup row; Quantity is boxes per pack unit.
type HeightItem struct {
	ID       int64
	Quantity int
}

// ReferenceRepository reads the closed lookup tables (clients, carton types,
// pack heights).
type ReferenceRepository interface {
	ListClients(ctx context.Context) ([]ReferenceItem, error)
	ListCartonTypes(ctx context.Context) ([]ReferenceItem, error)
	ListHeights(ctx context.Context) ([]HeightItem, error)
	GetHeight(ctx context.Context, heightID int64) (HeightItem, error)
}
