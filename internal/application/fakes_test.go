package application_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agroandes/trazabilidad/internal/application"
	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
)

// memStore is a mutex-guarded in-memory stand-in for the Postgres adapter.
// AllocateTx, ReallocateTx and CreateTx run the same check-then-write pattern
// under one lock, so the concurrency tests exercise the real gating logic.
type memStore struct {
	mu             sync.Mutex
	orders         map[int64]domain.Order
	pallets        map[int64]domain.Pallet
	dispatches     map[int64]domain.DispatchSummary
	events         []ports.OutboxEvent
	heights        map[int64]int
	nextOrderID    int64
	nextNumero     int64
	nextDispatchID int64
}

func newMemStore() *memStore {
	return &memStore{
		orders:     make(map[int64]domain.Order),
		pallets:    make(map[int64]domain.Pallet),
		dispatches: make(map[int64]domain.DispatchSummary),
		heights:    map[int64]int{1: 10, 2: 5, 3: 8},
	}
}

func (s *memStore) outboxEvents() []ports.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.OutboxEvent, len(s.events))
	copy(out, s.events)
	return out
}

type memOrders struct{ s *memStore }

func (m memOrders) Create(_ context.Context, params ports.OrderCreateParams) (domain.Order, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOrderID++
	o := domain.Order{
		OrderID:      s.nextOrderID,
		ClientID:     params.ClientID,
		ClientName:   fmt.Sprintf("client-%d", params.ClientID),
		CartonTypeID: params.CartonTypeID,
		CartonType:   fmt.Sprintf("carton-%d", params.CartonTypeID),
		HeightID:     params.HeightID,
		Height:       s.heights[params.HeightID],
		Week:         params.Week,
		Quantity:     params.Quantity,
		Status:       domain.OrderStatusPending,
		Quota:        params.Quota.Clone(),
		CreatedAt:    time.Now().UTC(),
	}
	s.orders[o.OrderID] = o
	return o, nil
}

func (m memOrders) GetByID(_ context.Context, orderID int64) (domain.Order, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	o, ok := m.s.orders[orderID]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	return o, nil
}

func (m memOrders) List(_ context.Context) ([]domain.Order, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]domain.Order, 0, len(m.s.orders))
	for _, o := range m.s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m memOrders) ListPending(_ context.Context) ([]domain.Order, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []domain.Order
	for _, o := range m.s.orders {
		if o.Status == domain.OrderStatusPending {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m memOrders) ListByWeek(_ context.Context, week int, status domain.OrderStatus) ([]domain.Order, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []domain.Order
	for _, o := range m.s.orders {
		if o.Week != week {
			continue
		}
		if status == "" {
			if o.Status == domain.OrderStatusEliminated {
				continue
			}
		} else if o.Status != status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m memOrders) ListAvailableWeeks(_ context.Context) ([]int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	seen := make(map[int]struct{})
	var out []int
	for _, o := range m.s.orders {
		if _, dup := seen[o.Week]; dup {
			continue
		}
		seen[o.Week] = struct{}{}
		out = append(out, o.Week)
	}
	return out, nil
}

func (m memOrders) Update(_ context.Context, orderID int64, params ports.OrderUpdateParams) (domain.Order, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok || o.Status == domain.OrderStatusEliminated {
		return domain.Order{}, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	o.ClientID = params.ClientID
	o.ClientName = fmt.Sprintf("client-%d", params.ClientID)
	o.CartonTypeID = params.CartonTypeID
	o.HeightID = params.HeightID
	o.Height = s.heights[params.HeightID]
	o.Week = params.Week
	o.Quantity = params.Quantity
	o.Quota = params.Quota.Clone()
	s.orders[orderID] = o
	return o, nil
}

func (m memOrders) SoftDelete(_ context.Context, orderID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	o, ok := m.s.orders[orderID]
	if !ok || o.Status == domain.OrderStatusEliminated {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	o.Status = domain.OrderStatusEliminated
	m.s.orders[orderID] = o
	return nil
}

type memPallets struct{ s *memStore }

func (m memPallets) sumSlotLocked(orderID int64, slot domain.Slot) int {
	total := 0
	for _, p := range m.s.pallets {
		if p.OrderID == orderID && p.Estado != domain.PalletStateEliminated {
			total += p.Quantities.Get(slot)
		}
	}
	return total
}

func (m memPallets) AllocateTx(_ context.Context, params ports.PalletAllocateParams) (int64, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[params.OrderID]
	if !ok || order.Status == domain.OrderStatusEliminated {
		return 0, fmt.Errorf("%w: order %d", domain.ErrNotFound, params.OrderID)
	}
	existing := m.sumSlotLocked(params.OrderID, params.Slot)
	if err := domain.CheckAllocation(params.Slot, existing, params.Value, order.Quota.Get(params.Slot)); err != nil {
		return 0, err
	}
	s.nextNumero++
	s.pallets[s.nextNumero] = domain.Pallet{
		NumeroPaleta: s.nextNumero,
		OrderID:      params.OrderID,
		Quantities:   params.Quantities.Clone(),
		Estado:       domain.PalletStateInStorage,
		ClientName:   order.ClientName,
		CartonType:   order.CartonType,
		Height:       order.Height,
		CreatedAt:    time.Now().UTC(),
	}
	return s.nextNumero, nil
}

func (m memPallets) ReallocateTx(_ context.Context, numero int64, params ports.PalletReallocateParams) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pallets[numero]
	if !ok || p.Estado == domain.PalletStateEliminated {
		return fmt.Errorf("%w: pallet %d", domain.ErrNotFound, numero)
	}
	if p.Estado == domain.PalletStateShipped {
		return fmt.Errorf("%w: pallet %d is not in storage", domain.ErrInvalidInput, numero)
	}
	order, ok := s.orders[p.OrderID]
	if !ok || order.Status == domain.OrderStatusEliminated {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, p.OrderID)
	}
	existing := m.sumSlotLocked(p.OrderID, params.Slot)
	oldValue := p.Quantities.Get(params.Slot)
	if err := domain.CheckReallocation(existing, oldValue, params.Value, order.Quota.Get(params.Slot)); err != nil {
		return err
	}
	p.Quantities = params.Quantities.Clone()
	s.pallets[numero] = p
	return nil
}

func (m memPallets) GetByNumero(_ context.Context, numero int64) (domain.Pallet, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	p, ok := m.s.pallets[numero]
	if !ok {
		return domain.Pallet{}, fmt.Errorf("%w: pallet %d", domain.ErrNotFound, numero)
	}
	return p, nil
}

func (m memPallets) List(_ context.Context) ([]domain.Pallet, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []domain.Pallet
	for _, p := range m.s.pallets {
		if p.Estado != domain.PalletStateEliminated {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memPallets) ListInStorageByOrder(_ context.Context, orderID int64) ([]domain.Pallet, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []domain.Pallet
	for _, p := range m.s.pallets {
		if p.OrderID == orderID && p.Estado == domain.PalletStateInStorage {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memPallets) SetState(_ context.Context, numero int64, state domain.PalletState) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	p, ok := m.s.pallets[numero]
	if !ok || p.Estado == domain.PalletStateEliminated {
		return fmt.Errorf("%w: pallet %d", domain.ErrNotFound, numero)
	}
	p.Estado = state
	m.s.pallets[numero] = p
	return nil
}

func (m memPallets) SumAllocated(_ context.Context, orderID int64, slot domain.Slot) (int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.sumSlotLocked(orderID, slot), nil
}

func (m memPallets) SumInStorage(_ context.Context, orderID int64) (domain.Quantities, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	totals := make(domain.Quantities, 12)
	for _, p := range m.s.pallets {
		if p.OrderID != orderID || p.Estado != domain.PalletStateInStorage {
			continue
		}
		for _, s := range domain.Slots() {
			totals[s] += p.Quantities.Get(s)
		}
	}
	return totals, nil
}

func (m memPallets) CameraBalance(_ context.Context) ([]domain.CameraBalanceRow, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byOrder := make(map[int64]*domain.CameraBalanceRow)
	for _, p := range m.s.pallets {
		if p.Estado != domain.PalletStateInStorage {
			continue
		}
		row, ok := byOrder[p.OrderID]
		if !ok {
			row = &domain.CameraBalanceRow{
				OrderID:    p.OrderID,
				ClientName: p.ClientName,
				ByCalibre:  make(map[int]int),
			}
			byOrder[p.OrderID] = row
		}
		for _, s := range domain.Slots() {
			row.ByCalibre[s.Calibre] += p.Quantities.Get(s)
		}
	}
	out := make([]domain.CameraBalanceRow, 0, len(byOrder))
	for _, row := range byOrder {
		out = append(out, *row)
	}
	return out, nil
}

func (m memPallets) ProducedTotals(_ context.Context) ([]domain.ProducedTotalRow, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byOrder := make(map[int64]*domain.ProducedTotalRow)
	for _, p := range m.s.pallets {
		if p.Estado != domain.PalletStateInStorage {
			continue
		}
		row, ok := byOrder[p.OrderID]
		if !ok {
			row = &domain.ProducedTotalRow{OrderID: p.OrderID, ClientName: p.ClientName}
			byOrder[p.OrderID] = row
		}
		row.TotalProduced += p.Quantities.Total()
	}
	out := make([]domain.ProducedTotalRow, 0, len(byOrder))
	for _, row := range byOrder {
		out = append(out, *row)
	}
	return out, nil
}

type memDispatches struct{ s *memStore }

func (m memDispatches) CreateTx(_ context.Context, params ports.DispatchCreateParams, event ports.OutboxEvent) (domain.Dispatch, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[params.OrderID]
	if !ok || order.Status == domain.OrderStatusEliminated {
		return domain.Dispatch{}, fmt.Errorf("%w: order %d", domain.ErrNotFound, params.OrderID)
	}
	if order.Status == domain.OrderStatusDispatched {
		return domain.Dispatch{}, fmt.Errorf("%w: order %d has already been dispatched", domain.ErrConflict, params.OrderID)
	}
	// Validate every pallet before touching anything, so a failure leaves the
	// store untouched like a rolled-back transaction.
	for _, numero := range params.PalletNumbers {
		p, ok := s.pallets[numero]
		if !ok {
			return domain.Dispatch{}, fmt.Errorf("%w: pallet %d", domain.ErrNotFound, numero)
		}
		if p.OrderID != params.OrderID {
			return domain.Dispatch{}, fmt.Errorf("%w: pallet %d does not belong to order %d", domain.ErrInvalidInput, numero, params.OrderID)
		}
		if p.Estado != domain.PalletStateInStorage {
			return domain.Dispatch{}, fmt.Errorf("%w: pallet %d is not in storage", domain.ErrInvalidInput, numero)
		}
	}
	for _, numero := range params.PalletNumbers {
		p := s.pallets[numero]
		p.Estado = domain.PalletStateShipped
		s.pallets[numero] = p
	}
	order.Status = domain.OrderStatusDispatched
	s.orders[params.OrderID] = order

	s.nextDispatchID++
	d := domain.Dispatch{
		DispatchID: s.nextDispatchID,
		OrderID:    params.OrderID,
		ClientName: order.ClientName,
		Meta:       params.Meta,
		CreatedAt:  time.Now().UTC(),
	}
	s.dispatches[d.DispatchID] = domain.DispatchSummary{
		DispatchID:   d.DispatchID,
		OrderID:      d.OrderID,
		ClientName:   d.ClientName,
		Meta:         d.Meta,
		CreatedAt:    d.CreatedAt,
		TotalPallets: len(params.PalletNumbers),
	}
	s.events = append(s.events, event)
	return d, nil
}

func (m memDispatches) GetByID(_ context.Context, dispatchID int64) (domain.Dispatch, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	d, ok := m.s.dispatches[dispatchID]
	if !ok {
		return domain.Dispatch{}, fmt.Errorf("%w: dispatch %d", domain.ErrNotFound, dispatchID)
	}
	return domain.Dispatch{
		DispatchID: d.DispatchID,
		OrderID:    d.OrderID,
		ClientName: d.ClientName,
		Meta:       d.Meta,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func (m memDispatches) List(_ context.Context) ([]domain.DispatchSummary, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]domain.DispatchSummary, 0, len(m.s.dispatches))
	for _, d := range m.s.dispatches {
		out = append(out, d)
	}
	return out, nil
}

func (m memDispatches) UpdateMeta(_ context.Context, dispatchID int64, meta domain.DispatchMeta) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	d, ok := m.s.dispatches[dispatchID]
	if !ok {
		return fmt.Errorf("%w: dispatch %d", domain.ErrNotFound, dispatchID)
	}
	d.Meta = meta
	m.s.dispatches[dispatchID] = d
	return nil
}

type memUsers struct {
	mu     sync.Mutex
	users  map[int64]domain.User
	nextID int64
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[int64]domain.User)}
}

func (m *memUsers) Create(_ context.Context, params ports.UserCreateParams) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == params.Username {
			return domain.User{}, fmt.Errorf("%w: username %q already exists", domain.ErrConflict, params.Username)
		}
	}
	m.nextID++
	now := time.Now().UTC()
	u := domain.User{
		UserID:       m.nextID,
		Username:     params.Username,
		FullName:     params.FullName,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[u.UserID] = u
	return u, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("%w: user %q", domain.ErrNotFound, username)
}

func (m *memUsers) GetByID(_ context.Context, userID int64) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	return u, nil
}

func (m *memUsers) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) Update(_ context.Context, userID int64, fullName string, role domain.Role, isActive bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	u.FullName = fullName
	u.Role = role
	u.IsActive = isActive
	u.UpdatedAt = time.Now().UTC()
	m.users[userID] = u
	return nil
}

func (m *memUsers) UpdatePassword(_ context.Context, userID int64, passwordHash string, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = updatedAt
	m.users[userID] = u
	return nil
}

type memReferences struct{ heights map[int64]int }

func (m memReferences) ListClients(context.Context) ([]ports.ReferenceItem, error) {
	return []ports.ReferenceItem{{ID: 1, Name: "client-1"}, {ID: 2, Name: "client-2"}}, nil
}

func (m memReferences) ListCartonTypes(context.Context) ([]ports.ReferenceItem, error) {
	return []ports.ReferenceItem{{ID: 1, Name: "MADERA"}, {ID: 2, Name: "CARTON"}}, nil
}

func (m memReferences) ListHeights(_ context.Context) ([]ports.HeightItem, error) {
	out := make([]ports.HeightItem, 0, len(m.heights))
	for id, q := range m.heights {
		out = append(out, ports.HeightItem{ID: id, Quantity: q})
	}
	return out, nil
}

func (m memReferences) GetHeight(_ context.Context, heightID int64) (ports.HeightItem, error) {
	q, ok := m.heights[heightID]
	if !ok {
		return ports.HeightItem{}, fmt.Errorf("%w: height %d", domain.ErrNotFound, heightID)
	}
	return ports.HeightItem{ID: heightID, Quantity: q}, nil
}

type memRevocations struct {
	mu      sync.Mutex
	revoked map[uuid.UUID]bool
}

func newMemRevocations() *memRevocations {
	return &memRevocations{revoked: make(map[uuid.UUID]bool)}
}

func (m *memRevocations) MarkRevoked(_ context.Context, sessionID uuid.UUID, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[sessionID] = true
	return nil
}

func (m *memRevocations) IsRevoked(_ context.Context, sessionID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[sessionID], nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type memSigner struct {
	mu     sync.Mutex
	tokens map[string]ports.AuthClaims
	next   int
}

func newMemSigner() *memSigner {
	return &memSigner{tokens: make(map[string]ports.AuthClaims)}
}

func (m *memSigner) Sign(claims ports.AuthClaims) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	token := fmt.Sprintf("token-%d", m.next)
	m.tokens[token] = claims
	return token, nil
}

func (m *memSigner) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	claims, ok := m.tokens[strings.TrimSpace(raw)]
	if !ok {
		return ports.AuthClaims{}, fmt.Errorf("unknown token")
	}
	return claims, nil
}

// fixture wires a Service onto the in-memory fakes the way bootstrap wires it
// onto the real adapters.
type fixture struct {
	svc   *application.Service
	store *memStore
	users *memUsers
}

func newFixture() *fixture {
	store := newMemStore()
	users := newMemUsers()
	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			SessionTTL:  12 * time.Hour,
			DefaultRole: "TRAZABILIDAD",
		},
		Orders:      memOrders{s: store},
		Pallets:     memPallets{s: store},
		Dispatches:  memDispatches{s: store},
		Users:       users,
		References:  memReferences{heights: store.heights},
		Revocations: newMemRevocations(),
		Hasher:      plainHasher{},
		TokenSigner: newMemSigner(),
	})
	return &fixture{svc: svc, store: store, users: users}
}

// mustCreateOrder seeds a height-10 order of 50 boxes: 20 GP calibre 5 plus
// 30 GP calibre 6.
func (f *fixture) mustCreateOrder(ctx context.Context) application.OrderResponse {
	order, err := f.svc.CreateOrder(ctx, application.CreateOrderRequest{
		ClientID:     1,
		CartonTypeID: 1,
		HeightID:     1,
		Week:         34,
		Quantity:     50,
		QuotaFields:  application.QuotaFields{GPCalibre5: 20, GPCalibre6: 30},
	})
	if err != nil {
		panic(fmt.Sprintf("seed order: %v", err))
	}
	return order
}

// mustAllocate creates one EN CAMARA pallet of value boxes in the given slot.
func (f *fixture) mustAllocate(ctx context.Context, orderID int64, fields application.PalletFields) application.PalletResponse {
	pallet, err := f.svc.CreatePallet(ctx, application.CreatePalletRequest{
		OrderID:      orderID,
		PalletFields: fields,
	})
	if err != nil {
		panic(fmt.Sprintf("seed pallet: %v", err))
	}
	return pallet
}
