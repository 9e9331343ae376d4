package application

import (
	"time"

	"github.com/agroandes/trazabilidad/internal/domain"
)

// QuotaFields mirrors the twelve order quota columns as they appear on the
// wire and in storage (gp_calibre5 .. cl_calibre10).
type QuotaFields struct {
	GPCalibre5  int `json:"gp_calibre5"`
	GPCalibre6  int `json:"gp_calibre6"`
	GPCalibre7  int `json:"gp_calibre7"`
	GPCalibre8  int `json:"gp_calibre8"`
	GPCalibre9  int `json:"gp_calibre9"`
	GPCalibre10 int `json:"gp_calibre10"`
	CLCalibre5  int `json:"cl_calibre5"`
	CLCalibre6  int `json:"cl_calibre6"`
	CLCalibre7  int `json:"cl_calibre7"`
	CLCalibre8  int `json:"cl_calibre8"`
	CLCalibre9  int `json:"cl_calibre9"`
	CLCalibre10 int `json:"cl_calibre10"`
}

// Quantities converts the wire fields to the domain slot map.
func (f QuotaFields) Quantities() domain.Quantities {
	q := make(domain.Quantities, 12)
	values := [12]int{
		f.GPCalibre5, f.GPCalibre6, f.GPCalibre7, f.GPCalibre8, f.GPCalibre9, f.GPCalibre10,
		f.CLCalibre5, f.CLCalibre6, f.CLCalibre7, f.CLCalibre8, f.CLCalibre9, f.CLCalibre10,
	}
	for i, s := range domain.Slots() {
		q[s] = values[i]
	}
	return q
}

// QuotaFieldsFrom renders a domain slot map back into wire fields.
func QuotaFieldsFrom(q domain.Quantities) QuotaFields {
	var f QuotaFields
	targets := [12]*int{
		&f.GPCalibre5, &f.GPCalibre6, &f.GPCalibre7, &f.GPCalibre8, &f.GPCalibre9, &f.GPCalibre10,
		&f.CLCalibre5, &f.CLCalibre6, &f.CLCalibre7, &f.CLCalibre8, &f.CLCalibre9, &f.CLCalibre10,
	}
	for i, s := range domain.Slots() {
		*targets[i] = q.Get(s)
	}
	return f
}

// PalletFields mirrors the twelve pallet quantity columns
// (cantidad_gp_5 .. cantidad_cl_10).
type PalletFields struct {
	CantidadGP5  int `json:"cantidad_gp_5"`
	CantidadGP6  int `json:"cantidad_gp_6"`
	CantidadGP7  int `json:"cantidad_gp_7"`
	CantidadGP8  int `json:"cantidad_gp_8"`
	CantidadGP9  int `json:"cantidad_gp_9"`
	CantidadGP10 int `json:"cantidad_gp_10"`
	CantidadCL5  int `json:"cantidad_cl_5"`
	CantidadCL6  int `json:"cantidad_cl_6"`
	CantidadCL7  int `json:"cantidad_cl_7"`
	CantidadCL8  int `json:"cantidad_cl_8"`
	CantidadCL9  int `json:"cantidad_cl_9"`
	CantidadCL10 int `json:"cantidad_cl_10"`
}

// Quantities converts the wire fields to the domain slot map.
func (f PalletFields) Quantities() domain.Quantities {
	q := make(domain.Quantities, 12)
	values := [12]int{
		f.CantidadGP5, f.CantidadGP6, f.CantidadGP7, f.CantidadGP8, f.CantidadGP9, f.CantidadGP10,
		f.CantidadCL5, f.CantidadCL6, f.CantidadCL7, f.CantidadCL8, f.CantidadCL9, f.CantidadCL10,
	}
	for i, s := range domain.Slots() {
		q[s] = values[i]
	}
	return q
}

// PalletFieldsFrom renders a domain slot map back into wire fields.
func PalletFieldsFrom(q domain.Quantities) PalletFields {
	var f PalletFields
	targets := [12]*int{
		&f.CantidadGP5, &f.CantidadGP6, &f.CantidadGP7, &f.CantidadGP8, &f.CantidadGP9, &f.CantidadGP10,
		&f.CantidadCL5, &f.CantidadCL6, &f.CantidadCL7, &f.CantidadCL8, &f.CantidadCL9, &f.CantidadCL10,
	}
	for i, s := range domain.Slots() {
		*targets[i] = q.Get(s)
	}
	return f
}

// CreateOrderRequest is the order-creation payload.
type CreateOrderRequest struct {
	ClientID     int64 `json:"client_id"`
	CartonTypeID int64 `json:"carton_type_id"`
	HeightID     int64 `json:"height_id"`
	Week         int   `json:"week"`
	Quantity     int   `json:"quantity"`
	QuotaFields
}

// UpdateOrderRequest carries the full updatable order field set.
type UpdateOrderRequest struct {
	ClientID     int64 `json:"client_id"`
	CartonTypeID int64 `json:"carton_type_id"`
	HeightID     int64 `json:"height_id"`
	Week         int   `json:"week"`
	Quantity     int   `json:"quantity"`
	QuotaFields
}

// OrderResponse is the read projection returned for orders.
type OrderResponse struct {
	OrderID      int64     `json:"order_id"`
	ClientID     int64     `json:"client_id"`
	ClientName   string    `json:"client_name"`
	CartonTypeID int64     `json:"carton_type_id"`
	CartonType   string    `json:"carton_type"`
	HeightID     int64     `json:"height_id"`
	Height       int       `json:"height"`
	Week         int       `json:"week"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	QuotaFields
}

// CreatePalletRequest allocates one pallet against an order.
type CreatePalletRequest struct {
	OrderID int64 `json:"order_id"`
	PalletFields
}

// UpdatePalletRequest edits an existing pallet's slot/quantity.
type UpdatePalletRequest struct {
	PalletFields
}

// PalletResponse is the read projection returned for pallets.
type PalletResponse struct {
	NumeroPaleta int64     `json:"numero_paleta"`
	OrderID      int64     `json:"order_id"`
	Estado       string    `json:"estado"`
	ClientName   string    `json:"client_name"`
	CartonType   string    `json:"carton_type"`
	Height       int       `json:"height"`
	CreatedAt    time.Time `json:"created_at"`
	PalletFields
}

// CreateDispatchRequest ships a set of in-storage pallets for one order.
type CreateDispatchRequest struct {
	OrderID         int64   `json:"order_id"`
	PalletNumbers   []int64 `json:"pallets"`
	Transportista   string  `json:"transportista"`
	ContainerNumber string  `json:"container_number"`
	PuertoDestino   string  `json:"puerto_destino"`
	PaisDestino     string  `json:"pais_destino"`
}

// UpdateDispatchRequest edits shipping metadata only.
type UpdateDispatchRequest struct {
	Transportista   string `json:"transportista"`
	ContainerNumber string `json:"container_number"`
	PuertoDestino   string `json:"puerto_destino"`
	PaisDestino     string `json:"pais_destino"`
}

// DispatchResponse is the dispatch read projection.
type DispatchResponse struct {
	DispatchID      int64     `json:"dispatch_id"`
	OrderID         int64     `json:"order_id"`
	ClientName      string    `json:"client_name"`
	Transportista   string    `json:"transportista"`
	ContainerNumber string    `json:"container_number"`
	PuertoDestino   string    `json:"puerto_destino"`
	PaisDestino     string    `json:"pais_destino"`
	CreatedAt       time.Time `json:"created_at"`
	TotalPallets    int       `json:"total_pallets"`
}

// CameraBalanceResponse is one chamber-report row.
type CameraBalanceResponse struct {
	OrderID    int64       `json:"order_id"`
	ClientName string      `json:"client_name"`
	ByCalibre  map[int]int `json:"by_calibre"`
}

// ShortfallResponse is one remaining-demand report row.
type ShortfallResponse struct {
	OrderID    int64  `json:"order_id"`
	ClientName string `json:"client_name"`
	QuotaFields
}

// ProducedTotalResponse is one produced-totals report row.
type ProducedTotalResponse struct {
	OrderID       int64  `json:"order_id"`
	ClientName    string `json:"client_name"`
	TotalProduced int    `json:"total_produced"`
}

// DashboardResponse is the landing-page summary.
type DashboardResponse struct {
	TotalOrders     int `json:"total_orders"`
	PalletsInCamara int `json:"pallets_en_camara"`
	TotalDispatches int `json:"total_dispatches"`
}

// LoginRequest authenticates an operator.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the session token and normalized role.
type LoginResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateUserRequest registers an operator account (ADMIN only).
type CreateUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest edits an operator account (ADMIN only).
type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

// UserResponse is the account read projection; the hash never leaves the store layer.
type UserResponse struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ReferenceDataResponse feeds the order form selectors.
type ReferenceDataResponse struct {
	Clients     []ReferenceItemResponse `json:"clients"`
	CartonTypes []ReferenceItemResponse `json:"carton_types"`
	Heights     []HeightItemResponse    `json:"heights"`
}

type ReferenceItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type HeightItemResponse struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}
