package postgres

import (
	"github.com/agroandes/trazabilidad/internal/domain"
)

func quotaFromOrderModel(m orderModel) domain.Quantities {
	q := make(domain.Quantities, 12)
	values := [12]int{
		m.GpCalibre5, m.GpCalibre6, m.GpCalibre7, m.GpCalibre8, m.GpCalibre9, m.GpCalibre10,
		m.ClCalibre5, m.ClCalibre6, m.ClCalibre7, m.ClCalibre8, m.ClCalibre9, m.ClCalibre10,
	}
	for i, s := range domain.Slots() {
		q[s] = values[i]
	}
	return q
}

func applyQuotaToOrderModel(m *orderModel, q domain.Quantities) {
	targets := [12]*int{
		&m.GpCalibre5, &m.GpCalibre6, &m.GpCalibre7, &m.GpCalibre8, &m.GpCalibre9, &m.GpCalibre10,
		&m.ClCalibre5, &m.ClCalibre6, &m.ClCalibre7, &m.ClCalibre8, &m.ClCalibre9, &m.ClCalibre10,
	}
	for i, s := range domain.Slots() {
		*targets[i] = q.Get(s)
	}
}

func quotaColumnValue(m orderModel, slot domain.Slot) int {
	return quotaFromOrderModel(m).Get(slot)
}

func quantitiesFromPalletModel(m palletModel) domain.Quantities {
	q := make(domain.Quantities, 12)
	values := [12]int{
		m.CantidadGp5, m.CantidadGp6, m.CantidadGp7, m.CantidadGp8, m.CantidadGp9, m.CantidadGp10,
		m.CantidadCl5, m.CantidadCl6, m.CantidadCl7, m.CantidadCl8, m.CantidadCl9, m.CantidadCl10,
	}
	for i, s := range domain.Slots() {
		q[s] = values[i]
	}
	return q
}

func applyQuantitiesToPalletModel(m *palletModel, q domain.Quantities) {
	targets := [12]*int{
		&m.CantidadGp5, &m.CantidadGp6, &m.CantidadGp7, &m.CantidadGp8, &m.CantidadGp9, &m.CantidadGp10,
		&m.CantidadCl5, &m.CantidadCl6, &m.CantidadCl7, &m.CantidadCl8, &m.CantidadCl9, &m.CantidadCl10,
	}
	for i, s := range domain.Slots() {
		*targets[i] = q.Get(s)
	}
}

// orderRow is the order read projection joined with display names.
type orderRow struct {
	orderModel
	ClientName     string `gorm:"column:client_name"`
	CartonTypeName string `gorm:"column:carton_type_name"`
	Height         int    `gorm:"column:height"`
}

func (r orderRow) toDomain() domain.Order {
	return domain.Order{
		OrderID:      r.OrderID,
		ClientID:     r.ClientID,
		ClientName:   r.ClientName,
		CartonTypeID: r.CartonTypeID,
		CartonType:   r.CartonTypeName,
		HeightID:     r.HeightID,
		Height:       r.Height,
		Week:         r.Week,
		Quantity:     r.Quantity,
		Status:       domain.OrderStatus(r.Status),
		Quota:        quotaFromOrderModel(r.orderModel),
		CreatedAt:    r.CreatedAt,
	}
}

// palletRow is the pallet read projection joined with order display data.
type palletRow struct {
	palletModel
	ClientName     string `gorm:"column:client_name"`
	CartonTypeName string `gorm:"column:carton_type_name"`
	Height         int    `gorm:"column:height"`
}

func (r palletRow) toDomain() domain.Pallet {
	return domain.Pallet{
		NumeroPaleta: r.NumeroPaleta,
		OrderID:      r.OrderID,
		Quantities:   quantitiesFromPalletModel(r.palletModel),
		Estado:       domain.PalletState(r.Estado),
		ClientName:   r.ClientName,
		CartonType:   r.CartonTypeName,
		Height:       r.Height,
		CreatedAt:    r.CreatedAt,
	}
}

func userToDomain(m userModel) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
