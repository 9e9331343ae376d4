package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

const orderProjection = "orders.*, clients.name AS client_name, carton_types.name AS carton_type_name, heights.quantity AS height"

func (r *orderRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders").
		Select(orderProjection).
		Joins("JOIN clients ON clients.client_id = orders.client_id").
		Joins("JOIN carton_types ON carton_types.carton_type_id = orders.carton_type_id").
		Joins("JOIN heights ON heights.height_id = orders.height_id")
}

func (r *orderRepository) Create(ctx context.Context, params ports.OrderCreateParams) (domain.Order, error) {
	rec := orderModel{
		ClientID:     params.ClientID,
		CartonTypeID: params.CartonTypeID,
		HeightID:     params.HeightID,
		Week:         params.Week,
		Quantity:     params.Quantity,
		Status:       string(domain.OrderStatusPending),
		CreatedAt:    time.Now().UTC(),
	}
	applyQuotaToOrderModel(&rec, params.Quota)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Order{}, err
	}
	return r.GetByID(ctx, rec.OrderID)
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (domain.Order, error) {
	var row orderRow
	err := r.baseQuery(ctx).Where("orders.order_id = ?", orderID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, err
	}
	return row.toDomain(), nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	var rows []orderRow
	err := r.baseQuery(ctx).
		Where("orders.status <> ?", string(domain.OrderStatusEliminated)).
		Order("orders.order_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return ordersToDomain(rows), nil
}

func (r *orderRepository) ListPending(ctx context.Context) ([]domain.Order, error) {
	var rows []orderRow
	err := r.baseQuery(ctx).
		Where("orders.status = ?", string(domain.OrderStatusPending)).
		Order("orders.order_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return ordersToDomain(rows), nil
}

func (r *orderRepository) ListByWeek(ctx context.Context, week int, status domain.OrderStatus) ([]domain.Order, error) {
	q := r.baseQuery(ctx).Where("orders.week = ?", week)
	if status == "" {
		q = q.Where("orders.status <> ?", string(domain.OrderStatusEliminated))
	} else {
		q = q.Where("orders.status = ?", string(status))
	}
	var rows []orderRow
	if err := q.Order("orders.order_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return ordersToDomain(rows), nil
}

func (r *orderRepository) ListAvailableWeeks(ctx context.Context) ([]int, error) {
	var weeks []int
	err := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Distinct("week").
		Where("status <> ?", string(domain.OrderStatusEliminated)).
		Order("week ASC").
		Pluck("week", &weeks).Error
	if err != nil {
		return nil, err
	}
	return weeks, nil
}

func (r *orderRepository) Update(ctx context.Context, orderID int64, params ports.OrderUpdateParams) (domain.Order, error) {
	updates := map[string]any{
		"client_id":      params.ClientID,
		"carton_type_id": params.CartonTypeID,
		"height_id":      params.HeightID,
		"week":           params.Week,
		"quantity":       params.Quantity,
	}
	for _, s := range domain.Slots() {
		updates[s.QuotaField()] = params.Quota.Get(s)
	}
	res := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("order_id = ? AND status <> ?", orderID, string(domain.OrderStatusEliminated)).
		Updates(updates)
	if res.Error != nil {
		return domain.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Order{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, orderID)
}

func (r *orderRepository) SoftDelete(ctx context.Context, orderID int64) error {
	res := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("order_id = ? AND status <> ?", orderID, string(domain.OrderStatusEliminated)).
		Update("status", string(domain.OrderStatusEliminated))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func ordersToDomain(rows []orderRow) []domain.Order {
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
