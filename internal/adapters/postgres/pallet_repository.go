package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type palletRepository struct {
	db *gorm.DB
}

const palletProjection = "pallets.*, clients.name AS client_name, carton_types.name AS carton_type_name, heights.quantity AS height"

func (r *palletRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("pallets").
		Select(palletProjection).
		Joins("JOIN orders ON orders.order_id = pallets.order_id").
		Joins("JOIN clients ON clients.client_id = orders.client_id").
		Joins("JOIN carton_types ON carton_types.carton_type_id = orders.carton_type_id").
		Joins("JOIN heights ON heights.height_id = orders.height_id")
}

// AllocateTx holds a FOR UPDATE lock on the owning order row for the whole
// check-and-insert, so two concurrent allocations against the same order
// serialize and the quota can never be oversubscribed.
func (r *palletRepository) AllocateTx(ctx context.Context, params ports.PalletAllocateParams) (int64, error) {
	var numero int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order orderModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", params.OrderID).
			Take(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if order.Status == string(domain.OrderStatusEliminated) {
			return domain.ErrNotFound
		}

		existing, err := sumSlotColumn(tx, params.OrderID, params.Slot)
		if err != nil {
			return err
		}
		if err := domain.CheckAllocation(params.Slot, existing, params.Value, quotaColumnValue(order, params.Slot)); err != nil {
			return err
		}

		rec := palletModel{
			OrderID:   params.OrderID,
			Estado:    string(domain.PalletStateInStorage),
			CreatedAt: time.Now().UTC(),
		}
		applyQuantitiesToPalletModel(&rec, params.Quantities)
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		numero = rec.NumeroPaleta
		return nil
	})
	if err != nil {
		return 0, err
	}
	return numero, nil
}

// ReallocateTx locks the order row first and the pallet row second, the same
// order every writer on these tables uses, so a concurrent edit and dispatch
// on one order cannot deadlock. The pallet is read without a lock up front
// only to learn its order, then re-read and re-checked under the lock. The
// pallet's own prior contribution to the target slot is subtracted before
// checking, so saving a pallet unchanged always succeeds.
func (r *palletRepository) ReallocateTx(ctx context.Context, numero int64, params ports.PalletReallocateParams) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner struct {
			OrderID int64 `gorm:"column:order_id"`
		}
		if err := tx.Table("pallets").
			Select("order_id").
			Where("numero_paleta = ?", numero).
			Take(&owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var order orderModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", owner.OrderID).
			Take(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var pallet palletModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("numero_paleta = ?", numero).
			Take(&pallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		switch pallet.Estado {
		case string(domain.PalletStateEliminated):
			return domain.ErrNotFound
		case string(domain.PalletStateShipped):
			return fmt.Errorf("%w: pallet %d is not in storage", domain.ErrInvalidInput, numero)
		}

		existing, err := sumSlotColumn(tx, pallet.OrderID, params.Slot)
		if err != nil {
			return err
		}
		oldValue := quantitiesFromPalletModel(pallet).Get(params.Slot)
		if err := domain.CheckReallocation(existing, oldValue, params.Value, quotaColumnValue(order, params.Slot)); err != nil {
			return err
		}

		updates := make(map[string]any, 12)
		for _, s := range domain.Slots() {
			updates[s.PalletField()] = params.Quantities.Get(s)
		}
		return tx.Model(&palletModel{}).
			Where("numero_paleta = ?", numero).
			Updates(updates).Error
	})
}

func (r *palletRepository) GetByNumero(ctx context.Context, numero int64) (domain.Pallet, error) {
	var row palletRow
	err := r.baseQuery(ctx).Where("pallets.numero_paleta = ?", numero).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Pallet{}, domain.ErrNotFound
		}
		return domain.Pallet{}, err
	}
	return row.toDomain(), nil
}

func (r *palletRepository) List(ctx context.Context) ([]domain.Pallet, error) {
	var rows []palletRow
	err := r.baseQuery(ctx).
		Where("pallets.estado <> ?", string(domain.PalletStateEliminated)).
		Order("pallets.numero_paleta ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return palletsToDomain(rows), nil
}

func (r *palletRepository) ListInStorageByOrder(ctx context.Context, orderID int64) ([]domain.Pallet, error) {
	var rows []palletRow
	err := r.baseQuery(ctx).
		Where("pallets.order_id = ? AND pallets.estado = ?", orderID, string(domain.PalletStateInStorage)).
		Order("pallets.numero_paleta ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return palletsToDomain(rows), nil
}

func (r *palletRepository) SetState(ctx context.Context, numero int64, state domain.PalletState) error {
	res := r.db.WithContext(ctx).
		Model(&palletModel{}).
		Where("numero_paleta = ? AND estado <> ?", numero, string(domain.PalletStateEliminated)).
		Update("estado", string(state))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *palletRepository) SumAllocated(ctx context.Context, orderID int64, slot domain.Slot) (int, error) {
	return sumSlotColumn(r.db.WithContext(ctx), orderID, slot)
}

func (r *palletRepository) SumInStorage(ctx context.Context, orderID int64) (domain.Quantities, error) {
	cols := make([]string, 0, 12)
	for _, s := range domain.Slots() {
		c := s.PalletField()
		cols = append(cols, fmt.Sprintf("COALESCE(SUM(%s), 0) AS %s", c, c))
	}
	var totals palletModel
	err := r.db.WithContext(ctx).
		Raw("SELECT "+strings.Join(cols, ", ")+" FROM pallets WHERE order_id = ? AND estado = ?",
			orderID, string(domain.PalletStateInStorage)).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return quantitiesFromPalletModel(totals), nil
}

type cameraBalanceRow struct {
	OrderID    int64  `gorm:"column:order_id"`
	ClientName string `gorm:"column:client_name"`
	Calibre5   int    `gorm:"column:calibre5"`
	Calibre6   int    `gorm:"column:calibre6"`
	Calibre7   int    `gorm:"column:calibre7"`
	Calibre8   int    `gorm:"column:calibre8"`
	Calibre9   int    `gorm:"column:calibre9"`
	Calibre10  int    `gorm:"column:calibre10"`
}

func (r *palletRepository) CameraBalance(ctx context.Context) ([]domain.CameraBalanceRow, error) {
	cols := make([]string, 0, 6)
	for c := domain.MinCalibre; c <= domain.MaxCalibre; c++ {
		cols = append(cols, fmt.Sprintf("SUM(pallets.cantidad_gp_%d + pallets.cantidad_cl_%d) AS calibre%d", c, c, c))
	}
	query := "SELECT pallets.order_id, clients.name AS client_name, " + strings.Join(cols, ", ") + `
		FROM pallets
		JOIN orders ON orders.order_id = pallets.order_id
		JOIN clients ON clients.client_id = orders.client_id
		WHERE pallets.estado = ?
		GROUP BY pallets.order_id, clients.name
		ORDER BY pallets.order_id ASC`

	var rows []cameraBalanceRow
	if err := r.db.WithContext(ctx).Raw(query, string(domain.PalletStateInStorage)).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.CameraBalanceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CameraBalanceRow{
			OrderID:    row.OrderID,
			ClientName: row.ClientName,
			ByCalibre: map[int]int{
				5:  row.Calibre5,
				6:  row.Calibre6,
				7:  row.Calibre7,
				8:  row.Calibre8,
				9:  row.Calibre9,
				10: row.Calibre10,
			},
		})
	}
	return out, nil
}

func (r *palletRepository) ProducedTotals(ctx context.Context) ([]domain.ProducedTotalRow, error) {
	cols := make([]string, 0, 12)
	for _, s := range domain.Slots() {
		cols = append(cols, "pallets."+s.PalletField())
	}
	query := "SELECT pallets.order_id, clients.name AS client_name, SUM(" + strings.Join(cols, " + ") + `) AS total_produced
		FROM pallets
		JOIN orders ON orders.order_id = pallets.order_id
		JOIN clients ON clients.client_id = orders.client_id
		WHERE pallets.estado = ?
		GROUP BY pallets.order_id, clients.name
		ORDER BY pallets.order_id ASC`

	var rows []struct {
		OrderID       int64  `gorm:"column:order_id"`
		ClientName    string `gorm:"column:client_name"`
		TotalProduced int    `gorm:"column:total_produced"`
	}
	if err := r.db.WithContext(ctx).Raw(query, string(domain.PalletStateInStorage)).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ProducedTotalRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProducedTotalRow(row))
	}
	return out, nil
}

// sumSlotColumn totals one slot column over every non-eliminated pallet of an
// order. Column names come from the closed Slots set, never from input.
func sumSlotColumn(db *gorm.DB, orderID int64, slot domain.Slot) (int, error) {
	var total int
	err := db.
		Raw("SELECT COALESCE(SUM("+slot.PalletField()+"), 0) FROM pallets WHERE order_id = ? AND estado <> ?",
			orderID, string(domain.PalletStateEliminated)).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func palletsToDomain(rows []palletRow) []domain.Pallet {
	out := make([]domain.Pallet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
