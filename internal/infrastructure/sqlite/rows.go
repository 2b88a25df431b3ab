package sqlite

import "github.com/jhoicas/stock-ledger/internal/domain/entity"

type productRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	BoxCapacity int    `db:"box_capacity"`
	TotalStock  int64  `db:"total_stock"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func (r productRow) toEntity() (*entity.Product, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		BoxCapacity: r.BoxCapacity,
		TotalStock:  r.TotalStock,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}, nil
}

type movementRow struct {
	ID                string `db:"id"`
	ProductID         string `db:"product_id"`
	Kind              string `db:"kind"`
	BoxCount          int    `db:"box_count"`
	UnitCount         int    `db:"unit_count"`
	BoxCapacity       int    `db:"box_capacity"`
	ConvertedQuantity int64  `db:"converted_quantity"`
	Note              string `db:"note"`
	CreatedAt         string `db:"created_at"`
}

func (r movementRow) toEntity() (*entity.Movement, error) {
	ts, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &entity.Movement{
		ID:                r.ID,
		ProductID:         r.ProductID,
		Kind:              r.Kind,
		BoxCount:          r.BoxCount,
		UnitCount:         r.UnitCount,
		BoxCapacity:       r.BoxCapacity,
		ConvertedQuantity: r.ConvertedQuantity,
		Note:              r.Note,
		Timestamp:         ts,
	}, nil
}

type reportRow struct {
	MovementID        string `db:"movement_id"`
	ProductID         string `db:"product_id"`
	ProductName       string `db:"product_name"`
	Kind              string `db:"kind"`
	BoxCount          int    `db:"box_count"`
	UnitCount         int    `db:"unit_count"`
	ConvertedQuantity int64  `db:"converted_quantity"`
	CreatedAt         string `db:"created_at"`
}
