package postgres

import (
	"time"

	"github.com/google/uuid"
)

type clientModel struct {
	ClientID int64  `gorm:"column:client_id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name"`
}

func (clientModel) TableName() string { return "clients" }

type cartonTypeModel struct {
	CartonTypeID int64  `gorm:"column:carton_type_id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:name"`
}

func (cartonTypeModel) TableName() string { return "carton_types" }

type heightModel struct {
	HeightID int64 `gorm:"column:height_id;primaryKey;autoIncrement"`
	Quantity int   `gorm:"column:quantity"`
}

func (heightModel) TableName() string { return "heights" }

type orderModel struct {
	OrderID      int64     `gorm:"column:order_id;primaryKey;autoIncrement"`
	ClientID     int64     `gorm:"column:client_id"`
	CartonTypeID int64     `gorm:"column:carton_type_id"`
	HeightID     int64     `gorm:"column:height_id"`
	Week         int       `gorm:"column:week"`
	Quantity     int       `gorm:"column:quantity"`
	Status       string    `gorm:"column:status"`
	GpCalibre5   int       `gorm:"column:gp_calibre5"`
	GpCalibre6   int       `gorm:"column:gp_calibre6"`
	GpCalibre7   int       `gorm:"column:gp_calibre7"`
	GpCalibre8   int       `gorm:"column:gp_calibre8"`
	GpCalibre9   int       `gorm:"column:gp_calibre9"`
	GpCalibre10  int       `gorm:"column:gp_calibre10"`
	ClCalibre5   int       `gorm:"column:cl_calibre5"`
	ClCalibre6   int       `gorm:"column:cl_calibre6"`
	ClCalibre7   int       `gorm:"column:cl_calibre7"`
	ClCalibre8   int       `gorm:"column:cl_calibre8"`
	ClCalibre9   int       `gorm:"column:cl_calibre9"`
	ClCalibre10  int       `gorm:"column:cl_calibre10"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (orderModel) TableName() string { return "orders" }

type palletModel struct {
	NumeroPaleta  int64     `gorm:"column:numero_paleta;primaryKey;autoIncrement"`
	OrderID       int64     `gorm:"column:order_id"`
	CantidadGp5   int       `gorm:"column:cantidad_gp_5"`
	CantidadGp6   int       `gorm:"column:cantidad_gp_6"`
	CantidadGp7   int       `gorm:"column:cantidad_gp_7"`
	CantidadGp8   int       `gorm:"column:cantidad_gp_8"`
	CantidadGp9   int       `gorm:"column:cantidad_gp_9"`
	CantidadGp10  int       `gorm:"column:cantidad_gp_10"`
	CantidadCl5   int       `gorm:"column:cantidad_cl_5"`
	CantidadCl6   int       `gorm:"column:cantidad_cl_6"`
	CantidadCl7   int       `gorm:"column:cantidad_cl_7"`
	CantidadCl8   int       `gorm:"column:cantidad_cl_8"`
	CantidadCl9   int       `gorm:"column:cantidad_cl_9"`
	CantidadCl10  int       `gorm:"column:cantidad_cl_10"`
	Estado        string    `gorm:"column:estado"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (palletModel) TableName() string { return "pallets" }

type dispatchModel struct {
	DispatchID      int64     `gorm:"column:dispatch_id;primaryKey;autoIncrement"`
	OrderID         int64     `gorm:"column:order_id"`
	Transportista   string    `gorm:"column:transportista"`
	ContainerNumber string    `gorm:"column:container_number"`
	PuertoDestino   string    `gorm:"column:puerto_destino"`
	PaisDestino     string    `gorm:"column:pais_destino"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (dispatchModel) TableName() string { return "dispatches" }

type userModel struct {
	UserID       int64     `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username"`
	FullName     string    `gorm:"column:full_name"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type outboxModel struct {
	OutboxID     uuid.UUID  `gorm:"column:outbox_id;type:uuid;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      string     `gorm:"column:payload;type:jsonb"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
	RetryCount   int        `gorm:"column:retry_count"`
	LastError    *string    `gorm:"column:last_error"`
	LastErrorAt  *time.Time `gorm:"column:last_error_at"`
}

func (outboxModel) TableName() string { return "dispatch_outbox" }
