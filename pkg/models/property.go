package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is a named capability assigned to a user.
type Role string

const (
	RoleResident   Role = "resident"
	RoleUnionHead  Role = "union_head"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

// User is the minimal identity the billing core needs.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRole links a user to a role.
type UserRole struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex:idx_user_role"`
	Role   Role `gorm:"size:30;not null;uniqueIndex:idx_user_role"`
}

// Building is managed by a union head and owns units.
type Building struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Address     string    `gorm:"type:text" json:"address"`
	UnionHeadID *uint     `gorm:"index" json:"union_head_id,omitempty"`
	UnionHead   *User     `gorm:"foreignKey:UnionHeadID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnitStatus is the occupancy state of a unit.
type UnitStatus string

const (
	UnitAvailable UnitStatus = "available"
	UnitOccupied  UnitStatus = "occupied"
)

// Unit is an apartment inside a building.
type Unit struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	BuildingID      uint       `gorm:"not null;index" json:"building_id"`
	Building        *Building  `gorm:"foreignKey:BuildingID" json:"-"`
	FloorNumber     int        `json:"floor_number"`
	ApartmentNumber string     `gorm:"size:10" json:"apartment_number"`
	Area            *float64   `json:"area,omitempty"`
	RoomsCount      *int       `json:"rooms_count,omitempty"`
	Status          UnitStatus `gorm:"size:20;not null" json:"status"`
}

// ResidentType distinguishes owners from tenants.
type ResidentType string

const (
	ResidentOwner  ResidentType = "owner"
	ResidentTenant ResidentType = "tenant"
)

// ResidentStatus is the lifecycle state of a resident profile.
type ResidentStatus string

const (
	ResidentPending  ResidentStatus = "pending"
	ResidentApproved ResidentStatus = "approved"
	// ResidentAccepted is the older spelling of approved still present in data.
	ResidentAccepted ResidentStatus = "accepted"
	ResidentRejected ResidentStatus = "rejected"
	ResidentInactive ResidentStatus = "inactive"
)

// IsApproved reports whether s is either spelling of approved.
func (s ResidentStatus) IsApproved() bool {
	return s == ResidentApproved || s == ResidentAccepted
}

// ResidentProfile links a user to a unit as owner or tenant.
type ResidentProfile struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	UserID          uint                `gorm:"not null;index" json:"user_id"`
	User            *User               `gorm:"foreignKey:UserID" json:"-"`
	UnitID          *uint               `gorm:"index" json:"unit_id,omitempty"`
	Unit            *Unit               `gorm:"foreignKey:UnitID" json:"-"`
	ResidentType    ResidentType        `gorm:"size:20;not null;index" json:"resident_type"`
	OwnerID         *uint               `gorm:"index" json:"owner_id,omitempty"` // landlord of a tenant
	RentalStartDate *time.Time          `gorm:"type:date" json:"rental_start_date,omitempty"`
	RentalEndDate   *time.Time          `gorm:"type:date;index" json:"rental_end_date,omitempty"`
	RentalValue     decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"rental_value"`
	Status          ResidentStatus      `gorm:"size:20;not null;index" json:"status"`
	IsPresent       bool                `json:"is_present"`
	RejectedAt      *time.Time          `json:"rejected_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// BuildingID returns the building of the profile's unit, or zero when the
// unit was not loaded or is missing.
func (r *ResidentProfile) BuildingID() uint {
	if r.Unit == nil {
		return 0
	}
	return r.Unit.BuildingID
}
