package repository

import (
	"context"
	"database/sql"
)

// RoomType is one entry of the room type catalog (classroom, lab, hall...).
type RoomType struct {
	ID   uint64 `json:"id"`   // room_types.id
	Name string `json:"name"` // display name
}

// RoomStatus is one entry of the room status catalog. Code is the value
// stored on rooms.status_code, Label a display string.
type RoomStatus struct {
	Code  string `json:"code"`  // room_statuses.code
	Label string `json:"label"` // room_statuses.label
}

// CatalogRepo reads the small lookup catalogs consumed by room views.
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo constructs a CatalogRepo with the given DB handle.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// RoomTypes returns the full room type catalog ordered by id.
func (r *CatalogRepo) RoomTypes(ctx context.Context) ([]RoomType, error) {
	const q = `SELECT id, name FROM room_types ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RoomType
	for rows.Next() {
		var t RoomType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// RoomStatuses returns the full room status catalog.
func (r *CatalogRepo) RoomStatuses(ctx context.Context) ([]RoomStatus, error) {
	const q = `SELECT code, label FROM room_statuses ORDER BY code`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RoomStatus
	for rows.Next() {
		var s RoomStatus
		if err := rows.Scan(&s.Code, &s.Label); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
