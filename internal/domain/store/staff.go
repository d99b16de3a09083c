package store

import "github.com/google/uuid"

// Staff is an individual calendar within a store. Inactive staff offer no
// slots and accept no bookings.
type Staff struct {
	id      uuid.UUID
	storeID uuid.UUID
	name    string
	active  bool
}

func NewStaff(id, storeID uuid.UUID, name string, active bool) *Staff {
	return &Staff{
		id:      id,
		storeID: storeID,
		name:    name,
		active:  active,
	}
}

func (s *Staff) ID() uuid.UUID      { return s.id }
func (s *Staff) StoreID() uuid.UUID { return s.storeID }
func (s *Staff) Name() string       { return s.name }
func (s *Staff) IsActive() bool     { return s.active }
