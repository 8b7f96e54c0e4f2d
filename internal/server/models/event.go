package models

import "time"

// Event is a published event. OwnerID is set once at creation from the
// authenticated user and is never reassigned afterwards.
type Event struct {
	ID          string
	Name        string
	Description string
	Date        time.Time
	Location    string
	Capacity    int
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventPatch is a partial update. A nil field means "leave the column as is";
// a present field is applied. Decoding JSON straight into pointer fields keeps
// "key absent" and "key present but empty" distinguishable.
type EventPatch struct {
	Name        *string
	Description *string
	Date        *time.Time
	Location    *string
	Capacity    *int
}

// IsEmpty reports whether the patch carries no changes at all.
func (p *EventPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Date == nil &&
		p.Location == nil && p.Capacity == nil
}
