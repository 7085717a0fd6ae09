package types

import "time"

// BaseModel carries the timestamp pair shared by every entity in the engine.
// CreatedAt is set once at construction; UpdatedAt is refreshed by Touch
// whenever a field setter is applied.
type BaseModel struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBaseModel returns a BaseModel with both timestamps set to now (UTC).
func NewBaseModel() BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the modification timestamp.
func (m *BaseModel) Touch() {
	m.UpdatedAt = time.Now().UTC()
}
