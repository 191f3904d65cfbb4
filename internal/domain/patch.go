package domain

import "encoding/json"

// UserPatch carries a partial user update; nil fields are preserved.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// TaskPatch carries a partial task update; nil fields are preserved.
// AssignedTo distinguishes absent from an explicit null, which clears
// the assignment.
type TaskPatch struct {
	Title      *string    `json:"title"`
	Completed  *bool      `json:"completed"`
	Priority   *string    `json:"priority"`
	AssignedTo OptionalID `json:"assignedTo"`
}

// OptionalID is a tri-state id field for patch bodies: absent (Set false),
// explicit null (Set true, Value nil), or a concrete id.
type OptionalID struct {
	Set   bool
	Value *int64
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	o.Value = &n
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
