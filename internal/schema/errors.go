package schema

import (
	"errors"
	"fmt"
)

// ErrNotEntity is matched (via errors.Is) by every *NotEntityError.
var ErrNotEntity = errors.New("schema: type is not an entity")

// NotEntityError reports that a descriptor handed to Of does not carry the
// entity marker.
type NotEntityError struct {
	// Type is the simple name of the rejected type.
	Type string
}

func (e *NotEntityError) Error() string {
	if e.Type == "" {
		return ErrNotEntity.Error()
	}
	return fmt.Sprintf("schema: %s is not an entity (embed schema.Entity or set entity: true)", e.Type)
}

// Is makes errors.Is(err, ErrNotEntity) true for any *NotEntityError.
func (e *NotEntityError) Is(target error) bool { return target == ErrNotEntity }
