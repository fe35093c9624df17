// internal/types/types.go
package types

import "fmt"

// EntityID — ссылка на слот пула. Gen отличает текущего владельца слота от
// прежних, поэтому устаревший ID никогда не указывает на новую сущность.
// Нулевое значение не указывает ни на что.
type EntityID struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether the id was never assigned.
func (id EntityID) IsZero() bool {
	return id.Gen == 0
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d#%d", id.Index, id.Gen)
}
