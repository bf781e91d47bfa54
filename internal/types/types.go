// internal/types/types.go
package types

// EntityID: уникальный идентификатор сущности в пределах одного забега.
type EntityID uint64
