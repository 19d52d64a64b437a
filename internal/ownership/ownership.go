// Package ownership gates mutations on who owns a resource.
package ownership

import "errors"

var (
	ErrForbidden = errors.New("requester does not own resource")
	ErrNotFound  = errors.New("item not found")
)

// Identified is an element of an embedded list that can be addressed by id.
type Identified interface {
	GetID() string
}

// Owned is an Identified element that belongs to one user.
type Owned interface {
	Identified
	GetOwnerID() string
}

// Authorize returns ErrForbidden unless requesterID owns the resource.
func Authorize(resourceOwnerID, requesterID string) error {
	if resourceOwnerID == "" || resourceOwnerID != requesterID {
		return ErrForbidden
	}
	return nil
}

// IndexOf returns the position of the element with id, or -1.
func IndexOf[T Identified](items []T, id string) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// RemoveByID returns a copy of items without the element whose id matches.
func RemoveByID[T Identified](items []T, id string) ([]T, error) {
	idx := IndexOf(items, id)
	if idx < 0 {
		return items, ErrNotFound
	}
	return without(items, idx), nil
}

// Remove locates the element with id, checks requesterID owns it, and returns the list without it.
func Remove[T Owned](items []T, id, requesterID string) ([]T, error) {
	idx := IndexOf(items, id)
	if idx < 0 {
		return items, ErrNotFound
	}
	if err := Authorize(items[idx].GetOwnerID(), requesterID); err != nil {
		return items, err
	}
	return without(items, idx), nil
}

// RemoveOwnedBy drops the first element owned by ownerID.
func RemoveOwnedBy[T Owned](items []T, ownerID string) ([]T, error) {
	for i, item := range items {
		if item.GetOwnerID() == ownerID {
			return without(items, i), nil
		}
	}
	return items, ErrNotFound
}

// OwnedBy reports whether any element belongs to ownerID.
func OwnedBy[T Owned](items []T, ownerID string) bool {
	for _, item := range items {
		if item.GetOwnerID() == ownerID {
			return true
		}
	}
	return false
}

func without[T any](items []T, idx int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}
