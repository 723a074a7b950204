package service

import (
	apperrors "github.com/manytooh/catalog-admin/internal/errors"
)

// findByID scans a fetched collection for a record. The backend has no
// single-record endpoints, so edit screens locate their row in the full
// list.
func findByID[T any](items []T, id string, key func(T) string) (*T, error) {
	for i := range items {
		if key(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, apperrors.NotFoundf("record %q not found", id)
}
