//go:build !ecos || (!linux && !darwin)

package ecos

import "fmt"

// NewNativeEngine returns an Engine backed by the ECOS C library.
// This build has no native ECOS support; rebuild with the "ecos" build tag
// on linux or darwin, or supply your own Engine to New.
func NewNativeEngine() (Engine, error) {
	return nil, fmt.Errorf("ecos: built without native ECOS support (use -tags ecos)")
}
