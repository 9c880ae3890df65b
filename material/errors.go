// SPDX-License-Identifier: EPL-2.0

package material

import "errors"

var (
	// ErrMaterialNotFound is returned when a (material, size) pair has no modes.
	ErrMaterialNotFound = errors.New("material not found")

	// ErrScrapeMaterialNotFound is returned for a scrape material without grain data.
	ErrScrapeMaterialNotFound = errors.New("scrape material not found")

	ErrUnknownMaterial       = errors.New("unknown material")
	ErrUnknownScrapeMaterial = errors.New("unknown scrape material")
	ErrInvalidProfile        = errors.New("invalid audio profile")
	ErrSurfaceTooShort       = errors.New("scrape surface too short")
)
