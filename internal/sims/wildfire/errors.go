package wildfire

import "errors"

var (
	// ErrTerrainUnavailable reports that the fuel or elevation mask could not
	// be decoded or that the two masks disagree on dimensions.
	ErrTerrainUnavailable = errors.New("wildfire: terrain unavailable")

	// ErrOutOfBounds reports an ignition request outside the grid.
	ErrOutOfBounds = errors.New("wildfire: ignition out of bounds")

	// ErrInvalidTarget reports an ignition request on a cell that is not
	// unburned fuel.
	ErrInvalidTarget = errors.New("wildfire: cell cannot ignite")
)
