// Package capture grabs screen region bitmaps for the screen ingestion
// pipeline. Microphone input lives in the audio subpackage.
package capture

import (
	"errors"
	"fmt"
)

// ErrEmptyRegion is returned when a region has no area.
var ErrEmptyRegion = errors.New("capture region is empty")

// Region is a rectangle in screen coordinates.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the region has zero or negative area.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Validate returns ErrEmptyRegion for an empty region.
func (r Region) Validate() error {
	if r.Empty() {
		return fmt.Errorf("%w: %dx%d at (%d,%d)", ErrEmptyRegion, r.Width, r.Height, r.X, r.Y)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
