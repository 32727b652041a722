package drone

import (
	"fmt"
	"io"
)

// SensorType names the optical sensor carried by every visual-capture unit.
// It is the same for all implementers and is not overridable.
const SensorType = "High-Resolution Optical Camera"

// standardLens is the lens fitted to visual-capture sensors by default.
const standardLens = "50mm Standard Lens"

// VisualCapture is the imaging capability contract. Every implementer
// supplies TakePicture; Record4KVideo has a stock body available as
// DefaultRecord4KVideo, which an implementer may delegate to or replace.
type VisualCapture interface {
	// TakePicture emits a unit-specific capture description.
	TakePicture()

	// Record4KVideo emits a video-recording description.
	Record4KVideo()
}

// DefaultRecord4KVideo is the stock Record4KVideo body. Implementers that
// do not customize recording delegate here.
func DefaultRecord4KVideo(w io.Writer) {
	fmt.Fprintln(w, "Recording 4K video using default settings.")
}

// StandardLensType returns the standard lens designation. It belongs to the
// contract, not to any unit: it is callable with no instances constructed
// and is pure.
func StandardLensType() string {
	return standardLens
}
