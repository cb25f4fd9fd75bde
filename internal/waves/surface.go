package waves

import "github.com/gogpu/gg"

// Surface is a 2D drawing target. The method set mirrors *gg.Context.
type Surface interface {
	Width() int
	Height() int
	Resize(width, height int) error
	Clear()
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill() error
	Stroke() error
}

var _ Surface = (*gg.Context)(nil)

// Host supplies the sizes the surface tracks.
type Host interface {
	// ContainerSize is the size of the element holding the surface. A zero
	// dimension means not yet measurable.
	ContainerSize() (width, height int)
	ViewportSize() (width, height int)
	// OnResize registers fn for viewport changes and returns a func that
	// removes it.
	OnResize(fn func()) (remove func())
}

// FrameHandle identifies a scheduled frame.
type FrameHandle uint64

// Scheduler runs callbacks on the next frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}
