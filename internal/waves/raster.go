package waves

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"
)

// ErrInvalidSize indicates a non-positive raster size.
var ErrInvalidSize = errors.New("waves: invalid raster size")

// DefaultBackground is slate-950, the page colour behind the backdrop.
var DefaultBackground = gg.Hex("#020617")

// RenderFrames paints ticks frames onto a fresh width x height raster and
// returns it unmounted. The caller owns the returned context.
func RenderFrames(width, height, ticks int, opts ...Option) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	dc := gg.NewContext(width, height)
	sched := NewManualScheduler()
	r := New(dc, NewStaticHost(width, height), sched, opts...)
	r.Mount()
	for i := 1; i < ticks; i++ {
		sched.Step()
	}
	r.Unmount()
	return dc, nil
}

// RenderPNG renders ticks frames and encodes the result as PNG to w.
func RenderPNG(w io.Writer, width, height, ticks int, opts ...Option) error {
	dc, err := RenderFrames(width, height, ticks, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}
