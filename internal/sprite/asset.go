// Package sprite provides the player's image as a non-blocking asset
// handle. Rendering consults the handle every frame and falls back to a
// silhouette until the image is ready.
package sprite

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // First frame of animated sprites
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/capydino/internal/core"
)

// State is the lifecycle stage of an Asset.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// ErrNoPath is the failure of an asset created without a file.
var ErrNoPath = errors.New("sprite: no image path")

// Asset is a handle to an image that may still be loading.
// It is safe for concurrent use.
type Asset struct {
	mu    sync.RWMutex
	state State
	frame image.Image
	err   error
	done  chan struct{}

	// Last scaled frame, keyed by its size
	scaled *image.RGBA
}

// Load starts decoding the image at path in the background and returns
// at once. A failed load is logged and leaves the asset in StateFailed;
// an empty path fails silently.
func Load(ctx context.Context, path string, logger *log.Logger) *Asset {
	a := &Asset{state: StateLoading, done: make(chan struct{})}
	if path == "" {
		a.finish(nil, ErrNoPath)
		return a
	}

	go func() {
		img, err := decodeFile(ctx, path)
		if err != nil && logger != nil {
			logger.Warn("sprite unavailable, drawing silhouette", "path", path, "error", err)
		}
		a.finish(img, err)
	}()
	return a
}

// FromImage returns an asset that is already ready.
func FromImage(img image.Image) *Asset {
	a := &Asset{state: StateLoading, done: make(chan struct{})}
	if img == nil {
		a.finish(nil, errors.New("sprite: nil image"))
	} else {
		a.finish(img, nil)
	}
	return a
}

func decodeFile(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: open: %w", err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// decode reads the first frame of a GIF, PNG or JPEG image.
func decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, errors.New("decode: empty image")
	}
	return img, nil
}

func (a *Asset) finish(img image.Image, err error) {
	a.mu.Lock()
	if err != nil {
		a.state = StateFailed
		a.err = err
	} else {
		a.state = StateReady
		a.frame = img
	}
	a.mu.Unlock()
	close(a.done)
}

// State returns the current lifecycle stage.
func (a *Asset) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Frame returns the image once the asset is ready.
func (a *Asset) Frame() (image.Image, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frame, a.state == StateReady
}

// Err returns the load failure, if any.
func (a *Asset) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

// Done is closed when loading has finished, successfully or not.
func (a *Asset) Done() <-chan struct{} {
	return a.done
}

// Draw paints the frame scaled into r. It reports false, drawing nothing,
// while no frame is available.
func (a *Asset) Draw(dc *gg.Context, r core.Rect) bool {
	w, h := int(math.Round(r.W)), int(math.Round(r.H))
	if w <= 0 || h <= 0 {
		return false
	}

	img, ok := a.scaledFrame(w, h)
	if !ok {
		return false
	}
	dc.DrawImage(img, int(math.Round(r.X)), int(math.Round(r.Y)))
	return true
}

// scaledFrame returns the frame resampled to w x h, reusing the previous
// result when the size is unchanged.
func (a *Asset) scaledFrame(w, h int) (image.Image, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateReady {
		return nil, false
	}
	if a.scaled != nil && a.scaled.Bounds().Dx() == w && a.scaled.Bounds().Dy() == h {
		return a.scaled, true
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), a.frame, a.frame.Bounds(), draw.Over, nil)
	a.scaled = dst
	return dst, true
}
