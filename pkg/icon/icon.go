// Package icon owns the decoded bitmap shown on the widget face.
//
// A [Resource] is created from raster bytes (PNG/JPEG/GIF), from SVG markup,
// or from an already-decoded image handed over by the host. Decoding is
// size-bounded: the produced bitmap never exceeds the widget face size times
// a bounded density multiplier, and inputs whose decoded size would blow a
// byte budget are rejected instead of decoded. Release is deterministic —
// the engine calls Dispose on hide, on config replace and on shutdown rather
// than leaving the pixels to the garbage collector.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	// Raster formats accepted by Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/go-hover/hover/pkg/errors"
)

// MaxDensityMultiplier caps how far the display density can scale the
// decoded bitmap beyond the configured widget size.
const MaxDensityMultiplier = 4.0

// DefaultByteBudget bounds the decoded pixel buffer (width*height*4).
// Inputs that would decode past it are treated as "no icon".
const DefaultByteBudget = 16 << 20

// Options bound the decode output.
type Options struct {
	// TargetSize is the widget face size in pixels.
	TargetSize float64
	// Density is the display density multiplier, clamped to
	// [1, MaxDensityMultiplier].
	Density float64
	// ByteBudget overrides DefaultByteBudget when positive.
	ByteBudget int64
}

func (o Options) side() int {
	density := o.Density
	if density < 1 {
		density = 1
	}
	if density > MaxDensityMultiplier {
		density = MaxDensityMultiplier
	}
	side := int(math.Ceil(o.TargetSize * density))
	if side < 1 {
		side = 1
	}
	return side
}

func (o Options) budget() int64 {
	if o.ByteBudget > 0 {
		return o.ByteBudget
	}
	return DefaultByteBudget
}

// Resource owns one decoded bitmap for the widget face.
type Resource struct {
	img      image.Image
	disposed bool
}

// Decode reads raster or SVG bytes and produces a bounded Resource.
// SVG input is detected by its leading markup; everything else goes through
// the registered raster decoders.
func Decode(r io.Reader, opts Options) (*Resource, error) {
	const op = "icon.Decode"

	data, err := io.ReadAll(io.LimitReader(r, opts.budget()+1))
	if err != nil {
		return nil, errors.E(op, errors.KindResource, err)
	}
	if int64(len(data)) > opts.budget() {
		return nil, errors.E(op, errors.KindResource,
			fmt.Errorf("input exceeds %d byte budget", opts.budget()))
	}

	if looksLikeSVG(data) {
		return decodeSVG(data, opts)
	}
	return decodeRaster(data, opts)
}

// FromImage wraps an already-decoded image, downscaling it to the bounded
// face size when needed. The host bridge uses this when it hands the engine
// a ready bitmap.
func FromImage(img image.Image, opts Options) (*Resource, error) {
	const op = "icon.FromImage"
	if img == nil {
		return nil, errors.E(op, errors.KindResource, fmt.Errorf("nil image"))
	}
	bounds := img.Bounds()
	if pixelBytes(bounds.Dx(), bounds.Dy()) > opts.budget() {
		return nil, errors.E(op, errors.KindResource,
			fmt.Errorf("%dx%d bitmap exceeds %d byte budget", bounds.Dx(), bounds.Dy(), opts.budget()))
	}
	return &Resource{img: scaleToFit(img, opts.side())}, nil
}

// Image returns the decoded bitmap, or nil after Dispose.
func (r *Resource) Image() image.Image {
	if r == nil || r.disposed {
		return nil
	}
	return r.img
}

// Dispose releases the bitmap. Safe to call more than once.
func (r *Resource) Dispose() {
	if r == nil {
		return
	}
	r.disposed = true
	r.img = nil
}

// Disposed reports whether the bitmap has been released.
func (r *Resource) Disposed() bool {
	return r == nil || r.disposed
}

func decodeRaster(data []byte, opts Options) (*Resource, error) {
	const op = "icon.Decode"

	// Check dimensions before committing to a full decode so an oversized
	// input is rejected without allocating its pixels.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.E(op, errors.KindResource, err)
	}
	if pixelBytes(cfg.Width, cfg.Height) > opts.budget() {
		return nil, errors.E(op, errors.KindResource,
			fmt.Errorf("%dx%d image exceeds %d byte budget", cfg.Width, cfg.Height, opts.budget()))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.E(op, errors.KindResource, err)
	}
	return &Resource{img: scaleToFit(img, opts.side())}, nil
}

func decodeSVG(data []byte, opts Options) (*Resource, error) {
	const op = "icon.Decode"

	svg, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, errors.E(op, errors.KindResource, err)
	}

	side := opts.side()
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	svg.SetTarget(0, 0, float64(side), float64(side))

	scanner := rasterx.NewScannerGV(side, side, img, img.Bounds())
	raster := rasterx.NewDasher(side, side, scanner)
	svg.Draw(raster, 1.0)

	return &Resource{img: img}, nil
}

// scaleToFit downscales img so its larger side is at most side. Images that
// already fit are returned unchanged; upscaling never happens.
func scaleToFit(img image.Image, side int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= side && h <= side {
		return img
	}

	scale := float64(side) / float64(max(w, h))
	dw := max(int(float64(w)*scale), 1)
	dh := max(int(float64(h)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func pixelBytes(w, h int) int64 {
	return int64(w) * int64(h) * 4
}

func looksLikeSVG(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("<"))
}
