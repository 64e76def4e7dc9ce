// Package raster defines the RGBA8 pixel buffer the codec operates on
// and the slot-addressing arithmetic shared by the cost map, schedule,
// embedder, extractor, and camouflage stages.
package raster

import (
	"errors"
	"image"
	"image/draw"
)

// ErrInvalidImage is returned whenever a buffer's declared dimensions
// don't match its backing storage, or the dimensions are degenerate.
var ErrInvalidImage = errors.New("invalid image: zero dimension or malformed buffer")

// Buffer is a row-major RGBA8 raster with premultiplied alpha. Only R,
// G, B participate in embedding and cost computation; Alpha is carried
// through untouched.
type Buffer struct {
	W, H int
	// Pix holds 4 bytes per pixel in R,G,B,A order, row-major, length
	// 4*W*H.
	Pix []byte
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// FromImage copies img into a premultiplied RGBA8 Buffer.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidImage
	}

	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	buf := NewBuffer(w, h)
	if rgba.Stride == 4*w {
		copy(buf.Pix, rgba.Pix)
	} else {
		for y := 0; y < h; y++ {
			srcOff := y * rgba.Stride
			dstOff := y * 4 * w
			copy(buf.Pix[dstOff:dstOff+4*w], rgba.Pix[srcOff:srcOff+4*w])
		}
	}
	return buf, nil
}

// ToImage renders the buffer into a standard library *image.RGBA for
// lossless (PNG) persistence.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	copy(img.Pix, b.Pix)
	return img
}

// Validate reports ErrInvalidImage if the buffer's declared dimensions
// don't match its storage.
func (b *Buffer) Validate() error {
	if b.W <= 0 || b.H <= 0 {
		return ErrInvalidImage
	}
	if len(b.Pix) != 4*b.W*b.H {
		return ErrInvalidImage
	}
	return nil
}

// TotalSlots is 3*W*H: one slot per color channel of one pixel (R, G, B
// — Alpha is never addressable).
func (b *Buffer) TotalSlots() int {
	return 3 * b.W * b.H
}

// PixelOf returns the flat pixel index (not the (x,y) pair) addressed
// by slot.
func PixelOf(slot int) int {
	return slot / 3
}

// ChannelOf returns which of R(0), G(1), B(2) a slot addresses.
func ChannelOf(slot int) int {
	return slot % 3
}

// XY converts a flat pixel index into (x, y) given the image width.
func XY(pixel, width int) (x, y int) {
	return pixel % width, pixel / width
}

// PixOffset returns the byte offset into Pix for the given slot's
// channel value.
func (b *Buffer) PixOffset(slot int) int {
	pixel := PixelOf(slot)
	return pixel*4 + ChannelOf(slot)
}

// ChannelAt reads the raw channel byte addressed by slot.
func (b *Buffer) ChannelAt(slot int) byte {
	return b.Pix[b.PixOffset(slot)]
}

// SetChannelAt writes v into the channel byte addressed by slot.
func (b *Buffer) SetChannelAt(slot int, v byte) {
	b.Pix[b.PixOffset(slot)] = v
}

// PixelRGB returns the raw (unmasked) R,G,B byte triplet for a flat
// pixel index.
func (b *Buffer) PixelRGB(pixel int) (r, g, bch byte) {
	off := pixel * 4
	return b.Pix[off], b.Pix[off+1], b.Pix[off+2]
}
