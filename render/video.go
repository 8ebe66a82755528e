package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// VideoWriter appends images as frames of an MJPEG AVI file.
type VideoWriter struct {
	aw      mjpeg.AviWriter
	buf     bytes.Buffer
	opts    jpeg.Options
	bounds  image.Rectangle
	written int
}

// NewVideoWriter creates the file at path. All frames must have the given
// size.
func NewVideoWriter(path string, width, height, fps, quality int) (*VideoWriter, error) {
	aw, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create MJPEG writer %s: %w", path, err)
	}
	return &VideoWriter{
		aw:     aw,
		opts:   jpeg.Options{Quality: quality},
		bounds: image.Rect(0, 0, width, height),
	}, nil
}

// AddFrame encodes img as JPEG and appends it.
func (v *VideoWriter) AddFrame(img image.Image) error {
	if got := img.Bounds().Size(); got != v.bounds.Size() {
		return fmt.Errorf("frame %d is %v, video is %v", v.written, got, v.bounds.Size())
	}
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return fmt.Errorf("encode frame %d: %w", v.written, err)
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("add frame %d: %w", v.written, err)
	}
	v.written++
	return nil
}

// Frames is the number of frames written so far.
func (v *VideoWriter) Frames() int { return v.written }

// Close finalises the AVI index and closes the file.
func (v *VideoWriter) Close() error {
	if err := v.aw.Close(); err != nil {
		return fmt.Errorf("close video: %w", err)
	}
	return nil
}
