//go:build e2e && unix

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ImageOption configures fixture image creation
type ImageOption func(*imageOptions)

type imageOptions struct {
	width, height int
	fill          color.RGBA
	modTime       time.Time
}

// WithSize sets the pixel size of the image
func WithSize(width, height int) ImageOption {
	return func(opts *imageOptions) {
		opts.width = width
		opts.height = height
	}
}

// WithFill paints the whole image with c
func WithFill(c color.RGBA) ImageOption {
	return func(opts *imageOptions) {
		opts.fill = c
	}
}

// WithModTime sets the file modification time, which decides library order
func WithModTime(t time.Time) ImageOption {
	return func(opts *imageOptions) {
		opts.modTime = t
	}
}

// CreateTestWorkspace creates a temporary home with an empty Pictures library
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	library := filepath.Join(tmpDir, "Pictures")
	if err := os.MkdirAll(library, 0755); err != nil {
		return "", fmt.Errorf("failed to create library: %w", err)
	}
	return library, nil
}

// CreateTestImage writes a PNG below the workspace library
func (tf *TUITestFramework) CreateTestImage(name string, options ...ImageOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	opts := &imageOptions{
		width:   32,
		height:  24,
		fill:    color.RGBA{R: 200, G: 80, B: 40, A: 255},
		modTime: time.Now(),
	}
	for _, opt := range options {
		opt(opts)
	}

	path := filepath.Join(tf.workspace, "Pictures", name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.width, opts.height))
	for y := 0; y < opts.height; y++ {
		for x := 0; x < opts.width; x++ {
			img.SetRGBA(x, y, opts.fill)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := os.Chtimes(path, opts.modTime, opts.modTime); err != nil {
		return "", fmt.Errorf("failed to set mod time: %w", err)
	}
	return path, nil
}

// CreateTestLibrary writes names as PNGs, the first one newest
func (tf *TUITestFramework) CreateTestLibrary(names ...string) error {
	base := time.Now().Add(-time.Hour)
	for i, name := range names {
		if _, err := tf.CreateTestImage(name, WithModTime(base.Add(-time.Duration(i)*time.Minute))); err != nil {
			return err
		}
	}
	return nil
}
