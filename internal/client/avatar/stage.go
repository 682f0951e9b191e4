// Package avatar turns a local image file into an inline data URI so it can
// be previewed and sent as a profile picture without a separate upload.
package avatar

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes caps staged images at 5 MiB.
const DefaultMaxBytes int64 = 5 << 20

var (
	ErrEmptyImage    = errors.New("image file is empty")
	ErrImageTooLarge = errors.New("image file is too large")
	ErrNotImage      = errors.New("file is not an image")
)

// Stage reads the file at path and returns it as a base64 data URI.
// maxBytes <= 0 means DefaultMaxBytes.
func Stage(path string, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrNotImage)
	}
	if fi.Size() > maxBytes {
		return "", fmt.Errorf("%d bytes > %d: %w", fi.Size(), maxBytes, ErrImageTooLarge)
	}

	return StageReader(f, maxBytes)
}

// StageReader is Stage for an already opened stream.
func StageReader(r io.Reader, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("more than %d bytes: %w", maxBytes, ErrImageTooLarge)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("detected %s: %w", mtype.String(), ErrNotImage)
	}

	return DataURI(mtype.String(), data), nil
}

// DataURI encodes data as "data:<mime>;base64,<payload>". MIME parameters
// such as charset are dropped.
func DataURI(mime string, data []byte) string {
	mime, _, _ = strings.Cut(mime, ";")
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
