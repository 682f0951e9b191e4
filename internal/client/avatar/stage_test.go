package avatar

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestStage_PNG(t *testing.T) {
	path := writeFile(t, "me.png", pngHeader)

	uri, err := Stage(path, 0)
	require.NoError(t, err)

	prefix := "data:image/png;base64,"
	require.True(t, strings.HasPrefix(uri, prefix), uri)
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, payload)
}

func TestStage_DetectsByContentNotExtension(t *testing.T) {
	path := writeFile(t, "avatar.txt", gifHeader)

	uri, err := Stage(path, 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/gif;base64,"), uri)
}

func TestStage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		max     int64
		wantErr error
	}{
		{
			name:    "not an image",
			path:    func(t *testing.T) string { return writeFile(t, "notes.png", []byte("just some text")) },
			wantErr: ErrNotImage,
		},
		{
			name:    "empty file",
			path:    func(t *testing.T) string { return writeFile(t, "empty.png", nil) },
			wantErr: ErrEmptyImage,
		},
		{
			name:    "too large",
			path:    func(t *testing.T) string { return writeFile(t, "big.png", pngHeader) },
			max:     8,
			wantErr: ErrImageTooLarge,
		},
		{
			name:    "directory",
			path:    func(t *testing.T) string { return t.TempDir() },
			wantErr: ErrNotImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Stage(tt.path(t), tt.max)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStage_MissingFile(t *testing.T) {
	_, err := Stage(filepath.Join(t.TempDir(), "nope.png"), 0)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStageReader_LimitAppliesToStreams(t *testing.T) {
	_, err := StageReader(bytes.NewReader(pngHeader), int64(len(pngHeader)-1))
	require.ErrorIs(t, err, ErrImageTooLarge)

	_, err = StageReader(bytes.NewReader(pngHeader), int64(len(pngHeader)))
	require.NoError(t, err)
}

func TestDataURI_DropsParameters(t *testing.T) {
	assert.Equal(t, "data:image/svg+xml;base64,PHN2Zy8+", DataURI("image/svg+xml; charset=utf-8", []byte("<svg/>")))
}
