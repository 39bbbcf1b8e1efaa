package fitting

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImageDataURL(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	data, err := LoadImage(context.Background(), "data:image/jpeg;base64,"+encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	_, err = LoadImage(context.Background(), "data:image/jpeg;base64")
	assert.Error(t, err)
}

func TestLoadImageLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.jpg")
	require.NoError(t, os.WriteFile(path, []byte("face"), 0644))

	data, err := LoadImage(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []byte("face"), data)

	_, err = LoadImage(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}
