package utils

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylelab/fitting-lab/config"
)

func TestSaveImageLocal(t *testing.T) {
	config.AWSBucketName = ""
	config.UploadDir = t.TempDir()

	ref, err := ImageStore{}.SaveImage(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	data, err := os.ReadFile(ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Contains(t, ref, ".png")
}

func TestResolveImageRefPassthrough(t *testing.T) {
	config.AWSBucketName = ""
	ctx := context.Background()

	assert.Equal(t, "", ResolveImageRef(ctx, ""))
	assert.Equal(t, "https://cdn.example.com/a.jpg", ResolveImageRef(ctx, "https://cdn.example.com/a.jpg"))
	assert.Equal(t, "data:image/png;base64,abc", ResolveImageRef(ctx, "data:image/png;base64,abc"))
	assert.Equal(t, "/uploads/a.jpg", ResolveImageRef(ctx, "uploads/a.jpg"))
}
