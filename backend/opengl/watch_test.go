package opengl_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gllab/backend/opengl"
)

func TestShaderWatcherReportsShaderFiles(t *testing.T) {
	dir := t.TempDir()
	sw, err := opengl.NewShaderWatcher(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { sw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go sw.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phong.frag"), []byte("void main() {}"), 0o644))

	select {
	case name := <-sw.Changes():
		assert.Equal(t, "phong.frag", name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestShaderWatcherMissingDir(t *testing.T) {
	_, err := opengl.NewShaderWatcher(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}
