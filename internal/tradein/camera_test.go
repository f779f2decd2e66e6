package tradein

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestline/showroom/internal/errors"
)

func TestFileCamera_Lifecycle(t *testing.T) {
	spool := t.TempDir()
	stage := filepath.Join(t.TempDir(), "staged")
	cam := NewFileCamera(spool, stage)
	ctx := context.Background()

	require.NoError(t, cam.Acquire(ctx))

	// The device is exclusive while held.
	assert.ErrorIs(t, cam.Acquire(ctx), errors.ErrCameraBusy)

	require.NoError(t, cam.Release())
	// Release is idempotent and frees the device.
	require.NoError(t, cam.Release())
	require.NoError(t, cam.Acquire(ctx))
}

func TestFileCamera_Capture(t *testing.T) {
	spool := t.TempDir()
	stage := filepath.Join(t.TempDir(), "staged")
	require.NoError(t, os.WriteFile(filepath.Join(spool, "frame.jpg"), []byte("jpeg"), 0644))

	cam := NewFileCamera(spool, stage)
	ctx := context.Background()
	require.NoError(t, cam.Acquire(ctx))
	defer cam.Release()

	photo, err := cam.Capture(ctx, SlotFront)
	require.NoError(t, err)
	assert.Equal(t, SlotFront, photo.Slot)
	assert.FileExists(t, photo.Path)

	// The frame was claimed, not copied.
	assert.NoFileExists(t, filepath.Join(spool, "frame.jpg"))
}

func TestFileCamera_CaptureErrors(t *testing.T) {
	spool := t.TempDir()
	cam := NewFileCamera(spool, filepath.Join(t.TempDir(), "staged"))
	ctx := context.Background()

	// Capture before acquire is refused.
	_, err := cam.Capture(ctx, SlotFront)
	assert.Error(t, err)

	require.NoError(t, cam.Acquire(ctx))
	defer cam.Release()

	// Empty spool means no frame to claim.
	_, err = cam.Capture(ctx, SlotFront)
	require.Error(t, err)
	assert.Equal(t, errors.Camera, errors.GetCode(err))

	// No capture after release.
	require.NoError(t, cam.Release())
	_, err = cam.Capture(ctx, SlotFront)
	assert.Error(t, err)
}
