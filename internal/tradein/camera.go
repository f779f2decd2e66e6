package tradein

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/crestline/showroom/internal/errors"
)

// Camera captures trade-in photos. The device is exclusive: Acquire before
// the first Capture, Release when the photo screen closes and again on
// teardown. Release is idempotent; no capture may happen after it.
type Camera interface {
	Acquire(ctx context.Context) error
	Capture(ctx context.Context, slot PhotoSlot) (Photo, error)
	Release() error
}

// FileCamera is the kiosk's camera implementation. The kiosk hardware drops
// frames into a spool directory; Capture claims the newest frame by moving
// it into the session's staging directory under a unique name.
type FileCamera struct {
	mu       sync.Mutex
	spoolDir string
	stageDir string
	acquired bool
}

// NewFileCamera creates a camera over the given spool and staging dirs.
func NewFileCamera(spoolDir, stageDir string) *FileCamera {
	return &FileCamera{spoolDir: spoolDir, stageDir: stageDir}
}

// Acquire claims the device and ensures the staging directory exists.
func (c *FileCamera) Acquire(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.acquired {
		return errors.ErrCameraBusy
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.Camera, "acquire cancelled", err).
			WithOp("camera.Acquire")
	}
	if err := os.MkdirAll(c.stageDir, 0755); err != nil {
		return errors.Wrap(errors.Camera, "failed to create staging dir", err).
			WithOp("camera.Acquire")
	}
	c.acquired = true
	return nil
}

// Capture claims the newest spooled frame for the slot.
func (c *FileCamera) Capture(ctx context.Context, slot PhotoSlot) (Photo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.acquired {
		return Photo{}, errors.New(errors.Camera, "camera not acquired").
			WithOp("camera.Capture")
	}
	if err := ctx.Err(); err != nil {
		return Photo{}, errors.Wrap(errors.Camera, "capture cancelled", err).
			WithOp("camera.Capture")
	}

	frame, err := c.newestFrame()
	if err != nil {
		return Photo{}, err
	}

	dest := filepath.Join(c.stageDir, string(slot)+"-"+uuid.NewString()+filepath.Ext(frame))
	if err := os.Rename(frame, dest); err != nil {
		return Photo{}, errors.Wrap(errors.Camera, "failed to stage frame", err).
			WithOp("camera.Capture")
	}
	return Photo{Slot: slot, Path: dest}, nil
}

// Release frees the device. Safe to call more than once.
func (c *FileCamera) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.acquired = false
	return nil
}

func (c *FileCamera) newestFrame() (string, error) {
	entries, err := os.ReadDir(c.spoolDir)
	if err != nil {
		return "", errors.Wrap(errors.Camera, "failed to read camera spool", err).
			WithOp("camera.Capture")
	}

	var newest string
	var newestMod int64
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().UnixNano() > newestMod {
			newest = filepath.Join(c.spoolDir, e.Name())
			newestMod = info.ModTime().UnixNano()
		}
	}
	if newest == "" {
		return "", errors.New(errors.Camera, "no frame available").
			WithOp("camera.Capture")
	}
	return newest, nil
}
