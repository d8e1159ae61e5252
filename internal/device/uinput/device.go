package uinput

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// Defaults for Config.
const (
	DefaultPath    = "/dev/uinput"
	DefaultVersion = 1
	DefaultSettle  = 100 * time.Millisecond
)

// Config describes the device node and the identity of the virtual keyboard.
type Config struct {
	Path    string
	Name    string
	Bus     uint16
	Vendor  uint16
	Product uint16
	Version uint16

	// Settle is how long Activate waits after creation so the compositor
	// can pick up the new device before the first event.
	Settle time.Duration
}

// ConfigFor returns a Config for the given identity with default path,
// bus, version and settle time.
func ConfigFor(id domain.DeviceIdentity) Config {
	return Config{
		Path:    DefaultPath,
		Name:    id.Name,
		Bus:     busUSB,
		Vendor:  id.Vendor,
		Product: id.Product,
		Version: DefaultVersion,
		Settle:  DefaultSettle,
	}
}

// Stage names the step of Activate that failed.
type Stage string

const (
	StageOpen     Stage = "open"
	StageRegister Stage = "register"
	StageSetup    Stage = "setup"
	StageCreate   Stage = "create"
)

// DeviceError reports a failed activation step. It matches domain.ErrDevice.
type DeviceError struct {
	Stage Stage
	Err   error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("uinput %s: %v", e.Stage, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

func (e *DeviceError) Is(target error) bool {
	return errors.Is(domain.ErrDevice, target)
}

// Device is an active virtual keyboard.
type Device struct {
	mu      sync.Mutex
	fd      int
	created bool
	closed  bool
	name    string
	now     func() time.Time
}

// Activate opens the uinput node, registers keys, creates the device and
// waits cfg.Settle. On failure nothing is left open.
func Activate(ctx context.Context, cfg Config, keys []domain.Key) (*Device, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.Bus == 0 {
		cfg.Bus = busUSB
	}

	fd, err := unix.Open(cfg.Path, unix.O_WRONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &DeviceError{Stage: StageOpen, Err: fmt.Errorf("%s: %w", cfg.Path, err)}
	}
	d := &Device{fd: fd, name: cfg.Name, now: time.Now}

	if err := d.register(keys); err != nil {
		d.Close()
		return nil, &DeviceError{Stage: StageRegister, Err: err}
	}
	if err := d.setup(cfg); err != nil {
		d.Close()
		return nil, &DeviceError{Stage: StageSetup, Err: err}
	}
	if err := unix.IoctlSetInt(fd, uiDevCreate, 0); err != nil {
		d.Close()
		return nil, &DeviceError{Stage: StageCreate, Err: err}
	}
	d.created = true

	if cfg.Settle > 0 {
		t := time.NewTimer(cfg.Settle)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			d.Close()
			return nil, &DeviceError{Stage: StageCreate, Err: ctx.Err()}
		}
	}
	return d, nil
}

func (d *Device) register(keys []domain.Key) error {
	if err := unix.IoctlSetInt(d.fd, uiSetEvBit, evKey); err != nil {
		return fmt.Errorf("EV_KEY: %w", err)
	}
	for _, k := range keys {
		if err := unix.IoctlSetInt(d.fd, uiSetKeyBit, int(k)); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}

func (d *Device) setup(cfg Config) error {
	s := setup{
		ID: inputID{
			Bustype: cfg.Bus,
			Vendor:  cfg.Vendor,
			Product: cfg.Product,
			Version: cfg.Version,
		},
	}
	// Leave room for the terminating NUL.
	copy(s.Name[:maxNameSize-1], cfg.Name)
	return ioctlPtr(d.fd, uiDevSetup, unsafe.Pointer(&s))
}

// Name returns the name the device was created with.
func (d *Device) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Emit writes one key transition and a SYN_REPORT.
func (d *Device) Emit(key domain.Key, pressed bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return domain.ErrEmit.WithDetails(key.String()).WithCause(unix.EBADF)
	}

	buf := encodeKey(uint16(key), pressed, d.now())
	n, err := unix.Write(d.fd, buf)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return domain.ErrEmit.WithDetails(key.String()).WithCause(err)
	}
	return nil
}

// Close destroys the virtual keyboard and closes the node. It is safe to
// call more than once and on a nil Device.
func (d *Device) Close() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	var errs []error
	if d.created {
		if err := unix.IoctlSetInt(d.fd, uiDevDestroy, 0); err != nil {
			errs = append(errs, fmt.Errorf("destroy: %w", err))
		}
	}
	if err := unix.Close(d.fd); err != nil {
		errs = append(errs, fmt.Errorf("close: %w", err))
	}
	return errors.Join(errs...)
}
