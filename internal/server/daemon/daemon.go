package daemon

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/core/keymap"
	"github.com/yndnr/tapkey-go/internal/core/service"
	"github.com/yndnr/tapkey-go/internal/device/uinput"
	"github.com/yndnr/tapkey-go/internal/server/localserver"
	"github.com/yndnr/tapkey-go/internal/telemetry/logger"
	"github.com/yndnr/tapkey-go/internal/telemetry/metric"
)

// Keyboard is the device side of the daemon. *uinput.Device implements it.
type Keyboard interface {
	service.Emitter
	Name() string
	Close() error
}

// OpenFunc creates the keyboard with the given keys registered.
type OpenFunc func(ctx context.Context, cfg uinput.Config, keys []domain.Key) (Keyboard, error)

// OpenUinput opens a real uinput keyboard.
func OpenUinput(ctx context.Context, cfg uinput.Config, keys []domain.Key) (Keyboard, error) {
	d, err := uinput.Activate(ctx, cfg, keys)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Options configures a Daemon.
type Options struct {
	Profile    domain.Profile
	SocketPath string
	Device     uinput.Config
	Timing     service.Timing

	// Open defaults to OpenUinput.
	Open OpenFunc
	// Logger defaults to logger.Default().
	Logger logger.Logger
	// Metrics is optional.
	Metrics *metric.Registry
	// Sleep replaces time.Sleep in the sequencer, for tests.
	Sleep func(time.Duration)
}

// Daemon owns the keyboard and the command socket.
type Daemon struct {
	opts       Options
	id         string
	log        logger.Logger
	dispatcher service.Dispatcher

	kbd Keyboard
	seq *service.Sequencer
	ch  *localserver.Channel

	ready   atomic.Bool
	dropLog rate.Sometimes

	closeOnce sync.Once
	closeErr  error
}

// New validates opts and returns an idle daemon.
func New(opts Options) (*Daemon, error) {
	if !opts.Profile.Valid() {
		return nil, domain.ErrUnknownProfile.WithDetails(string(opts.Profile))
	}
	if opts.SocketPath == "" {
		return nil, domain.ErrInvalidArgument.WithDetails("socket path is empty")
	}
	if opts.Open == nil {
		opts.Open = OpenUinput
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	id := ulid.Make().String()
	return &Daemon{
		opts:       opts,
		id:         id,
		log:        opts.Logger.With("instance", id, "profile", opts.Profile.String()),
		dispatcher: service.NewDispatcher(opts.Profile),
		dropLog:    rate.Sometimes{First: 3, Interval: 10 * time.Second},
	}, nil
}

// ID returns the instance ID assigned at construction.
func (d *Daemon) ID() string { return d.id }

// SocketPath returns the command socket path.
func (d *Daemon) SocketPath() string { return d.opts.SocketPath }

// Ready reports whether Start has completed and Close has not been called.
func (d *Daemon) Ready() bool { return d.ready.Load() }

// Start creates the keyboard and then binds the command socket. On failure
// everything already acquired is released before returning.
func (d *Daemon) Start(ctx context.Context) error {
	if d.kbd != nil {
		return errors.New("daemon already started")
	}

	keys := keymap.RegisteredKeys(d.opts.Profile)
	kbd, err := d.opts.Open(ctx, d.opts.Device, keys)
	if err != nil {
		return fmt.Errorf("create keyboard: %w", err)
	}
	d.kbd = kbd
	d.log.Info("virtual keyboard created", "device", kbd.Name(), "keys", len(keys))

	var seqOpts []service.SequencerOption
	if d.opts.Sleep != nil {
		seqOpts = append(seqOpts, service.WithSleep(d.opts.Sleep))
	}
	d.seq = service.NewSequencer(kbd, d.opts.Timing, seqOpts...)

	ch, err := localserver.Bind(d.opts.SocketPath)
	if err != nil {
		d.Close()
		return fmt.Errorf("bind command socket: %w", err)
	}
	d.ch = ch
	d.ready.Store(true)
	d.log.Info("listening", "socket", ch.Path())
	return nil
}

// Run handles datagrams until ctx is cancelled or the socket is closed.
func (d *Daemon) Run(ctx context.Context) error {
	if d.ch == nil {
		return errors.New("daemon not started")
	}
	return d.ch.Serve(ctx, d.handle)
}

func (d *Daemon) handle(ctx context.Context, frame []byte) {
	action, ok := d.dispatcher.Decode(frame)
	if !ok {
		d.opts.Metrics.ObserveDatagram(metric.ResultDropped)
		d.dropLog.Do(func() {
			d.log.Debug("dropped datagram", "frame", fmt.Sprintf("%q", frame), "len", len(frame))
		})
		return
	}
	d.opts.Metrics.ObserveDatagram(metric.ResultAccepted)

	ctx = logger.WithRequestID(ctx, ulid.Make().String())
	ctx = logger.WithLogger(ctx, d.log)

	start := time.Now()
	err := d.seq.Perform(ctx, action)
	d.opts.Metrics.ObserveAction(action.Kind.String(), time.Since(start), service.Failures(err))
}

// SetTiming replaces the sequencer timing, e.g. after a config reload.
// It is a no-op before Start.
func (d *Daemon) SetTiming(t service.Timing) {
	if d.seq != nil {
		d.seq.SetTiming(t)
	}
}

// Close removes the command socket and then destroys the keyboard. It is
// safe to call at any point and more than once.
func (d *Daemon) Close() error {
	d.closeOnce.Do(func() {
		d.ready.Store(false)
		var errs []error
		if d.ch != nil {
			if err := d.ch.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close command socket: %w", err))
			}
		}
		if d.kbd != nil {
			if err := d.kbd.Close(); err != nil {
				errs = append(errs, fmt.Errorf("destroy keyboard: %w", err))
			}
		}
		d.closeErr = errors.Join(errs...)
		d.log.Info("daemon stopped")
	})
	return d.closeErr
}
