package etch

import (
	"fmt"

	"go.uber.org/zap"
)

// Driver owns an engine and a canvas and drives an element tree through one
// full layout pass and one full paint pass per frame. It is single-threaded;
// frame pacing is the caller's concern.
type Driver[V any] struct {
	engine *Engine
	canvas *Canvas
	log    *zap.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*driverConfig)

type driverConfig struct {
	log *zap.Logger
}

// WithLogger sets the logger used for pass diagnostics and soft paint
// failures. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) DriverOption {
	return func(cfg *driverConfig) {
		cfg.log = log
	}
}

// NewDriver creates a driver with a fresh engine and canvas.
func NewDriver[V any](opts ...DriverOption) *Driver[V] {
	cfg := driverConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return &Driver[V]{
		engine: NewEngine(),
		canvas: NewCanvas(),
		log:    cfg.log,
	}
}

// RenderFrame runs one frame: layout pass, solve, paint pass. It returns the
// recorded paint ops sorted by paint order. Layout and solve failures abort
// the frame; paint never fails.
func (d *Driver[V]) RenderFrame(root *AnyElement[V], view *V, width, height int) ([]PaintOp, error) {
	d.engine.Reset()
	d.canvas.Reset()

	rootID, err := root.Layout(view, NewLayoutContext(d.engine))
	if err != nil {
		return nil, fmt.Errorf("layout pass: %w", err)
	}
	d.log.Debug("layout pass complete",
		zap.Uint64("root_id", uint64(rootID)),
		zap.Int("nodes", d.engine.Len()),
	)

	if err := d.engine.Solve(rootID, width, height); err != nil {
		return nil, fmt.Errorf("solve layout: %w", err)
	}

	root.Paint(view, NewPaintContext(d.engine, d.canvas, d.log))
	d.log.Debug("paint pass complete", zap.Int("ops", d.canvas.Len()))

	return d.canvas.Ops(), nil
}
