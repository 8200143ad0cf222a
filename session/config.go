package session

import (
	"errors"
	"fmt"

	"github.com/npillmayer/quadstroke/bpath"
)

var (
	// ErrNoBackend indicates a session created without a rendering backend.
	ErrNoBackend = errors.New("session needs a backend")
	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("invalid session configuration")
	// ErrCapacityExceeded indicates a click which would commit more curves
	// than the buffers have been sized for.
	ErrCapacityExceeded = errors.New("curve capacity exceeded")
)

// Default configuration values.
const (
	DefaultMaxCurves   = 1000
	DefaultStrokeWidth = 10
	DefaultFrameWindow = 100
)

// Config holds the externally supplied constants of a session.
type Config struct {
	MaxCurves   int     // capacity of the preallocated buffers, in curves
	StrokeWidth float32 // stroke half-width, in window units
	FrameWindow int     // number of frames averaged for frame rate reports
}

// DefaultConfig returns the configuration used if no options are given.
func DefaultConfig() Config {
	return Config{
		MaxCurves:   DefaultMaxCurves,
		StrokeWidth: DefaultStrokeWidth,
		FrameWindow: DefaultFrameWindow,
	}
}

// Option configures a Session during creation.
//
// Example:
//
//	s, err := session.New(backend, session.WithMaxCurves(200), session.WithStrokeWidth(4))
type Option func(*Config)

// WithMaxCurves sets the curve capacity of the session's buffers.
func WithMaxCurves(n int) Option {
	return func(c *Config) {
		c.MaxCurves = n
	}
}

// WithStrokeWidth sets the stroke half-width.
func WithStrokeWidth(w float32) Option {
	return func(c *Config) {
		c.StrokeWidth = w
	}
}

// WithFrameWindow sets the number of frames averaged for frame rate reports.
func WithFrameWindow(n int) Option {
	return func(c *Config) {
		c.FrameWindow = n
	}
}

func (c Config) validate() error {
	if c.MaxCurves < 1 || c.MaxCurves > bpath.MaxCurves {
		return fmt.Errorf("%w: max curves must be in [1,%d], is %d", ErrInvalidConfig, bpath.MaxCurves, c.MaxCurves)
	}
	if !(c.StrokeWidth >= 0) {
		return fmt.Errorf("%w: stroke width must not be negative, is %g", ErrInvalidConfig, c.StrokeWidth)
	}
	if c.FrameWindow < 1 {
		return fmt.Errorf("%w: frame window must be positive, is %d", ErrInvalidConfig, c.FrameWindow)
	}
	return nil
}
