package tabstrip

// Option configures a Strip during creation.
// Use functional options to customize Strip behavior.
//
// Example:
//
//	// Default scrolling strategy, LTR, stock tuning
//	strip := tabstrip.New(model, host)
//
//	// Cascading strategy with custom tuning
//	strip := tabstrip.New(model, host,
//	    tabstrip.WithStacker(tabstrip.NewCascadingStacker()),
//	    tabstrip.WithParams(params))
type Option func(*stripOptions)

// stripOptions holds optional configuration for Strip creation.
type stripOptions struct {
	stacker Stacker
	params  Params
	rtl     bool
}

// defaultStripOptions returns the default strip options.
func defaultStripOptions() stripOptions {
	return stripOptions{
		stacker: NewScrollingStacker(),
		params:  DefaultParams(),
	}
}

// WithStacker sets the initial stacking strategy for the Strip.
// The strategy can be swapped later with [Strip.SetStacker].
func WithStacker(st Stacker) Option {
	return func(o *stripOptions) {
		if st != nil {
			o.stacker = st
		}
	}
}

// WithParams sets the tuning constants for the Strip.
// See [DefaultParams] for the stock values.
func WithParams(p Params) Option {
	return func(o *stripOptions) {
		o.params = p
	}
}

// WithRTL lays the strip out right-to-left. The layout direction can
// be changed later with [Strip.SetRTL].
func WithRTL(rtl bool) Option {
	return func(o *stripOptions) {
		o.rtl = rtl
	}
}
