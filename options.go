package pillify

// ComposeOptions holds options for message composition.
type ComposeOptions struct {
	Flavor         Flavor
	ForceFormatted bool
	Config         *RenderConfig
}

// Option is a function that configures ComposeOptions.
type Option func(*ComposeOptions)

// WithFlavor sets the markup flavor used for the pill-substituted body.
func WithFlavor(flavor Flavor) Option {
	return func(opts *ComposeOptions) {
		opts.Flavor = flavor
	}
}

// WithForceFormatted forces formatted delivery even when the buffer
// carries no pill annotations.
func WithForceFormatted(enable bool) Option {
	return func(opts *ComposeOptions) {
		opts.ForceFormatted = enable
	}
}

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ComposeOptions) {
		opts.Config = config
	}
}

// defaultComposeOptions returns the default composition options.
func defaultComposeOptions() *ComposeOptions {
	return &ComposeOptions{
		Flavor:         FlavorMarkdown,
		ForceFormatted: false,
		Config:         DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ComposeOptions {
	options := defaultComposeOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
