package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	terms  []string
	stdout io.Writer
	watch  bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithTerms sets the raw search terms.
func WithTerms(terms []string) Option {
	return func(a *application) {
		a.terms = terms
	}
}

// WithStdout sets where results are written. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}

// WithWatch keeps the application running after the first pass and
// re-matches notes as they change.
func WithWatch(on bool) Option {
	return func(a *application) {
		a.watch = on
	}
}
