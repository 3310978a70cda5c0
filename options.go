package gllab

import "log/slog"

// LoaderOption configures the OBJ loader.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	logger      *slog.Logger
	triangulate bool
}

// WithLogger sets the logger used for fallbacks and skipped lines.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(o *loaderOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTriangulation fans faces with more than three vertices into triangles
// (0, i, i+1). Without it faces are emitted exactly as the file lists them.
func WithTriangulation() LoaderOption {
	return func(o *loaderOptions) { o.triangulate = true }
}

func applyLoaderOptions(opts []LoaderOption) loaderOptions {
	o := loaderOptions{logger: labLogger}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
