package gridscroll

import "go.uber.org/zap"

// Option configures a Strategy at construction time.
type Option func(*options)

// options holds all strategy configuration via the extensions map.
// All options use the OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for strategy options.
//
// Example:
//
//	var OptTrace = gridscroll.NewOptKey("trace", false)
//	s, err := gridscroll.New(gridscroll.WithOpt(OptTrace, true))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// --- Layout Options ---
var (
	OptLayout       = NewOptKey("layout", DefaultLayout())
	OptRowSize      = NewOptKey[float64]("rowSize", DefaultRowSize)
	OptColumns      = NewOptKey("columns", DefaultColumns)
	OptHeaderHeight = NewOptKey[float64]("headerHeight", 0)
	OptFooterHeight = NewOptKey[float64]("footerHeight", 0)
	OptMinBufferPx  = NewOptKey[float64]("minBufferPx", DefaultMinBufferPx)
	OptMaxBufferPx  = NewOptKey[float64]("maxBufferPx", DefaultMaxBufferPx)
)

// --- Logging Options ---
var (
	OptLogger = NewOptKey[*zap.Logger]("logger", nil)
)

// WithLayout sets the whole initial layout. Individual With* layout options
// applied alongside it take precedence.
func WithLayout(l Layout) Option { return WithOpt(OptLayout, l) }

// WithRowSize sets the pixel height of one full row.
func WithRowSize(px float64) Option { return WithOpt(OptRowSize, px) }

// WithColumns sets the number of items packed per row.
func WithColumns(cols int) Option { return WithOpt(OptColumns, cols) }

// WithHeaderHeight sets the height of the non-virtualized header.
func WithHeaderHeight(px float64) Option { return WithOpt(OptHeaderHeight, px) }

// WithFooterHeight sets the height of the non-virtualized footer.
func WithFooterHeight(px float64) Option { return WithOpt(OptFooterHeight, px) }

// WithBuffer sets the minimum and maximum prefetch buffer in pixels.
func WithBuffer(minPx, maxPx float64) Option {
	return func(o *options) {
		WithOpt(OptMinBufferPx, minPx)(o)
		WithOpt(OptMaxBufferPx, maxPx)(o)
	}
}

// WithLogger sets the logger for one strategy instead of the package logger.
func WithLogger(l *zap.Logger) Option { return WithOpt(OptLogger, l) }

// layoutFrom resolves the initial layout from the applied options.
func layoutFrom(o options) Layout {
	l := GetOpt(o, OptLayout)
	if HasOpt(o, OptRowSize) {
		l.RowSize = GetOpt(o, OptRowSize)
	}
	if HasOpt(o, OptColumns) {
		l.Columns = GetOpt(o, OptColumns)
	}
	if HasOpt(o, OptHeaderHeight) {
		l.HeaderHeight = GetOpt(o, OptHeaderHeight)
	}
	if HasOpt(o, OptFooterHeight) {
		l.FooterHeight = GetOpt(o, OptFooterHeight)
	}
	if HasOpt(o, OptMinBufferPx) {
		l.MinBufferPx = GetOpt(o, OptMinBufferPx)
	}
	if HasOpt(o, OptMaxBufferPx) {
		l.MaxBufferPx = GetOpt(o, OptMaxBufferPx)
	}
	return l
}
