package tablegrid

import "fmt"

// Option configures a [Formatter].
type Option func(*Formatter) error

// WithHorizontalCount sets how many tables are placed side by side in each
// band. n must be positive. Default: 1.
func WithHorizontalCount(n int) Option {
	return func(f *Formatter) error {
		if n < 1 {
			return fmt.Errorf("%w: horizontal count must be positive, got %d", ErrInvalidOption, n)
		}
		f.horizontalCount = n
		return nil
	}
}

// WithPreserveOrder controls whether tables keep their insertion order
// within a band. When false, each band is sorted by descending row count.
// Default: true.
func WithPreserveOrder(preserve bool) Option {
	return func(f *Formatter) error {
		f.preserveOrder = preserve
		return nil
	}
}

// WithTablePadding sets the number of spaces between adjacent tables in a
// band. n must not be negative. Default: 1.
func WithTablePadding(n int) Option {
	return func(f *Formatter) error {
		if n < 0 {
			return fmt.Errorf("%w: table padding must not be negative, got %d", ErrInvalidOption, n)
		}
		f.tablePadding = n
		return nil
	}
}
