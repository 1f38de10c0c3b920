package enumdesc

import (
	"context"

	"github.com/diesi/aienum/internal/errors"
)

// NameFunc maps a label to a candidate identifier. An empty result means no
// identifier is available and the entry is dropped; an error aborts Extract.
type NameFunc func(ctx context.Context, label string) (string, error)

type options struct {
	transform func(string) string
	trailing  bool
}

// Option tunes Extract.
type Option func(*options)

// WithoutCasing keeps resolver output verbatim.
func WithoutCasing() Option {
	return func(o *options) { o.transform = nil }
}

// WithIdentifierTransform replaces DefaultIdentifier as the casing step.
func WithIdentifierTransform(fn func(string) string) Option {
	return func(o *options) { o.transform = fn }
}

// WithTrailingSegment lets the last marker claim the text up to the end of
// the description. Without it that text is never read.
func WithTrailingSegment() Option {
	return func(o *options) { o.trailing = true }
}

// Extract parses desc into ordered entries, calling resolve once per
// non-empty label in marker order. It returns nil, nil when the description
// has fewer than two markers or no entry survives.
func Extract(ctx context.Context, desc string, resolve NameFunc, opts ...Option) ([]Entry, error) {
	o := options{transform: DefaultIdentifier}
	for _, opt := range opts {
		opt(&o)
	}

	markers := LocateMarkers(desc)
	if len(markers) < 2 {
		return nil, nil
	}

	var entries []Entry
	for i, m := range markers {
		end := len(desc)
		if i+1 < len(markers) {
			end = markers[i+1]
		} else if !o.trailing {
			break
		}

		label := Sanitize(desc[m+1 : end])
		if label == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name, err := resolve(ctx, label)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve label %q", label)
		}
		if name == "" {
			continue
		}
		if o.transform != nil {
			if name = o.transform(name); name == "" {
				continue
			}
		}
		entries = append(entries, Entry{
			Label:      label,
			Value:      IntValue(int(desc[m] - '0')),
			Identifier: name,
		})
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries, nil
}
