// seehuhn.de/go/sandpath - path processing for sand drawing tables
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sandpath

import "log/slog"

// Option configures a [Clipper] or a call to [Polish].
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithLogger sends diagnostics to l instead of the package-wide logger
// set by [SetLogger].
//
// Example:
//
//	l := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	out, err := sandpath.Polish(p, bounds, sandpath.WithLogger(l))
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
