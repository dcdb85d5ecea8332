// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log configures the logrus logger used by the command line tools.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// A Style selects whether log output is colored.
type Style string

// Styles accepted in LOG_STYLE.
const (
	StyleNever  Style = "never"
	StyleAlways Style = "always"
	StyleAuto   Style = "auto"
)

// ParseStyle parses a Style, case-insensitively.  The empty string is
// StyleNever.
func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StyleNever, nil
	case StyleNever, StyleAlways, StyleAuto:
		return st, nil
	default:
		return "", errors.Errorf("unknown log style %q", s)
	}
}

// Options configure a logger.
type Options struct {
	// Level is a logrus level name; empty means info.
	Level string
	Style Style

	// Debug forces the debug level.
	Debug bool

	// Out defaults to os.Stderr.
	Out io.Writer
}

// New creates a logger from opts.
func New(opts Options) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	switch {
	case opts.Debug:
		level = logrus.DebugLevel
	case opts.Level != "":
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrap(err, "parse log level")
		}
		level = l
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	color := colored(opts.Style, out)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      color,
		DisableColors:    !color,
		DisableTimestamp: !color,
	})

	return logger, nil
}

// colored reports whether output to w should be colored in style st.
func colored(st Style, w io.Writer) bool {
	switch st {
	case StyleAlways:
		return true
	case StyleAuto:
		f, ok := w.(interface{ Fd() uintptr })
		if !ok {
			return false
		}

		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return false
	}
}
