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

package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want Style
		ok   bool
	}{
		{name: "empty", s: "", want: StyleNever, ok: true},
		{name: "never", s: "never", want: StyleNever, ok: true},
		{name: "always", s: "Always", want: StyleAlways, ok: true},
		{name: "auto", s: " auto ", want: StyleAuto, ok: true},
		{name: "unknown", s: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseStyle(tt.s)
			if !tt.ok {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, st)
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		level logrus.Level
		color bool
		ok    bool
	}{
		{
			name:  "defaults",
			level: logrus.InfoLevel,
			ok:    true,
		},
		{
			name:  "level",
			opts:  Options{Level: "warn"},
			level: logrus.WarnLevel,
			ok:    true,
		},
		{
			name:  "debug overrides level",
			opts:  Options{Level: "error", Debug: true},
			level: logrus.DebugLevel,
			ok:    true,
		},
		{
			name:  "always colored",
			opts:  Options{Style: StyleAlways},
			level: logrus.InfoLevel,
			color: true,
			ok:    true,
		},
		{
			name:  "auto on a buffer",
			opts:  Options{Style: StyleAuto},
			level: logrus.InfoLevel,
			ok:    true,
		},
		{
			name: "bad level",
			opts: Options{Level: "loud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Out = &buf

			logger, err := New(tt.opts)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.level, logger.GetLevel())

			f, ok := logger.Formatter.(*logrus.TextFormatter)
			require.True(t, ok)
			assert.Equal(t, tt.color, f.ForceColors)
			assert.Equal(t, !tt.color, f.DisableColors)
		})
	}
}

func TestNewWrites(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Out: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.WithField("offset", 7).Warn("Reached end of table")

	assert.Equal(t, "level=warning msg=\"Reached end of table\" offset=7\n", buf.String())
}
