/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package config

import (
	"github.com/sirupsen/logrus"

	"github.com/evreactor/evreactor/duration"
)

// Config holds every tunable of the reactor. The zero value is not ready to
// use; call Default (or Validate, which fills in defaults for zero fields
// before checking them) first.
type Config struct {
	// Backlog is the listen backlog passed to the TCP listener.
	Backlog int `json:"backlog" yaml:"backlog" toml:"backlog" mapstructure:"backlog" validate:"gte=0"`

	// ConnectTimeout is the default timeout applied to an outbound Connect
	// call that passes a zero timeout of its own; zero means no timeout.
	ConnectTimeout duration.Duration `json:"connectTimeout" yaml:"connectTimeout" toml:"connectTimeout" mapstructure:"connectTimeout"`

	// RateWindow is the trailing window used by every endpoint's rate
	// estimator.
	RateWindow duration.Duration `json:"rateWindow" yaml:"rateWindow" toml:"rateWindow" mapstructure:"rateWindow"`

	// RateCapacity bounds how many samples a rate estimator retains.
	RateCapacity int `json:"rateCapacity" yaml:"rateCapacity" toml:"rateCapacity" mapstructure:"rateCapacity" validate:"gte=2"`

	// ReadBufferSize is the chunk size used for each non-blocking read
	// syscall issued from the facade.
	ReadBufferSize int `json:"readBufferSize" yaml:"readBufferSize" toml:"readBufferSize" mapstructure:"readBufferSize" validate:"gte=1"`

	// Logger receives the reactor's exceptional-but-handled log lines. If
	// nil, Validate fills in logrus.StandardLogger().
	Logger *logrus.Logger `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

// Default returns a Config with the reactor's documented defaults applied.
func Default() Config {
	return Config{
		Backlog:        10,
		RateWindow:     duration.Seconds(30),
		RateCapacity:   100,
		ReadBufferSize: 64 * 1024,
		Logger:         logrus.StandardLogger(),
	}
}
