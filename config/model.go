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
	"fmt"

	libval "github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// setDefaults fills in zero fields with the package defaults, mirroring the
// surrounding project's "inherit default then validate" shape.
func (c *Config) setDefaults() {
	def := Default()

	if c.Backlog == 0 {
		c.Backlog = def.Backlog
	}
	if c.RateWindow == 0 {
		c.RateWindow = def.RateWindow
	}
	if c.RateCapacity == 0 {
		c.RateCapacity = def.RateCapacity
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = def.ReadBufferSize
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
}

// Validate fills in defaults for zero fields and then checks the struct
// tags with go-playground/validator, returning a descriptive error per
// offending field.
func (c *Config) Validate() error {
	c.setDefaults()

	if err := libval.New().Struct(c); err != nil {
		if _, ok := err.(*libval.InvalidValidationError); ok {
			return err
		}

		var msgs string
		for _, er := range err.(libval.ValidationErrors) {
			if msgs != "" {
				msgs += "; "
			}
			msgs += fmt.Sprintf("field %q fails constraint %q", er.Namespace(), er.ActualTag())
		}

		return fmt.Errorf("config: %s", msgs)
	}

	return nil
}
