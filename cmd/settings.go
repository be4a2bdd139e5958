/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/rstms/hexout/hexout"
)

// settingsFromViper builds dump settings from the flags, config file and environment.
func settingsFromViper() (hexout.Settings, error) {
	s := hexout.DefaultSettings()
	var err error

	s.AddressOrigin, err = strconv.ParseUint(ViperGetString("origin"), 0, 64)
	if err != nil {
		return s, fmt.Errorf("origin: %w", err)
	}
	if s.AddressWidth, err = viperGetNumber("address-width"); err != nil {
		return s, err
	}
	if s.GroupSize, err = viperGetNumber("group-size"); err != nil {
		return s, err
	}
	if s.GroupsPerLine, err = viperGetNumber("groups-per-line"); err != nil {
		return s, err
	}
	if placeholder := ViperGetString("placeholder"); placeholder != "" {
		if len(placeholder) != 1 || placeholder[0] < 0x20 || placeholder[0] > 0x7e {
			return s, fmt.Errorf("placeholder: %q is not a single printable ASCII character", placeholder)
		}
		s.InvalidDataPlaceholder = placeholder[0]
	}
	if name := ViperGetString("error-color"); name != "" {
		s.ErrorPrefix, s.ErrorPostfix, err = errorColor(name)
		if err != nil {
			return s, err
		}
	}
	s.BigEndian = ViperGetBool("big-endian")
	s.Uppercase = ViperGetBool("uppercase")
	s.Strict = ViperGetBool("strict")
	s.AlignAddress = !ViperGetBool("no-align")
	s.ShowASCII = !ViperGetBool("no-ascii")
	s.ShowCenterline = !ViperGetBool("no-centerline")
	s.ShowOffset = !ViperGetBool("no-offset")
	return s, nil
}

// viperGetNumber parses a decimal or 0x prefixed option value.
func viperGetNumber(key string) (int, error) {
	value, err := strconv.ParseInt(ViperGetString(key), 0, 0)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return int(value), nil
}
