// This file is part of Atom.
//
// Atom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Atom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Atom.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value is the underlying Go value of a preference.
type Value interface{}

// every supported preference type implements the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool is a preference that is either true or false. The zero value is false
// and ready to use.
type Bool struct {
	pref
	value atomic.Value // bool
}

func (p *Bool) String() string {
	ov := p.value.Load()
	if ov == nil {
		return "false"
	}
	return strconv.FormatBool(ov.(bool))
}

// Set the value from a bool or from a string. String comparison is against
// "true", without regard to case. Any other string means false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value.Store(v)
	case string:
		p.value.Store(strings.ToLower(v) == "true")
	default:
		return fmt.Errorf("set: %T is not usable as a prefs.Bool", v)
	}
	return nil
}

// Get returns the current value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String is a preference holding freeform text, with an optional maximum
// length.
type String struct {
	pref
	maxLen int
	value  atomic.Value // string
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// SetMaxLen limits the length of the string. Zero or less removes the limit.
// A string already stored is cropped straight away and the cropped portion
// is not recoverable.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max

	ov := p.value.Load()
	if ov == nil {
		// nothing stored yet
		return
	}

	if p.maxLen > 0 && len(ov.(string)) > p.maxLen {
		p.value.Store(ov.(string)[:p.maxLen])
	}
}

// Set the value from a string.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%s", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	p.value.Store(nv)
	return nil
}

// Get returns the current value.
func (p *String) Get() Value {
	return p.String()
}

// Reset the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int is a preference holding a signed number.
type Int struct {
	pref
	value atomic.Value // int
}

func (p *Int) String() string {
	ov := p.value.Load()
	if ov == nil {
		return "0"
	}
	return strconv.Itoa(ov.(int))
}

// Set the value from any common integer type or from a string holding a
// number.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("set: %T is not usable as a prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("set: %T is not usable as a prefs.Int", v)
	}
	p.value.Store(nv)
	return nil
}

// Get returns the current value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset the value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
