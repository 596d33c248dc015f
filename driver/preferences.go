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

package driver

import (
	"github.com/fpedrolucas95/Atom/curated"
	"github.com/fpedrolucas95/Atom/hardware/ps2"
	"github.com/fpedrolucas95/Atom/prefs"
	"github.com/fpedrolucas95/Atom/resources"
)

// Preferences defines and collates all the preference values used by the
// driver.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of status polls for a single wait during the
	// handshake. applied when InitMouse() runs
	PollBudget prefs.Int

	// mouse tuning applied during the handshake. a negative value leaves
	// the device default
	SampleRate prefs.Int
	Resolution prefs.Int

	// ask for 1:1 scaling during the handshake
	Scaling11 prefs.Bool

	// probe the mouse device id after the handshake
	Identify prefs.Bool

	// the maximum number of bytes consumed in a single drain pass
	DrainGuard prefs.Int
}

const (
	pollBudget = ps2.DefaultPollBudget
	sampleRate = -1
	resolution = -1
	scaling11  = false
	identify   = false
	drainGuard = 100
)

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("controller.pollbudget", &p.PollBudget)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("controller.samplerate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("controller.resolution", &p.Resolution)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("controller.scaling11", &p.Scaling11)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("controller.identify", &p.Identify)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("driver.drainguard", &p.DrainGuard)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// a missing prefs file is fine. the defaults stand
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all driver preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.PollBudget.Set(pollBudget)
	p.SampleRate.Set(sampleRate)
	p.Resolution.Set(resolution)
	p.Scaling11.Set(scaling11)
	p.Identify.Set(identify)
	p.DrainGuard.Set(drainGuard)
}

// Load driver preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current driver preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
