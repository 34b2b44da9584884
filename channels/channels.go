// Package channels is the catalog of legal 802.11 frequency channels.
//
// The catalog is built once at init and never modified afterwards, so it is
// safe for concurrent reads.
package channels

import (
	"cmp"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/viam-modules/wifiphy/standards"
)

// Error variables for catalog lookups.
var (
	// ErrAmbiguousOrUnknownChannel is returned when criteria match zero or several channels.
	ErrAmbiguousOrUnknownChannel = errors.New("no unique channel found given the specified criteria")
	// ErrChannelNotFound is returned when no channel matches criteria expected to match.
	ErrChannelNotFound = errors.New("no channel found given the specified criteria")
)

// Info describes a frequency channel.
type Info struct {
	Number       uint8
	FrequencyMHz uint16
	WidthMHz     uint16
	Band         standards.Band
	Type         standards.ChannelType
}

func (i Info) String() string {
	return fmt.Sprintf("{%d %d %d %s}", i.Number, i.FrequencyMHz, i.WidthMHz, i.Band)
}

// Handle references a catalog entry. Two handles are equal only if they reference the same entry.
type Handle int

// First is the handle of the first catalog entry in canonical order.
const First Handle = 0

// Criteria selects catalog entries. Zero values are wildcards.
type Criteria struct {
	Number       uint8
	FrequencyMHz uint16
	WidthMHz     uint16
	Standard     standards.Standard
	Band         standards.Band
}

func (c Criteria) String() string {
	return fmt.Sprintf("number=%d frequency=%d width=%d standard=%s band=%s",
		c.Number, c.FrequencyMHz, c.WidthMHz, c.Standard, c.Band)
}

func init() {
	// canonical order: number, frequency, width, band, type
	slices.SortFunc(frequencyChannels, compareInfo)
	for i := 1; i < len(frequencyChannels); i++ {
		if frequencyChannels[i-1] == frequencyChannels[i] {
			panic(fmt.Sprintf("duplicate frequency channel %v", frequencyChannels[i]))
		}
	}
}

func compareInfo(a, b Info) int {
	if c := cmp.Compare(a.Number, b.Number); c != 0 {
		return c
	}
	if c := cmp.Compare(a.FrequencyMHz, b.FrequencyMHz); c != 0 {
		return c
	}
	if c := cmp.Compare(a.WidthMHz, b.WidthMHz); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Band, b.Band); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

// Len returns the number of catalog entries.
func Len() int {
	return len(frequencyChannels)
}

// Lookup returns the catalog entry referenced by the handle.
func Lookup(h Handle) Info {
	return frequencyChannels[h]
}

// All returns a copy of the catalog in canonical order.
func All() []Info {
	return slices.Clone(frequencyChannels)
}

func (c Criteria) matches(channel Info) bool {
	if c.Number != 0 && channel.Number != c.Number {
		return false
	}
	if c.FrequencyMHz != 0 && channel.FrequencyMHz != c.FrequencyMHz {
		return false
	}
	if c.WidthMHz != 0 && channel.WidthMHz != c.WidthMHz {
		return false
	}
	if c.Standard != standards.Unspecified && channel.Type != standards.ChannelTypeFor(c.Standard) {
		return false
	}
	if c.Band != standards.BandUnspecified && channel.Band != c.Band {
		return false
	}
	return true
}

// FindFirst returns the first catalog entry at or after start that matches the criteria.
// If a standard is given, no entry matches when the band is not allowed for the standard
// or the width exceeds the standard's maximum channel width.
func FindFirst(c Criteria, start Handle) (Handle, bool) {
	if c.Standard != standards.Unspecified {
		maxWidth := standards.MaxChannelWidth(standards.ModulationClassFor(c.Standard))
		if !standards.IsBandAllowed(c.Standard, c.Band) || c.WidthMHz > maxWidth {
			return 0, false
		}
	}
	if start < First {
		start = First
	}
	for h := start; int(h) < len(frequencyChannels); h++ {
		if c.matches(frequencyChannels[h]) {
			return h, true
		}
	}
	return 0, false
}

// FindUnique returns the only catalog entry matching the criteria.
func FindUnique(c Criteria) (Handle, error) {
	h, ok := FindFirst(c, First)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrAmbiguousOrUnknownChannel, c)
	}
	if next, ok := FindFirst(c, h+1); ok {
		return 0, fmt.Errorf("%w: %v matches both %v and %v",
			ErrAmbiguousOrUnknownChannel, c, Lookup(h), Lookup(next))
	}
	return h, nil
}

// FindAll returns every catalog entry matching the criteria, in canonical order.
func FindAll(c Criteria) []Info {
	var infos []Info
	for h, ok := FindFirst(c, First); ok; h, ok = FindFirst(c, h+1) {
		infos = append(infos, Lookup(h))
	}
	return infos
}

// DefaultChannelNumber returns the number of the first channel of the given width
// for the given standard and band.
func DefaultChannelNumber(widthMHz uint16, std standards.Standard, band standards.Band) (uint8, error) {
	h, ok := FindFirst(Criteria{WidthMHz: widthMHz, Standard: std, Band: band}, First)
	if !ok {
		return 0, fmt.Errorf("%w: no default %d MHz channel for %s in the %s band",
			ErrChannelNotFound, widthMHz, std, band)
	}
	return Lookup(h).Number, nil
}
