package channels

import (
	"errors"
	"testing"

	"go.viam.com/test"

	"github.com/viam-modules/wifiphy/standards"
)

func TestCatalog(t *testing.T) {
	all := All()
	test.That(t, len(all), test.ShouldEqual, Len())
	test.That(t, Len(), test.ShouldEqual, 212)

	for i := 1; i < len(all); i++ {
		// strictly increasing, so there are no duplicates either
		test.That(t, compareInfo(all[i-1], all[i]), test.ShouldEqual, -1)
	}

	// All returns a copy
	all[0].Number = 99
	test.That(t, Lookup(First).Number, test.ShouldEqual, 1)

	for _, info := range all {
		switch info.Type {
		case standards.DSSS:
			test.That(t, info.WidthMHz, test.ShouldEqual, 22)
			test.That(t, info.Band, test.ShouldEqual, standards.Band2_4GHz)
		case standards.Ch80211p:
			test.That(t, []uint16{5, 10}, test.ShouldContain, info.WidthMHz)
			test.That(t, info.Band, test.ShouldEqual, standards.Band5GHz)
		case standards.OFDM:
			test.That(t, []uint16{20, 40, 80, 160}, test.ShouldContain, info.WidthMHz)
		}
	}
}

func TestFindFirst(t *testing.T) {
	// channel 1 exists as DSSS and OFDM in 2.4 GHz and as OFDM in 6 GHz
	h, ok := FindFirst(Criteria{Number: 1}, First)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, Lookup(h), test.ShouldResemble, Info{1, 2412, 20, standards.Band2_4GHz, standards.OFDM})

	h, ok = FindFirst(Criteria{Number: 1}, h+1)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, Lookup(h), test.ShouldResemble, Info{1, 2412, 22, standards.Band2_4GHz, standards.DSSS})

	h, ok = FindFirst(Criteria{Number: 1}, h+1)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, Lookup(h).Band, test.ShouldEqual, standards.Band6GHz)

	_, ok = FindFirst(Criteria{Number: 1}, h+1)
	test.That(t, ok, test.ShouldBeFalse)

	// the standard selects the channel type
	h, ok = FindFirst(Criteria{Number: 1, Standard: standards.Std80211b, Band: standards.Band2_4GHz}, First)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, Lookup(h).Type, test.ShouldEqual, standards.DSSS)

	// the band is not allowed for the standard
	_, ok = FindFirst(Criteria{Number: 36, Standard: standards.Std80211ac, Band: standards.Band2_4GHz}, First)
	test.That(t, ok, test.ShouldBeFalse)

	// an unspecified band is never allowed once a standard is given
	_, ok = FindFirst(Criteria{Number: 36, Standard: standards.Std80211ac}, First)
	test.That(t, ok, test.ShouldBeFalse)

	// the width exceeds the maximum width of the standard
	_, ok = FindFirst(Criteria{Number: 38, WidthMHz: 40, Standard: standards.Std80211a, Band: standards.Band5GHz}, First)
	test.That(t, ok, test.ShouldBeFalse)

	h, ok = FindFirst(Criteria{Number: 38, WidthMHz: 40, Standard: standards.Std80211n, Band: standards.Band5GHz}, First)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, Lookup(h).FrequencyMHz, test.ShouldEqual, 5190)

	// a negative start is clamped to the first entry
	h, ok = FindFirst(Criteria{}, Handle(-5))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, h, test.ShouldEqual, First)
}

func TestFindUnique(t *testing.T) {
	h, err := FindUnique(Criteria{Number: 42, FrequencyMHz: 5210, WidthMHz: 80, Band: standards.Band5GHz})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, Lookup(h), test.ShouldResemble, Info{42, 5210, 80, standards.Band5GHz, standards.OFDM})

	// DSSS and OFDM channel 1 share the number, frequency and band
	_, err = FindUnique(Criteria{Number: 1, Band: standards.Band2_4GHz})
	test.That(t, errors.Is(err, ErrAmbiguousOrUnknownChannel), test.ShouldBeTrue)

	// without a band, 20 MHz channel 1 exists in 2.4 GHz and 6 GHz
	_, err = FindUnique(Criteria{Number: 1, WidthMHz: 20})
	test.That(t, errors.Is(err, ErrAmbiguousOrUnknownChannel), test.ShouldBeTrue)

	_, err = FindUnique(Criteria{Number: 2, FrequencyMHz: 5180})
	test.That(t, errors.Is(err, ErrAmbiguousOrUnknownChannel), test.ShouldBeTrue)
}

func TestDefaultChannelNumber(t *testing.T) {
	tests := []struct {
		name     string
		width    uint16
		standard standards.Standard
		band     standards.Band
		expected uint8
	}{
		{"802.11b", 22, standards.Std80211b, standards.Band2_4GHz, 1},
		{"802.11g", 20, standards.Std80211g, standards.Band2_4GHz, 1},
		{"802.11n 40 MHz 2.4 GHz", 40, standards.Std80211n, standards.Band2_4GHz, 3},
		{"802.11a", 20, standards.Std80211a, standards.Band5GHz, 36},
		{"802.11ac 40 MHz", 40, standards.Std80211ac, standards.Band5GHz, 38},
		{"802.11ac 80 MHz", 80, standards.Std80211ac, standards.Band5GHz, 42},
		{"802.11ac 160 MHz", 160, standards.Std80211ac, standards.Band5GHz, 50},
		{"802.11p 10 MHz", 10, standards.Std80211p, standards.Band5GHz, 172},
		{"802.11p 5 MHz", 5, standards.Std80211p, standards.Band5GHz, 171},
		{"802.11ax 6 GHz 20 MHz", 20, standards.Std80211ax, standards.Band6GHz, 1},
		{"802.11ax 6 GHz 80 MHz", 80, standards.Std80211ax, standards.Band6GHz, 7},
		{"802.11be 6 GHz 160 MHz", 160, standards.Std80211be, standards.Band6GHz, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, err := DefaultChannelNumber(tt.width, tt.standard, tt.band)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, number, test.ShouldEqual, tt.expected)
		})
	}

	// no 80 MHz channel in the 2.4 GHz band
	_, err := DefaultChannelNumber(80, standards.Std80211ax, standards.Band2_4GHz)
	test.That(t, errors.Is(err, ErrChannelNotFound), test.ShouldBeTrue)

	// 802.11a does not operate in the 2.4 GHz band
	_, err = DefaultChannelNumber(20, standards.Std80211a, standards.Band2_4GHz)
	test.That(t, errors.Is(err, ErrChannelNotFound), test.ShouldBeTrue)
}

func TestFindAll(t *testing.T) {
	dsss := FindAll(Criteria{Standard: standards.Std80211b, Band: standards.Band2_4GHz})
	test.That(t, len(dsss), test.ShouldEqual, 14)
	for _, info := range dsss {
		test.That(t, info.Type, test.ShouldEqual, standards.DSSS)
	}

	// without a width the standard only selects the channel type
	test.That(t, len(FindAll(Criteria{Standard: standards.Std80211g, Band: standards.Band2_4GHz})), test.ShouldEqual, 22)
	test.That(t, len(FindAll(Criteria{Standard: standards.Std80211g, WidthMHz: 20, Band: standards.Band2_4GHz})), test.ShouldEqual, 13)
	test.That(t, FindAll(Criteria{Standard: standards.Std80211g, WidthMHz: 40, Band: standards.Band2_4GHz}), test.ShouldBeEmpty)

	test.That(t, len(FindAll(Criteria{Standard: standards.Std80211p, Band: standards.Band5GHz})), test.ShouldEqual, 14)
	test.That(t, len(FindAll(Criteria{})), test.ShouldEqual, Len())
	test.That(t, FindAll(Criteria{Standard: standards.Std80211ac, Band: standards.Band2_4GHz}), test.ShouldBeEmpty)
}
