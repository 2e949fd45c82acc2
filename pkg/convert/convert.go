// Package convert holds the pure calculator logic behind the portal's
// 便利なツール pages: unit conversion across the agricultural domains
// (area, weight, volume, concentration) and pesticide dilution.
//
// Both calculators back a live-typing UI, so partial or non-numeric
// input yields an empty result rather than an error.
package convert

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type Domain string

const (
	Area          Domain = "area"
	Weight        Domain = "weight"
	Volume        Domain = "volume"
	Concentration Domain = "concentration"
)

type Unit string

const (
	M2      Unit = "m2"
	Are     Unit = "a"
	Hectare Unit = "ha"

	Gram Unit = "g"
	Kilo Unit = "kg"
	Ton  Unit = "t"

	MilliL Unit = "mL"
	Liter  Unit = "L"
	KiloL  Unit = "kL"

	PPM     Unit = "ppm"
	Percent Unit = "percent"
)

var (
	ErrUnknownDomain = errors.New("unknown conversion domain")
	ErrUnknownUnit   = errors.New("unit does not belong to domain")
)

// spec fixes a domain's unit set: each unit's magnitude expressed in the
// domain's smallest unit, and its display precision. Deriving pairwise
// factors from one base keeps the table mutually consistent.
type spec struct {
	units []Unit
	base  map[Unit]float64
	prec  map[Unit]int
}

var domains = map[Domain]spec{
	Area: {
		units: []Unit{M2, Are, Hectare},
		base:  map[Unit]float64{M2: 1, Are: 100, Hectare: 10000},
		prec:  map[Unit]int{M2: 0, Are: 4, Hectare: 4},
	},
	Weight: {
		units: []Unit{Gram, Kilo, Ton},
		base:  map[Unit]float64{Gram: 1, Kilo: 1000, Ton: 1000000},
		prec:  map[Unit]int{Gram: 0, Kilo: 6, Ton: 6},
	},
	Volume: {
		units: []Unit{MilliL, Liter, KiloL},
		base:  map[Unit]float64{MilliL: 1, Liter: 1000, KiloL: 1000000},
		prec:  map[Unit]int{MilliL: 0, Liter: 6, KiloL: 6},
	},
	Concentration: {
		units: []Unit{PPM, Percent},
		base:  map[Unit]float64{PPM: 1, Percent: 10000},
		prec:  map[Unit]int{PPM: 0, Percent: 4},
	},
}

// Line is one row of the conversion output.
type Line struct {
	Unit      Unit    `json:"unit"`
	Value     float64 `json:"value"`
	Precision int     `json:"precision"`
	Display   string  `json:"display"`
}

// Factor returns the multiplier converting src to dst within d.
func Factor(d Domain, src, dst Unit) (float64, error) {
	s, ok := domains[d]
	if !ok {
		return 0, ErrUnknownDomain
	}
	bs, oks := s.base[src]
	bd, okd := s.base[dst]
	if !oks || !okd {
		return 0, ErrUnknownUnit
	}
	return bs / bd, nil
}

// Convert turns a raw input value in src into every unit of the domain.
// The first line echoes the input; the rest follow the domain's unit
// order. Empty or non-numeric input yields a nil result and no error.
// Negative and zero values convert like any other number.
func Convert(d Domain, value string, src Unit) ([]Line, error) {
	s, ok := domains[d]
	if !ok {
		return nil, ErrUnknownDomain
	}
	if _, ok := s.base[src]; !ok {
		return nil, ErrUnknownUnit
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, nil
	}

	lines := make([]Line, 0, len(s.units))
	lines = append(lines, line(s, src, v))
	for _, u := range s.units {
		if u == src {
			continue
		}
		lines = append(lines, line(s, u, v*s.base[src]/s.base[u]))
	}
	return lines, nil
}

func line(s spec, u Unit, v float64) Line {
	p := s.prec[u]
	return Line{Unit: u, Value: v, Precision: p, Display: strconv.FormatFloat(v, 'f', p, 64)}
}

// Units lists the unit set of a domain, smallest first.
func Units(d Domain) []Unit {
	s, ok := domains[d]
	if !ok {
		return nil
	}
	out := make([]Unit, len(s.units))
	copy(out, s.units)
	return out
}
