// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses the color strings used in grid options,
// in the formats accepted by HTML canvas stroke styles.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/gridline/base/errors"
	"golang.org/x/image/colornames"
)

// Transparent is a fully transparent color, returned for "none".
var Transparent = color.RGBA{}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromString returns a color value from the given string. It accepts
// hex values (#rgb, #rrggbb, #rrggbbaa), rgb(r, g, b), rgba(r, g, b, a)
// with a either as 0-255 or as a 0-1 fraction, standard CSS color names,
// and "none" or "transparent".
func FromString(str string) (color.RGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr == "":
		return color.RGBA{}, errors.New("colors.FromString: empty color")
	case lstr == "none" || lstr == "transparent":
		return Transparent, nil
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba("):
		return fromFunc(lstr, "rgba(", 4)
	case strings.HasPrefix(lstr, "rgb("):
		return fromFunc(lstr, "rgb(", 3)
	default:
		return FromName(lstr)
	}
}

// LogFromString returns the color value from the given string,
// logging any error and returning the fallback color in that case.
func LogFromString(str string, fallback color.Color) color.Color {
	c, err := FromString(str)
	if errors.Log(err) != nil {
		return fallback
	}
	return c
}

// FromName returns the color value specified by the given
// CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given hex color string and returns the
// resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	var n int
	var err error
	switch len(hex) {
	case 3:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		n++
	case 6:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
		n++
	case 8:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil || n != 4 {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// fromFunc parses the comma separated arguments of an rgb( or rgba( string.
func fromFunc(lstr, prefix string, nargs int) (color.RGBA, error) {
	val := strings.TrimSuffix(strings.TrimPrefix(lstr, prefix), ")")
	parts := strings.Split(val, ",")
	if len(parts) != nargs {
		return color.RGBA{}, fmt.Errorf("colors.FromString: expected %d components in %q", nargs, lstr)
	}
	var comp [4]uint8
	comp[3] = 255
	for i, p := range parts {
		p = strings.TrimSpace(p)
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: bad component %q in %q: %w", p, lstr, err)
		}
		switch {
		case strings.HasSuffix(p, "%"):
			f = f * 255 / 100
		case i == 3 && f <= 1:
			f *= 255
		}
		comp[i] = clamp8(f)
	}
	return color.RGBA{comp[0], comp[1], comp[2], comp[3]}, nil
}

func clamp8(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f + 0.5)
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, with the alpha component only included when it is not opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}
