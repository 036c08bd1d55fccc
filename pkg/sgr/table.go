// Package sgr defines the table of ANSI Select Graphic Rendition flags the
// markup renderer draws its style codes from.
//
// Flags are grouped into ordered categories (text format, foreground color,
// background fill). Each flag carries a unique bit value, so styles combine
// with bitwise OR, and a unique SGR code, which is what ends up in the
// rendered escape sequence. Category order and flag order within a category
// fix the order codes are emitted in.
package sgr

import (
	"fmt"
	"strconv"
	"strings"
)

// Flag bits for the default table. A style combination is any bitwise OR of
// these values.
const (
	Bold uint64 = 1 << iota
	Dim
	Underline
	Blink
	Invert
	Hidden

	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	BlackFill
	RedFill
	GreenFill
	YellowFill
	BlueFill
	MagentaFill
	CyanFill
	WhiteFill
)

// Flag is a single named style.
type Flag struct {
	Name string
	Bit  uint64
	Code int
}

// Category is an ordered group of related flags.
type Category struct {
	Name  string
	Flags []Flag
}

// Table is an ordered set of categories. The zero value is an empty table
// that accepts no flags; most callers want Default.
type Table struct {
	Categories []Category
}

// Default returns the standard ANSI table: six text-format flags, the eight
// base foreground colors and the eight background fills.
func Default() Table {
	return Table{Categories: []Category{
		{Name: "format", Flags: []Flag{
			{Name: "bold", Bit: Bold, Code: 1},
			{Name: "dim", Bit: Dim, Code: 2},
			{Name: "underline", Bit: Underline, Code: 4},
			{Name: "blink", Bit: Blink, Code: 5},
			{Name: "invert", Bit: Invert, Code: 7},
			{Name: "hidden", Bit: Hidden, Code: 8},
		}},
		{Name: "color", Flags: []Flag{
			{Name: "black", Bit: Black, Code: 30},
			{Name: "red", Bit: Red, Code: 31},
			{Name: "green", Bit: Green, Code: 32},
			{Name: "yellow", Bit: Yellow, Code: 33},
			{Name: "blue", Bit: Blue, Code: 34},
			{Name: "magenta", Bit: Magenta, Code: 35},
			{Name: "cyan", Bit: Cyan, Code: 36},
			{Name: "white", Bit: White, Code: 37},
		}},
		{Name: "fill", Flags: []Flag{
			{Name: "black-fill", Bit: BlackFill, Code: 40},
			{Name: "red-fill", Bit: RedFill, Code: 41},
			{Name: "green-fill", Bit: GreenFill, Code: 42},
			{Name: "yellow-fill", Bit: YellowFill, Code: 43},
			{Name: "blue-fill", Bit: BlueFill, Code: 44},
			{Name: "magenta-fill", Bit: MagentaFill, Code: 45},
			{Name: "cyan-fill", Bit: CyanFill, Code: 46},
			{Name: "white-fill", Bit: WhiteFill, Code: 47},
		}},
	}}
}

// Limit returns one past the highest valid flag combination. Any combination
// c with c < Limit() is made up entirely of known bits, provided bits are
// assigned contiguously as Default does.
func (t Table) Limit() uint64 {
	var highest uint64
	for _, c := range t.Categories {
		for _, f := range c.Flags {
			if f.Bit > highest {
				highest = f.Bit
			}
		}
	}
	if highest == 0 {
		return 1
	}
	return highest << 1
}

// Lookup returns the flag with the given name.
func (t Table) Lookup(name string) (Flag, bool) {
	for _, c := range t.Categories {
		for _, f := range c.Flags {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Flag{}, false
}

// Codify converts a flag combination into its rendered form: the SGR codes
// of every set flag, in table order, joined by semicolons.
func (t Table) Codify(combination uint64) string {
	var codes []string
	for _, c := range t.Categories {
		for _, f := range c.Flags {
			if combination&f.Bit != 0 {
				codes = append(codes, strconv.Itoa(f.Code))
			}
		}
	}
	return strings.Join(codes, ";")
}

// ParseSpec parses a "+"-joined list of flag names, e.g. "bold+red", into a
// flag combination.
func (t Table) ParseSpec(spec string) (uint64, error) {
	var combination uint64
	for _, name := range strings.Split(spec, "+") {
		name = strings.TrimSpace(name)
		if name == "" {
			return 0, fmt.Errorf("empty flag name in spec %q", spec)
		}
		f, ok := t.Lookup(name)
		if !ok {
			return 0, fmt.Errorf("unknown flag %q in spec %q", name, spec)
		}
		combination |= f.Bit
	}
	return combination, nil
}
