package engine

import "strings"

// Heading is one of the four compass directions a bike can face.
// Values are ordered clockwise so rotation is index arithmetic mod 4.
type Heading int

const (
	North Heading = iota
	East
	South
	West

	headingCount = 4
)

var headings = [headingCount]struct {
	name   string
	dx, dy int
}{
	North: {"north", 0, 1},
	East:  {"east", 1, 0},
	South: {"south", 0, -1},
	West:  {"west", -1, 0},
}

// AllHeadings returns every heading in clockwise order starting at North
func AllHeadings() []Heading {
	return []Heading{North, East, South, West}
}

// ParseHeading matches a direction name case-insensitively
func ParseHeading(name string) (Heading, bool) {
	lower := strings.ToLower(name)
	for h, info := range headings {
		if info.name == lower {
			return Heading(h), true
		}
	}
	return 0, false
}

// IsValid returns true if h is one of the four compass headings
func (h Heading) IsValid() bool {
	return h >= North && h <= West
}

// String returns the lower-case display name
func (h Heading) String() string {
	if !h.IsValid() {
		return "unknown"
	}
	return headings[h].name
}

// Upper returns the display name as used in reports (e.g. "NORTH")
func (h Heading) Upper() string {
	return strings.ToUpper(h.String())
}

// Delta returns the unit displacement for one step in this heading
func (h Heading) Delta() (dx, dy int) {
	if !h.IsValid() {
		return 0, 0
	}
	return headings[h].dx, headings[h].dy
}

// Left returns the heading a quarter turn anti-clockwise
func (h Heading) Left() Heading {
	return Heading((int(h) + headingCount - 1) % headingCount)
}

// Right returns the heading a quarter turn clockwise
func (h Heading) Right() Heading {
	return Heading((int(h) + 1) % headingCount)
}
