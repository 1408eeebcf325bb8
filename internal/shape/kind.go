package shape

import "strings"

// Kind identifies one of the supported shape variants.
type Kind int

const (
	KindLine Kind = iota
	KindOval
	KindRectangle
	KindPolygon
)

var kindNames = []string{"LINE", "OVAL", "RECTANGLE", "POLYGON"}

// Kinds returns every kind in toolbar order.
func Kinds() []Kind {
	return []Kind{KindLine, KindOval, KindRectangle, KindPolygon}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// ParseKind matches a kind name case-insensitively.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for i, name := range kindNames {
		if strings.EqualFold(name, s) {
			return Kind(i), true
		}
	}
	// "rect" is accepted as shorthand in scripts.
	if strings.EqualFold(s, "rect") {
		return KindRectangle, true
	}
	return KindLine, false
}
