package timeseries

import "strings"

// Kind identifies the per-sample payload of a series.
type Kind int

const (
	KindNone Kind = iota
	KindScalar
	KindVector
	KindMultiComponent
	KindSpectrogram
)

var kindNames = map[Kind]string{
	KindNone:           "none",
	KindScalar:         "scalar",
	KindVector:         "vector",
	KindMultiComponent: "multicomponent",
	KindSpectrogram:    "spectrogram",
}

// ParseKind maps a case-insensitive kind name to a Kind.
// Unknown names yield KindNone.
func ParseKind(name string) Kind {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return KindNone
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return kindNames[KindNone]
}

// KindOf returns the kind of s, or KindNone for a nil series, including
// a nil pointer of one of the series types.
func KindOf(s Series) Kind {
	switch ts := s.(type) {
	case nil:
		return KindNone
	case *ScalarSeries:
		if ts == nil {
			return KindNone
		}
	case *VectorSeries:
		if ts == nil {
			return KindNone
		}
	case *MultiComponentSeries:
		if ts == nil {
			return KindNone
		}
	case *SpectrogramSeries:
		if ts == nil {
			return KindNone
		}
	}
	return s.Kind()
}
