package tonic

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// RegistryEntry is one named interval pattern of the scale registry.
	RegistryEntry struct {
		Name  string `yaml:"name" json:"name"`
		Steps []int  `yaml:"steps,flow" json:"steps"`
	}

	// patternKey identifies an interval pattern in the reverse registry.
	patternKey string
)

// namedScales is the registry in registration order. Several names can share
// the same steps; the first one registered is the primary name of the pattern.
var namedScales = []RegistryEntry{
	{"major", []int{2, 2, 1, 2, 2, 2, 1}},
	{"minor", []int{2, 1, 2, 2, 1, 2, 2}},
	{"melodicminor", []int{2, 1, 2, 2, 2, 2, 1}},
	{"harmonicminor", []int{2, 1, 2, 2, 1, 3, 1}},
	{"pentatonicmajor", []int{2, 2, 3, 2, 3}},
	{"bluesmajor", []int{3, 2, 1, 1, 2, 3}},
	{"pentatonicminor", []int{3, 2, 2, 3, 2}},
	{"bluesminor", []int{3, 2, 1, 1, 3, 2}},
	{"augmented", []int{3, 1, 3, 1, 3, 1}},
	{"diminished", []int{2, 1, 2, 1, 2, 1, 2, 1}},
	{"chromatic", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	{"wholehalf", []int{2, 1, 2, 1, 2, 1, 2, 1}},
	{"halfwhole", []int{1, 2, 1, 2, 1, 2, 1, 2}},
	{"wholetone", []int{2, 2, 2, 2, 2, 2}},
	{"augmentedfifth", []int{2, 2, 1, 2, 1, 1, 2, 1}},
	{"japanese", []int{1, 4, 2, 1, 4}},
	{"oriental", []int{1, 3, 1, 1, 3, 1, 2}},
	{"ionian", []int{2, 2, 1, 2, 2, 2, 1}},
	{"dorian", []int{2, 1, 2, 2, 2, 1, 2}},
	{"phrygian", []int{1, 2, 2, 2, 1, 2, 2}},
	{"lydian", []int{2, 2, 2, 1, 2, 2, 1}},
	{"mixolydian", []int{2, 2, 1, 2, 2, 1, 2}},
	{"aeolian", []int{2, 1, 2, 2, 1, 2, 2}},
	{"locrian", []int{1, 2, 2, 1, 2, 2, 2}},
}

var (
	intervalsByName = map[string][]int{}
	namesByPattern  = map[patternKey][]string{}
)

func init() {
	for _, e := range namedScales {
		intervalsByName[e.Name] = e.Steps
		k := keyOf(e.Steps)
		namesByPattern[k] = append(namesByPattern[k], e.Name)
	}
}

// nameNoise is removed from scale names before lookup, in this order.
var nameNoise = []string{"scale", "mode", "-", " ", "_"}

// NormalizeName lower-cases a scale name and strips the words "scale" and
// "mode" as well as dashes, spaces and underscores, giving the registry key
// the name is looked up with. "Dorian Mode" becomes "dorian".
func NormalizeName(name string) string {
	name = cases.Lower(language.Und).String(name)
	for _, s := range nameNoise {
		name = strings.ReplaceAll(name, s, "")
	}
	return name
}

// IntervalsFromName returns a copy of the steps registered for the scale name.
// The name is normalized with NormalizeName first; there is no fuzzy
// matching, so "Natural Minor" is not found.
func IntervalsFromName(name string) ([]int, error) {
	steps, ok := intervalsByName[NormalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return slices.Clone(steps), nil
}

// NamesForIntervals returns all the names registered for exactly these
// steps, in registration order. The first name is the primary one.
func NamesForIntervals(steps []int) ([]string, error) {
	names, ok := namesByPattern[keyOf(steps)]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrPatternNotFound, steps)
	}
	return slices.Clone(names), nil
}

// ScaleNames returns the names of all registered scales in registration
// order.
func ScaleNames() []string {
	ret := make([]string, len(namedScales))
	for i, e := range namedScales {
		ret[i] = e.Name
	}
	return ret
}

// RegistryDocument returns a copy of the whole registry, suitable for
// marshaling.
func RegistryDocument() []RegistryEntry {
	ret := make([]RegistryEntry, len(namedScales))
	for i, e := range namedScales {
		ret[i] = RegistryEntry{Name: e.Name, Steps: slices.Clone(e.Steps)}
	}
	return ret
}

func keyOf(steps []int) patternKey {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return patternKey(b.String())
}
