package greek

import "strings"

// Tier is the set of diacritic marks carried by a letter form. Forms of
// different letters that carry the same marks share a tier, which is what
// lets a range like ά-ώ walk the alphabet while staying on acute vowels.
type Tier uint16

// Plain is the tier of unmarked vowels.
const Plain Tier = 0

const (
	Acute Tier = 1 << iota
	Grave
	Circumflex
	Smooth
	Rough
	IotaSubscript
	Diaeresis
	Breve
	Macron

	// Consonantal is shared by every consonant form, marked or not.
	Consonantal
)

// combining marks produced by canonical decomposition.
var marks = map[rune]Tier{
	'\u0301': Acute,
	'\u0300': Grave,
	'\u0342': Circumflex,
	'\u0313': Smooth,
	'\u0314': Rough,
	'\u0345': IotaSubscript,
	'\u0308': Diaeresis,
	'\u0306': Breve,
	'\u0304': Macron,
}

var tierNames = []struct {
	tier Tier
	name string
}{
	{Smooth, "smooth"},
	{Rough, "rough"},
	{Diaeresis, "diaeresis"},
	{Acute, "acute"},
	{Grave, "grave"},
	{Circumflex, "circumflex"},
	{Breve, "breve"},
	{Macron, "macron"},
	{IotaSubscript, "iota"},
}

// Has reports whether all marks of m are present in t.
func (t Tier) Has(m Tier) bool {
	return t&m == m
}

// String returns a "+"-joined list of mark names, e.g. "smooth+acute".
func (t Tier) String() string {
	switch t {
	case Plain:
		return "plain"
	case Consonantal:
		return "consonantal"
	}

	parts := make([]string, 0, 3)
	for _, n := range tierNames {
		if t.Has(n.tier) {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, "+")
}
