package entities

import (
	"errors"
	"strings"

	"golang.org/x/text/width"
)

var ErrUnknownStructure = errors.New("unknown building structure")

// Structure is the building construction method of the site.
//
// StructureSteel (鉄骨造) is kept for clients built against the old form and
// always resolves to StructureS through Canonical.
type Structure string

const (
	StructureWood  Structure = "WOOD"
	StructureS     Structure = "S"
	StructureRC    Structure = "RC"
	StructureSRC   Structure = "SRC"
	StructureOther Structure = "OTHER"
	StructureSteel Structure = "STEEL"
)

var structureLabels = map[Structure]string{
	StructureWood:  "木造",
	StructureS:     "S造",
	StructureRC:    "RC造",
	StructureSRC:   "SRC造",
	StructureOther: "その他",
}

var structureAliases = map[string]Structure{
	"WOOD":  StructureWood,
	"S":     StructureS,
	"STEEL": StructureSteel,
	"RC":    StructureRC,
	"SRC":   StructureSRC,
	"OTHER": StructureOther,
	"木造":    StructureWood,
	"S造":    StructureS,
	"鉄骨造":   StructureSteel,
	"RC造":   StructureRC,
	"SRC造":  StructureSRC,
	"その他":   StructureOther,
}

// ParseStructure accepts a structure code or its Japanese label. Full-width
// letters are folded, so "ＲＣ造" parses as RC.
func ParseStructure(raw string) (Structure, error) {
	key := strings.ToUpper(width.Fold.String(strings.TrimSpace(raw)))
	if s, ok := structureAliases[key]; ok {
		return s, nil
	}
	return "", ErrUnknownStructure
}

// Canonical maps legacy aliases onto the structure they stand for.
func (s Structure) Canonical() Structure {
	if s == StructureSteel {
		return StructureS
	}
	return s
}

func (s Structure) Valid() bool {
	_, ok := structureLabels[s.Canonical()]
	return ok
}

// Label is the Japanese display name of the canonical structure.
func (s Structure) Label() string {
	return structureLabels[s.Canonical()]
}
