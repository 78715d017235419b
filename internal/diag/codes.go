package diag

import "fmt"

// Code identifies one diagnostic condition. Ranges are grouped by phase:
// 1xxx manifest loading, 2xxx alias expansion, 3xxx merging.
type Code uint16

const (
	UnknownCode Code = 0

	// Manifest loading
	ManifestInfo        Code = 1000
	ManifestSyntax      Code = 1001
	ManifestBadKind     Code = 1002
	ManifestMissingName Code = 1003
	ManifestTooFewElems Code = 1004
	ManifestMissingPart Code = 1005
	ManifestBadAttr     Code = 1006
	ManifestUnknownType Code = 1007
	ManifestDuplicate   Code = 1008

	// Alias expansion
	ExpandInfo  Code = 2000
	ExpandCycle Code = 2001

	// Merging
	MergeInfo   Code = 3000
	MergeFailed Code = 3001
)

func (c Code) String() string {
	switch {
	case c >= 3000:
		return fmt.Sprintf("MRG%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("EXP%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("MAN%04d", uint16(c))
	default:
		return fmt.Sprintf("UNK%04d", uint16(c))
	}
}
