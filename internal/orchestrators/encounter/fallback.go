package encounter

import "strings"

// Region-qualified table names follow the data set's naming convention:
// "<generic name> - <region id>", e.g. "Common - Animal - high-wold".
// The convention lives entirely in this file so the resolution
// algorithm never builds names itself.
const regionSeparator = " - "

// lookupCandidates returns the table names to try, in order: the exact
// name first, then its region-qualified variant. A name that already
// carries the region qualifier is never qualified again, and there is
// no region to fall back to when the context has none.
func lookupCandidates(name, regionID string) []string {
	if regionID == "" {
		return []string{name}
	}
	if strings.HasSuffix(name, regionSeparator+regionID) {
		return []string{name}
	}
	return []string{name, name + regionSeparator + regionID}
}
