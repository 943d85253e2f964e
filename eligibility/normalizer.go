package eligibility

import "strings"

// qualificationEquivalents maps each canonical qualification key to its known
// textual variants. Declared as a slice so matching order is fixed: substring
// containment can hit more than one key, and the first declared entry wins.
var qualificationEquivalents = []struct {
	Key      string
	Variants []string
}{
	{"stpm", []string{"stpm", "sijil tinggi persekolahan malaysia", "higher school certificate"}},
	{"a-level", []string{"a-level", "a level", "gce a-level", "advanced level"}},
	{"uec", []string{"uec", "unified examination certificate", "unified exam"}},
	{"diploma", []string{"diploma", "diploma level"}},
	{"foundation", []string{"foundation", "foundation studies", "pre-university"}},
	{"matriculation", []string{"matriculation", "matrikulasi", "matric"}},
	{"spm", []string{"spm", "sijil pelajaran malaysia", "malaysian certificate of education"}},
}

// NormalizeQualification maps a free-text qualification name to a canonical
// key. When no variant matches, the trimmed lower-cased input is returned
// unchanged; an unknown qualification is a valid weak-match fallback, not an
// error.
func NormalizeQualification(qualification string) string {
	qualLower := strings.ToLower(strings.TrimSpace(qualification))

	for _, entry := range qualificationEquivalents {
		for _, variant := range entry.Variants {
			if strings.Contains(qualLower, variant) {
				return entry.Key
			}
		}
	}

	return qualLower
}
