package fjc

import (
	"github.com/judgematch/internal/config"
	"github.com/judgematch/internal/normalize"
)

// ApplyOverrides patches known errors and omissions in the source data
// before name permutations are generated. Each override names an nid, a
// field and a replacement value; overrides whose target nid is absent from
// the data are skipped silently. Unknown field names are ignored the same
// way, so a stale override table never aborts a build.
func ApplyOverrides(judges []Judge, overrides []config.Override) []Judge {
	for _, ov := range overrides {
		for i := range judges {
			if judges[i].NID != ov.NID {
				continue
			}
			switch ov.Field {
			case "first_name":
				judges[i].FirstName = normalize.StripPunct(ov.Value)
			case "middle_name":
				judges[i].MiddleName = normalize.StripPunct(ov.Value)
			case "last_name":
				judges[i].LastName = normalize.StripPunct(ov.Value)
			case "judge_name":
				judges[i].JudgeName = normalize.StripPunct(ov.Value)
			}
		}
	}
	return judges
}

// GeneratePerms fills the seven name permutations on every record. Runs
// after ApplyOverrides so corrected names feed the permutations.
func GeneratePerms(judges []Judge) []Judge {
	for i := range judges {
		judges[i].Perms = normalize.Perms(
			judges[i].FirstName,
			judges[i].MiddleName,
			judges[i].LastName,
		)
	}
	return judges
}
