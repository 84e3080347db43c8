package emit

import (
	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
	"github.com/coolCucumber-cat/transmute-guard/internal/lcs"
)

// memberName returns the name of the alias constant standing for the parent
// constant named member. The words of the member left after trimming the
// prefix shared by all parent members are appended to the alias name in camel
// case.
//
//	memberName("Primary", "ColorRed", []string{"ColorRed", "ColorGreen"})   // "PrimaryRed"
//	memberName("Primary", "dark_red", []string{"dark_red", "light_green"}) // "PrimaryDarkRed"
func memberName(alias, member string, parentMembers []string) string {
	return codefmt.NormalizeName(alias + "_" + lcs.TrimCommonWordPrefix(member, parentMembers))
}

// guardName returns the name of the variable holding the guard from the alias
// to its parent, e.g. "PrimaryToColor".
func guardName(alias, parent string) string {
	return codefmt.NormalizeName(alias + "_to_" + parent)
}
