package render

import "github.com/invitekit/invitekit/internal/record"

// defaultFamily is applied for every role the caller left unset and for
// unknown family ids.
const defaultFamily = "serif"

// fontStacks maps the four supported family ids to concrete CSS font stacks.
var fontStacks = map[string]string{
	"serif":   `"Playfair Display",Georgia,serif`,
	"script":  `"Great Vibes","Dancing Script",cursive`,
	"sans":    `"Montserrat","Helvetica Neue",Arial,sans-serif`,
	"display": `"Cinzel","Playfair Display",serif`,
}

// FontStack resolves a family id to its concrete stack. Unknown ids fall
// back to the default family rather than erroring.
func FontStack(familyID string) string {
	if stack, ok := fontStacks[familyID]; ok {
		return stack
	}
	return fontStacks[defaultFamily]
}

// Fonts holds the resolved stack per text role. Roles are independent; one
// invitation may mix families across roles.
type Fonts struct {
	Title string
	Names string
	Note  string
}

// ResolveFonts maps the record's role assignments to concrete stacks.
func ResolveFonts(assignments map[record.FontRole]string) Fonts {
	return Fonts{
		Title: FontStack(assignments[record.RoleTitle]),
		Names: FontStack(assignments[record.RoleNames]),
		Note:  FontStack(assignments[record.RoleNote]),
	}
}
