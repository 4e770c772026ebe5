package score

import (
	"strings"

	"careerpilot/pkg/types"
)

var contactWords = []string{"email", "phone", "contact"}

// Score runs the keyword heuristic over resume text: 10 points per
// category when the trigger word appears, case-insensitive. Deterministic
// and side-effect free; an empty string scores all zeros.
func Score(text string) types.ScoreCard {
	lower := strings.ToLower(text)

	var card types.ScoreCard
	for _, word := range contactWords {
		if strings.Contains(lower, word) {
			card.Contact = 10
			break
		}
	}
	if strings.Contains(lower, "skills") {
		card.Skills = 10
	}
	if strings.Contains(lower, "experience") {
		card.Experience = 10
	}
	card.Total = card.Contact + card.Skills + card.Experience
	return card
}
