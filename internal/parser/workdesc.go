package parser

import (
	"regexp"

	"github.com/tkarvonen/huoltokirja/constants"
)

// Common service terms on Finnish automotive receipts, with their English
// counterparts for bilingual invoices.
var workPatterns = []*regexp.Regexp{
	rx(`(Öljynvaihto|Oil change)`),
	rx(`(Öljynsuodatin|Oil filter)`),
	rx(`(Ilmansuodatin|Air filter)`),
	rx(`(Raitisilmasuodatin|Cabin air filter)`),
	rx(`(Huolto|Service|Maintenance)`),
	rx(`(Katsastus|Inspection)`),
	rx(`(Jarru|Brake)`),
	rx(`(Rengas|Renkaat|Tire|Tyres)`),
	rx(`(TYÖVELOITUS|Labor)`),
	rx(`(PIENTARVIKKEET|Small items)`),
}

// WorkDescriptions collects the distinct service terms present in the text,
// capped at MaxWorkDescriptions entries.
func WorkDescriptions(text string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, p := range workPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			desc := m[1]
			if _, dup := seen[desc]; dup || desc == "" {
				continue
			}
			seen[desc] = struct{}{}
			out = append(out, desc)
			if len(out) == constants.MaxWorkDescriptions {
				return out
			}
		}
	}
	return out
}
