package tool

import "strings"

// Keyword sets per knowledge category, evaluated in this fixed order.
// "price" matches the shop-policies set even though pricing questions route
// to the pricing persona.
var knowledgeSections = []struct {
	header   string
	keywords []string
	content  func(s *Set) []string
}{
	{
		header:   "Hair Care Tips:",
		keywords: []string{"hair", "care", "wash", "condition"},
		content:  func(s *Set) []string { return s.store.HairCareTips() },
	},
	{
		header:   "Styling Advice:",
		keywords: []string{"style", "cut", "look", "face"},
		content:  func(s *Set) []string { return s.store.StylingAdvice() },
	},
	{
		header:   "Shop Policies:",
		keywords: []string{"policy", "payment", "cancel", "price"},
		content:  func(s *Set) []string { return s.store.ShopPolicies() },
	},
}

const knowledgeFallback = "Premier Barber Shop is open Monday to Saturday, 9:00 AM to 6:00 PM.\n" +
	"We offer haircuts, beard trims, and full grooming packages.\n" +
	"Call 555-0100 or drop by to book an appointment.\n" +
	"Ask our staff about memberships and seasonal offers."

// SearchKnowledgeBase matches the lowercased query against each category's
// keyword set and concatenates every matching category, header first, in
// fixed order. With no match it returns the fixed general-information block.
func (s *Set) SearchKnowledgeBase(query string) KnowledgeResult {
	q := strings.ToLower(query)

	var sections []string
	for _, sec := range knowledgeSections {
		for _, kw := range sec.keywords {
			if strings.Contains(q, kw) {
				block := sec.header + "\n" + strings.Join(sec.content(s), "\n")
				sections = append(sections, block)
				break
			}
		}
	}

	if len(sections) == 0 {
		return KnowledgeResult{Status: StatusOK, Content: knowledgeFallback}
	}
	return KnowledgeResult{Status: StatusOK, Content: strings.Join(sections, "\n\n")}
}
