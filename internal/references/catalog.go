package references

import (
	"sort"
	"strings"
)

// Reference is a credibility-tagged external source usable to back an answer.
type Reference struct {
	ID           string
	Title        string
	Organization string
	URL          string
	Type         string
	Credibility  string
	Description  string
	Keywords     []string
}

// Summary is the caller-facing projection of a reference. Internal scoring
// fields never leak through it.
type Summary struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	URL          string `json:"url"`
	Type         string `json:"type"`
	Credibility  string `json:"credibility"`
}

type Catalog struct {
	refs []Reference
	byID map[string]int
}

func NewCatalog() *Catalog {
	refs := builtinReferences()
	byID := make(map[string]int, len(refs))
	for i, r := range refs {
		byID[r.ID] = i
	}
	return &Catalog{refs: refs, byID: byID}
}

// CredibilityWeight maps a credibility tier to its scoring multiplier.
// Unknown tiers weigh 1.0.
func CredibilityWeight(credibility string) float64 {
	switch credibility {
	case "highest":
		return 3.0
	case "high":
		return 2.5
	case "moderate":
		return 2.0
	case "basic":
		return 1.5
	default:
		return 1.0
	}
}

// Select ranks the catalog against the question and answer text and returns
// the top maxResults sources. A reference scores the count of topical keywords
// found in its title, description, and keyword list, multiplied by its
// credibility weight; zero-score references are discarded.
func (c *Catalog) Select(question, answer string, maxResults int) []Summary {
	keywords := extractKeywords(question + " " + answer)

	type scored struct {
		ref   Reference
		score float64
	}

	var candidates []scored
	for _, ref := range c.refs {
		score := relevanceScore(ref, keywords)
		if score > 0 {
			candidates = append(candidates, scored{ref: ref, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return CredibilityWeight(candidates[i].ref.Credibility) > CredibilityWeight(candidates[j].ref.Credibility)
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	summaries := make([]Summary, 0, len(candidates))
	for _, cand := range candidates {
		summaries = append(summaries, summarize(cand.ref))
	}
	return summaries
}

// Default returns the general-purpose high-credibility set substituted when
// scoring finds nothing relevant for an in-domain answer.
func (c *Catalog) Default() []Summary {
	return c.summarizeIDs([]string{
		"autism_speaks_main",
		"cdc_autism",
		"national_autism_center",
		"autistic_self_advocacy",
	})
}

// Emergency returns the crisis-hotline set used only by the error path.
func (c *Catalog) Emergency() []Summary {
	return c.summarizeIDs([]string{
		"crisis_text_line",
		"suicide_prevention",
		"autism_speaks_crisis",
	})
}

func (c *Catalog) summarizeIDs(ids []string) []Summary {
	summaries := make([]Summary, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.byID[id]; ok {
			summaries = append(summaries, summarize(c.refs[i]))
		}
	}
	return summaries
}

func summarize(r Reference) Summary {
	return Summary{
		Title:        r.Title,
		Organization: r.Organization,
		URL:          r.URL,
		Type:         r.Type,
		Credibility:  r.Credibility,
	}
}

func relevanceScore(ref Reference, keywords []string) float64 {
	refText := strings.ToLower(ref.Title + " " + ref.Description + " " + strings.Join(ref.Keywords, " "))

	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(refText, keyword) {
			matches++
		}
	}

	return float64(matches) * CredibilityWeight(ref.Credibility)
}

func extractKeywords(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, keyword := range topicalKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

var topicalKeywords = []string{
	"sensory", "communication", "behavior", "education", "school", "iep",
	"therapy", "treatment", "intervention", "aba", "speech", "occupational",
	"social", "skills", "diagnosis", "assessment", "early", "adult",
	"employment", "family", "support", "insurance", "funding", "legal",
	"rights", "advocacy", "community", "research", "evidence",
}
