package classifier

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/aurora-assist/backend/internal/knowledge"
	"github.com/aurora-assist/backend/internal/llm"
	"github.com/aurora-assist/backend/pkg/logger"
)

// Result is the gatekeeper's verdict for one normalized question.
type Result struct {
	InDomain       bool
	Confidence     float64
	Reasoning      string
	DetectedTopics []string
}

// Strategy decides whether a normalized question is in scope. Implementations
// never fail: ambiguity and infrastructure errors resolve to a verdict.
type Strategy interface {
	Classify(ctx context.Context, question string) Result
}

// fuzzyPattern catches a common misspelling and credits its canonical keyword.
type fuzzyPattern struct {
	re        *regexp.Regexp
	canonical string
}

var fuzzyPatterns = []fuzzyPattern{
	{regexp.MustCompile(`autis[mt]\w*`), "autism"},
	{regexp.MustCompile(`aspe?rge?rs?`), "asperger"},
	{regexp.MustCompile(`s[ae]nsory`), "sensory"},
	{regexp.MustCompile(`melt\s?down`), "meltdown"},
	{regexp.MustCompile(`stimm?ing`), "stimming"},
}

var domainKeywords = []string{
	"autism", "autistic", "asd", "asperger", "spectrum disorder",
	"sensory", "stimming", "meltdown", "nonverbal", "echolalia",
	"neurodivergent", "neurodiversity", "iep", "504 plan", "aba",
	"early intervention", "speech therapy", "occupational therapy",
	"developmental delay", "special needs",
}

// Deterministic classifies by scanning for exact domain keywords plus a small
// set of fuzzy patterns. Confidence grows by a fixed step per distinct match,
// capped.
type Deterministic struct {
	kb       *knowledge.Base
	perMatch float64
	cap      float64
}

func NewDeterministic(kb *knowledge.Base, confidencePerMatch, confidenceCap float64) *Deterministic {
	if confidencePerMatch <= 0 {
		confidencePerMatch = 0.3
	}
	if confidenceCap <= 0 || confidenceCap > 1 {
		confidenceCap = 1.0
	}
	return &Deterministic{kb: kb, perMatch: confidencePerMatch, cap: confidenceCap}
}

func (d *Deterministic) Classify(_ context.Context, question string) Result {
	matched := make(map[string]bool)
	for _, keyword := range domainKeywords {
		if strings.Contains(question, keyword) {
			matched[keyword] = true
		}
	}
	for _, p := range fuzzyPatterns {
		if p.re.MatchString(question) {
			matched[p.canonical] = true
		}
	}

	count := len(matched)
	if count == 0 {
		return Result{
			InDomain:   false,
			Confidence: 0,
			Reasoning:  "no domain keywords detected",
		}
	}

	confidence := float64(count) * d.perMatch
	if confidence > d.cap {
		confidence = d.cap
	}

	return Result{
		InDomain:       true,
		Confidence:     confidence,
		Reasoning:      "matched domain keywords: " + strings.Join(sortedKeys(matched), ", "),
		DetectedTopics: d.detectTopics(question, matched),
	}
}

// detectTopics returns the knowledge-base topics whose keyword lists intersect
// the matched terms or the question text, in catalog order.
func (d *Deterministic) detectTopics(question string, matched map[string]bool) []string {
	var detected []string
	for _, topic := range d.kb.Topics() {
		for _, keyword := range topic.Keywords {
			if matched[keyword] || strings.Contains(question, keyword) {
				detected = append(detected, topic.Key)
				break
			}
		}
	}
	return detected
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for _, keyword := range domainKeywords {
		if set[keyword] {
			keys = append(keys, keyword)
		}
	}
	for _, p := range fuzzyPatterns {
		if set[p.canonical] && !contains(keys, p.canonical) {
			keys = append(keys, p.canonical)
		}
	}
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// IntentService is the slice of the LLM client the delegated strategy needs.
type IntentService interface {
	ClassifyQuestion(ctx context.Context, question string) (*llm.IntentJudgment, error)
}

// Delegated asks the external text-generation service for a structured
// verdict. On any failure it fails open: ambiguous input is treated as
// in-domain at low confidence rather than rejected.
type Delegated struct {
	svc IntentService
}

func NewDelegated(svc IntentService) *Delegated {
	return &Delegated{svc: svc}
}

func (d *Delegated) Classify(ctx context.Context, question string) Result {
	judgment, err := d.svc.ClassifyQuestion(ctx, question)
	if err != nil {
		logger.Warn("Intent classification failed, failing open", zap.Error(err))
		return Result{
			InDomain:   true,
			Confidence: 0.3,
			Reasoning:  "Classification service unavailable, proceeding with caution",
		}
	}

	confidence := judgment.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return Result{
		InDomain:       judgment.IsAutismRelated,
		Confidence:     confidence,
		Reasoning:      judgment.Reasoning,
		DetectedTopics: judgment.DetectedTopics,
	}
}
