package feedback

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aurora-assist/backend/internal/textproc"
	"github.com/aurora-assist/backend/pkg/logger"
)

type Vote string

const (
	VotePositive Vote = "positive"
	VoteNegative Vote = "negative"
)

func ParseVote(s string) (Vote, error) {
	switch Vote(s) {
	case VotePositive, VoteNegative:
		return Vote(s), nil
	}
	return "", fmt.Errorf("invalid vote %q: must be positive or negative", s)
}

type QuestionCounter struct {
	Count       int       `json:"count"`
	FirstSeen   time.Time `json:"firstSeen"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type PatternCounter struct {
	PositiveCount int       `json:"positiveCount"`
	NegativeCount int       `json:"negativeCount"`
	TotalCount    int       `json:"totalCount"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

type PatternStat struct {
	Pattern       string  `json:"pattern"`
	PositiveCount int     `json:"positiveCount"`
	NegativeCount int     `json:"negativeCount"`
	TotalCount    int     `json:"totalCount"`
	PositiveRate  float64 `json:"positiveRate"`
}

type Improvement struct {
	Pattern      string  `json:"pattern"`
	TotalCount   int     `json:"totalCount"`
	PositiveRate float64 `json:"positiveRate"`
	Suggestion   string  `json:"suggestion"`
}

type Ack struct {
	PositiveTotal int `json:"positiveTotal"`
	NegativeTotal int `json:"negativeTotal"`
}

type Analytics struct {
	TotalFeedback int           `json:"totalFeedback"`
	PositiveCount int           `json:"positiveCount"`
	NegativeCount int           `json:"negativeCount"`
	PositiveRate  float64       `json:"positiveRate"`
	TopPatterns   []PatternStat `json:"topPatterns"`
	Improvements  []Improvement `json:"improvements"`
}

type Config struct {
	MinPatternTotal  int
	LowPositiveRate  float64
	TopPatternsLimit int
}

// Aggregator accumulates per-question and per-pattern feedback counters for
// the life of the process. It is constructed once and shared by every request,
// so all map access goes through the mutex.
type Aggregator struct {
	mu       sync.Mutex
	positive map[string]*QuestionCounter
	negative map[string]*QuestionCounter
	patterns map[string]*PatternCounter

	minPatternTotal  int
	lowPositiveRate  float64
	topPatternsLimit int
}

func NewAggregator(cfg Config) *Aggregator {
	if cfg.MinPatternTotal <= 0 {
		cfg.MinPatternTotal = 3
	}
	if cfg.LowPositiveRate <= 0 {
		cfg.LowPositiveRate = 0.5
	}
	if cfg.TopPatternsLimit <= 0 {
		cfg.TopPatternsLimit = 5
	}
	return &Aggregator{
		positive:         make(map[string]*QuestionCounter),
		negative:         make(map[string]*QuestionCounter),
		patterns:         make(map[string]*PatternCounter),
		minPatternTotal:  cfg.MinPatternTotal,
		lowPositiveRate:  cfg.LowPositiveRate,
		topPatternsLimit: cfg.TopPatternsLimit,
	}
}

// Record ingests one vote for a (question, answer) pair and returns the
// running totals. The normalized question text is the counter key: two
// phrasings of the same underlying question are tracked as separate entries.
func (a *Aggregator) Record(id string, vote Vote, question, answer string) Ack {
	normalized := textproc.Normalize(question)
	now := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	counters := a.positive
	if vote == VoteNegative {
		counters = a.negative
	}

	qc, ok := counters[normalized]
	if !ok {
		qc = &QuestionCounter{FirstSeen: now}
		counters[normalized] = qc
	}
	qc.Count++
	qc.LastUpdated = now

	for _, tag := range DerivePatternTags(normalized) {
		pc, ok := a.patterns[tag]
		if !ok {
			pc = &PatternCounter{}
			a.patterns[tag] = pc
		}
		pc.TotalCount++
		if vote == VotePositive {
			pc.PositiveCount++
		} else {
			pc.NegativeCount++
		}
		pc.LastUpdated = now
	}

	logger.Debug("Feedback recorded",
		zap.String("feedback_id", id),
		zap.String("vote", string(vote)),
	)

	return Ack{
		PositiveTotal: totalCount(a.positive),
		NegativeTotal: totalCount(a.negative),
	}
}

// Analytics is a pure read over the current in-memory state.
func (a *Aggregator) Analytics() Analytics {
	a.mu.Lock()
	defer a.mu.Unlock()

	positive := totalCount(a.positive)
	negative := totalCount(a.negative)
	total := positive + negative

	rate := 0.0
	if total > 0 {
		rate = float64(positive) / float64(total)
	}

	return Analytics{
		TotalFeedback: total,
		PositiveCount: positive,
		NegativeCount: negative,
		PositiveRate:  rate,
		TopPatterns:   a.topPatterns(),
		Improvements:  a.improvements(),
	}
}

func (a *Aggregator) topPatterns() []PatternStat {
	stats := make([]PatternStat, 0, len(a.patterns))
	for tag, pc := range a.patterns {
		rate := 0.0
		if pc.TotalCount > 0 {
			rate = float64(pc.PositiveCount) / float64(pc.TotalCount)
		}
		stats = append(stats, PatternStat{
			Pattern:       tag,
			PositiveCount: pc.PositiveCount,
			NegativeCount: pc.NegativeCount,
			TotalCount:    pc.TotalCount,
			PositiveRate:  rate,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalCount != stats[j].TotalCount {
			return stats[i].TotalCount > stats[j].TotalCount
		}
		return stats[i].Pattern < stats[j].Pattern
	})

	if len(stats) > a.topPatternsLimit {
		stats = stats[:a.topPatternsLimit]
	}
	return stats
}

// improvements is recomputed from scratch on every read; suggestions are
// derived state, never stored.
func (a *Aggregator) improvements() []Improvement {
	var result []Improvement
	for tag, pc := range a.patterns {
		if pc.TotalCount < a.minPatternTotal {
			continue
		}
		rate := float64(pc.PositiveCount) / float64(pc.TotalCount)
		if rate >= a.lowPositiveRate {
			continue
		}
		result = append(result, Improvement{
			Pattern:      tag,
			TotalCount:   pc.TotalCount,
			PositiveRate: rate,
			Suggestion:   suggestionFor(tag),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].PositiveRate != result[j].PositiveRate {
			return result[i].PositiveRate < result[j].PositiveRate
		}
		return result[i].Pattern < result[j].Pattern
	})
	return result
}

func totalCount(counters map[string]*QuestionCounter) int {
	total := 0
	for _, qc := range counters {
		total += qc.Count
	}
	return total
}

var questionWords = []string{"what", "how", "why", "when", "where"}

var topicTags = []string{"sensory", "communication", "behavior", "education", "therapy", "sleep", "social"}

// DerivePatternTags extracts the feature labels a question contributes
// feedback to: its question-word type, topic keyword presence, and a length
// bucket.
func DerivePatternTags(normalized string) []string {
	var tags []string

	for _, w := range questionWords {
		if strings.HasPrefix(normalized, w) {
			tags = append(tags, w+"_questions")
			break
		}
	}

	for _, topic := range topicTags {
		if strings.Contains(normalized, topic) {
			tags = append(tags, topic+"_topics")
		}
	}

	words := len(strings.Fields(normalized))
	if words > 10 {
		tags = append(tags, "complex_questions")
	} else if words < 5 {
		tags = append(tags, "simple_questions")
	}

	return tags
}

var suggestions = map[string]string{
	"sensory_topics":       "Expand sensory-processing answers with more concrete environmental strategies",
	"communication_topics": "Add more detail on AAC options and practical communication supports",
	"behavior_topics":      "Review behavioral guidance for clearer, step-by-step de-escalation advice",
	"education_topics":     "Strengthen IEP and school-accommodation guidance with specific examples",
	"therapy_topics":       "Cover a broader range of evidence-based therapy options",
	"sleep_topics":         "Add dedicated sleep-routine guidance for different age groups",
	"social_topics":        "Include more structured social-skills strategies and examples",
	"complex_questions":    "Long questions may need more structured, multi-part answers",
	"simple_questions":     "Short questions may need clarifying follow-ups before answering",
}

func suggestionFor(tag string) string {
	if s, ok := suggestions[tag]; ok {
		return s
	}
	return "Review this topic area for answer quality"
}
