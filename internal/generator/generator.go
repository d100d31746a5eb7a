package generator

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/aurora-assist/backend/internal/classifier"
	"github.com/aurora-assist/backend/internal/knowledge"
	"github.com/aurora-assist/backend/internal/textproc"
	"github.com/aurora-assist/backend/pkg/logger"
)

const (
	consultationDisclaimer = "For personalized guidance and medical decisions, please consult healthcare professionals or autism specialists."
	betaDisclaimer         = "I am still in Beta, I can make mistakes."

	generalGuidance = "I understand you're asking about autism-related topics. For the most accurate, personalized guidance, please consult with healthcare professionals or autism specialists. Helpful starting points include:\n\n" +
		"• Autism Speaks: autismspeaks.org\n" +
		"• National Autism Association: nationalautismassociation.org\n" +
		"• Autism Society of America: autism-society.org\n\n" +
		betaDisclaimer

	crisisGuidance = "If you're experiencing a crisis or emergency, please contact:\n\n" +
		"• National Suicide Prevention Lifeline: 988\n" +
		"• Crisis Text Line: Text HOME to 741741\n" +
		"• Emergency Services: 911\n\n" +
		"I'm currently experiencing technical difficulties, but your safety is the priority."
)

// GuidanceService is the slice of the LLM client the generator needs.
type GuidanceService interface {
	GenerateGuidance(ctx context.Context, question, knowledgeContext string) (string, error)
}

// Generator produces the answer text for an in-domain question, either by
// delegating to the text-generation service or by composing directly from the
// knowledge base. It never returns an empty answer.
type Generator struct {
	kb  *knowledge.Base
	svc GuidanceService
}

// New builds a generator. svc may be nil, in which case every answer is
// composed from the knowledge base.
func New(kb *knowledge.Base, svc GuidanceService) *Generator {
	return &Generator{kb: kb, svc: svc}
}

func (g *Generator) Generate(ctx context.Context, question string, cls classifier.Result) string {
	if g.svc != nil {
		text, err := g.svc.GenerateGuidance(ctx, question, g.knowledgeContext(question, cls))
		if err == nil {
			if clean := textproc.Canonicalize(text); clean != "" {
				return clean
			}
			logger.Warn("Generation service returned empty answer, composing from knowledge base")
		} else {
			logger.Warn("Generation service failed, composing from knowledge base", zap.Error(err))
			if isCrisis(question, cls) {
				return crisisGuidance
			}
		}
	}

	return textproc.Canonicalize(g.composeFromKnowledge(question, cls))
}

func (g *Generator) composeFromKnowledge(question string, cls classifier.Result) string {
	topics := g.kb.FindRelevant(question, cls.DetectedTopics)
	if len(topics) == 0 {
		return generalGuidance
	}

	var b strings.Builder
	for _, topic := range topics {
		b.WriteString(displayTitle(topic.Key))
		b.WriteString("\n\n")
		b.WriteString(topic.Summary)
		b.WriteString("\n\nStrategies that often help:\n")
		for _, strategy := range topic.Strategies {
			b.WriteString("• ")
			b.WriteString(strategy)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(consultationDisclaimer)
	b.WriteString("\n\n")
	b.WriteString(betaDisclaimer)

	return b.String()
}

// knowledgeContext packages the relevant topics for the generation prompt.
func (g *Generator) knowledgeContext(question string, cls classifier.Result) string {
	topics := g.kb.FindRelevant(question, cls.DetectedTopics)

	ctx := make(map[string]any, len(topics))
	for _, topic := range topics {
		ctx[topic.Key] = map[string]any{
			"summary":    topic.Summary,
			"strategies": topic.Strategies,
		}
	}

	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func isCrisis(question string, cls classifier.Result) bool {
	for _, topic := range cls.DetectedTopics {
		if topic == "crisis" {
			return true
		}
	}
	return strings.Contains(question, "emergency") || strings.Contains(question, "crisis")
}

// displayTitle turns a topic key like "sensory_processing" into
// "Sensory Processing".
func displayTitle(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
