package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// MetaHandler serves the informational endpoints the web front end uses to
// render topic suggestions and the about panel.
type MetaHandler struct {
	llmConfigured bool
	startedAt     time.Time
}

func NewMetaHandler(llmConfigured bool) *MetaHandler {
	return &MetaHandler{llmConfigured: llmConfigured, startedAt: time.Now()}
}

type suggestedTopic struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

func (h *MetaHandler) HandleTopics(c *fiber.Ctx) error {
	topics := []suggestedTopic{
		{
			ID:          "early_signs",
			Title:       "Early Signs & Diagnosis",
			Description: "Recognizing autism signs and the diagnosis process",
			Examples: []string{
				"What are early signs of autism in toddlers?",
				"How is autism diagnosed?",
				"When should I be concerned about development?",
			},
		},
		{
			ID:          "school_support",
			Title:       "School Support",
			Description: "Educational accommodations and IEP guidance",
			Examples: []string{
				"How do I get an IEP for my child?",
				"What accommodations help in school?",
				"How to work with teachers on autism support?",
			},
		},
		{
			ID:          "daily_routines",
			Title:       "Daily Routines",
			Description: "Managing daily activities and transitions",
			Examples: []string{
				"How to create good routines for autism?",
				"Managing transitions and changes",
				"Help with morning and bedtime routines",
			},
		},
		{
			ID:          "communication",
			Title:       "Communication Tips",
			Description: "Supporting communication development",
			Examples: []string{
				"How to help nonverbal communication?",
				"What is AAC and how does it help?",
				"Improving conversation skills",
			},
		},
		{
			ID:          "sensory_issues",
			Title:       "Sensory Issues",
			Description: "Managing sensory processing differences",
			Examples: []string{
				"How to handle sensory overload?",
				"Creating sensory-friendly environments",
				"What are sensory processing issues?",
			},
		},
		{
			ID:          "family_resources",
			Title:       "Family Resources",
			Description: "Support for families and caregivers",
			Examples: []string{
				"Where to find autism support groups?",
				"How to get respite care?",
				"Resources for autism families",
			},
		},
	}

	return c.JSON(fiber.Map{
		"topics":  topics,
		"message": "Click any topic below or ask me anything about autism!",
	})
}

func (h *MetaHandler) HandleStatus(c *fiber.Ctx) error {
	status := "operational"
	aiService := "connected"
	if !h.llmConfigured {
		status = "degraded"
		aiService = "not_configured"
	}

	return c.JSON(fiber.Map{
		"service":    "Aurora Autism Assistant",
		"status":     status,
		"version":    assistantVersion,
		"ai_service": aiService,
		"uptime_sec": int(time.Since(h.startedAt).Seconds()),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *MetaHandler) HandleAbout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    assistantName,
		"tagline": "Your autism support assistant",
		"version": assistantVersion,
		"status":  "Beta - I can make mistakes",
		"purpose": "Specialized AI assistant for autism spectrum disorder information and support",
		"capabilities": []string{
			"Answer autism-related questions",
			"Provide evidence-based guidance",
			"Share credible resources and references",
			"Support families and individuals",
			"Redirect non-autism questions appropriately",
		},
		"limitations": []string{
			"Cannot provide medical diagnosis",
			"General information only",
			"Beta version with potential errors",
			"Always recommend professional consultation for medical decisions",
		},
		"contact": fiber.Map{
			"emergency":          "For emergencies, contact 911 or local emergency services",
			"crisis":             "Crisis Text Line: Text HOME to 741741",
			"suicide_prevention": "National Suicide Prevention Lifeline: 988",
		},
	})
}
