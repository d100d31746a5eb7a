package knowledge

func builtinTopics() []Topic {
	return []Topic{
		{
			Key:     "sensory_processing",
			Summary: "Many individuals with autism experience differences in processing sensory information, which can affect their daily functioning and comfort.",
			Strategies: []string{
				"Create sensory-friendly environments with adjustable lighting and sound",
				"Use noise-canceling headphones in overwhelming environments",
				"Provide fidget toys or sensory tools for self-regulation",
				"Establish sensory breaks throughout the day",
				"Use weighted blankets or compression clothing for comfort",
				"Gradually expose to new sensory experiences at a comfortable pace",
			},
			Keywords:   []string{"sensory", "sound", "noise", "touch", "texture", "light", "smell", "overstimulation"},
			References: []string{"autism_speaks_sensory", "sensory_processing_disorder_foundation"},
		},
		{
			Key:     "communication",
			Summary: "Communication differences in autism can range from nonverbal to hyperlexic, with many individuals benefiting from alternative communication methods.",
			Strategies: []string{
				"Use visual supports like picture cards or communication boards",
				"Practice turn-taking in conversations",
				"Allow extra processing time for responses",
				"Use clear, concrete language rather than abstract concepts",
				"Implement AAC (Augmentative and Alternative Communication) devices",
				"Focus on functional communication goals",
			},
			Keywords:   []string{"communication", "speech", "language", "nonverbal", "talking", "aac", "pictures"},
			References: []string{"speech_pathology_autism", "aac_research_institute"},
		},
		{
			Key:     "education_support",
			Summary: "Educational support for students with autism includes individualized planning, accommodations, and evidence-based teaching strategies.",
			Strategies: []string{
				"Develop comprehensive IEP or 504 plans with specific goals",
				"Use visual schedules and structure in the classroom",
				"Provide quiet spaces for breaks and self-regulation",
				"Implement social skills instruction and peer support",
				"Use assistive technology when appropriate",
				"Collaborate with autism specialists and related service providers",
			},
			Keywords:   []string{"school", "education", "iep", "504", "teacher", "classroom", "learning", "academics"},
			References: []string{"idea_autism_guidelines", "national_autism_center_education"},
		},
		{
			Key:     "behavioral_support",
			Summary: "Behavioral approaches for autism focus on understanding the function of behaviors and teaching appropriate alternatives.",
			Strategies: []string{
				"Identify triggers and functions of challenging behaviors",
				"Use positive behavior interventions and supports (PBIS)",
				"Teach coping skills and emotional regulation strategies",
				"Create predictable routines and clear expectations",
				"Use visual cues and social stories for behavior guidance",
				"Implement reinforcement systems for desired behaviors",
			},
			Keywords:   []string{"behavior", "meltdown", "tantrum", "stimming", "routine", "challenging", "aggression"},
			References: []string{"applied_behavior_analysis", "positive_behavior_support"},
		},
		{
			Key:     "social_skills",
			Summary: "Social skills development for individuals with autism involves explicit teaching of social conventions and interaction patterns.",
			Strategies: []string{
				"Use social stories to explain social situations",
				"Practice social interactions in structured settings",
				"Teach perspective-taking and emotion recognition",
				"Facilitate peer interactions and friendships",
				"Use video modeling for social skill demonstration",
				"Create social skills groups with similar-aged peers",
			},
			Keywords:   []string{"social", "friends", "interaction", "play", "conversation", "peers", "relationships"},
			References: []string{"social_thinking_methodology", "peer_mediated_interventions"},
		},
		{
			Key:     "early_intervention",
			Summary: "Early intervention services for young children with autism focus on developmental skills and family support.",
			Strategies: []string{
				"Begin intervention as early as possible (before age 3 preferred)",
				"Use naturalistic teaching strategies in daily routines",
				"Focus on communication and social engagement",
				"Provide parent training and family support",
				"Implement play-based learning approaches",
				"Coordinate services across multiple disciplines",
			},
			Keywords:   []string{"early", "intervention", "toddler", "baby", "development", "milestones", "signs"},
			References: []string{"early_intervention_autism", "zero_to_three_autism"},
		},
		{
			Key:     "adult_support",
			Summary: "Adults with autism benefit from support in employment, independent living, and community participation.",
			Strategies: []string{
				"Develop employment skills and job coaching support",
				"Teach independent living skills and self-advocacy",
				"Provide social opportunities and community connections",
				"Support post-secondary education and training",
				"Address mental health and wellness needs",
				"Facilitate transition planning from school to adult services",
			},
			Keywords:   []string{"adult", "employment", "job", "work", "independence", "college", "transition"},
			References: []string{"autism_employment_network", "adult_autism_services"},
		},
		{
			Key:     "family_support",
			Summary: "Family support is crucial for autism care, including education, respite, and emotional support for all family members.",
			Strategies: []string{
				"Connect families with local autism support groups",
				"Provide respite care and family break opportunities",
				"Offer sibling support programs and resources",
				"Share information about autism and evidence-based practices",
				"Support family advocacy and self-determination",
				"Address family stress and mental health needs",
			},
			Keywords:   []string{"family", "parent", "sibling", "support", "help", "stress", "respite"},
			References: []string{"family_support_autism", "sibling_support_project"},
		},
		{
			Key:     "funding_resources",
			Summary: "Various funding sources exist to support autism services, including government programs, insurance coverage, and grants.",
			Strategies: []string{
				"Explore Medicaid waiver programs for autism services",
				"Understand insurance coverage for autism treatments",
				"Research state-specific autism funding programs",
				"Apply for grants and scholarships for autism support",
				"Utilize federal programs like Social Security benefits",
				"Connect with local autism organizations for funding assistance",
			},
			Keywords:   []string{"insurance", "funding", "medicaid", "government", "financial", "grants", "money"},
			References: []string{"autism_insurance_advocacy", "medicaid_autism_services"},
		},
	}
}
