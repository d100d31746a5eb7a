package references

func builtinReferences() []Reference {
	return []Reference{
		{
			ID:           "cdc_autism",
			Title:        "Autism Spectrum Disorder Information",
			Organization: "Centers for Disease Control and Prevention",
			URL:          "https://www.cdc.gov/autism/",
			Type:         "government",
			Credibility:  "highest",
			Description:  "Official CDC information on autism spectrum disorder",
			Keywords:     []string{"diagnosis", "prevalence", "research", "early", "signs"},
		},
		{
			ID:           "nih_autism",
			Title:        "Autism Research and Information",
			Organization: "National Institute of Mental Health",
			URL:          "https://www.nimh.nih.gov/health/topics/autism-spectrum-disorders",
			Type:         "government",
			Credibility:  "highest",
			Description:  "NIH research and clinical information on autism",
			Keywords:     []string{"research", "treatment", "diagnosis", "clinical"},
		},
		{
			ID:           "autism_speaks_main",
			Title:        "Autism Speaks Resource Library",
			Organization: "Autism Speaks",
			URL:          "https://www.autismspeaks.org/",
			Type:         "nonprofit",
			Credibility:  "high",
			Description:  "Comprehensive autism resources and advocacy",
			Keywords:     []string{"advocacy", "family", "support", "resources", "awareness"},
		},
		{
			ID:           "autism_speaks_sensory",
			Title:        "Sensory Issues and Autism",
			Organization: "Autism Speaks",
			URL:          "https://www.autismspeaks.org/sensory-issues",
			Type:         "nonprofit",
			Credibility:  "high",
			Description:  "Guide to sensory processing in autism",
			Keywords:     []string{"sensory", "processing", "overstimulation", "environment"},
		},
		{
			ID:           "national_autism_center",
			Title:        "Evidence-Based Practice Guidelines",
			Organization: "National Autism Center",
			URL:          "https://www.nationalautismcenter.org/",
			Type:         "nonprofit",
			Credibility:  "highest",
			Description:  "Research-based autism intervention guidelines",
			Keywords:     []string{"evidence", "treatment", "intervention", "research", "guidelines"},
		},
		{
			ID:           "autistic_self_advocacy",
			Title:        "Autistic Self Advocacy Network",
			Organization: "ASAN",
			URL:          "https://autisticadvocacy.org/",
			Type:         "advocacy",
			Credibility:  "high",
			Description:  "Self-advocacy and rights information by autistic people",
			Keywords:     []string{"self-advocacy", "rights", "community", "autistic", "perspective"},
		},
		{
			ID:           "idea_autism_guidelines",
			Title:        "IDEA and Autism Educational Services",
			Organization: "U.S. Department of Education",
			URL:          "https://sites.ed.gov/idea/",
			Type:         "government",
			Credibility:  "highest",
			Description:  "Special education law and autism services",
			Keywords:     []string{"education", "iep", "504", "school", "legal", "rights"},
		},
		{
			ID:           "center_autism_education",
			Title:        "Center for Autism and Related Disabilities",
			Organization: "University of Florida",
			URL:          "https://card.ufl.edu/",
			Type:         "academic",
			Credibility:  "high",
			Description:  "Educational support and training resources",
			Keywords:     []string{"education", "training", "support", "academic", "school"},
		},
		{
			ID:           "applied_behavior_analysis",
			Title:        "ABA Evidence Base",
			Organization: "Behavior Analyst Certification Board",
			URL:          "https://www.bacb.com/",
			Type:         "professional",
			Credibility:  "high",
			Description:  "Applied behavior analysis certification and standards",
			Keywords:     []string{"aba", "behavior", "therapy", "intervention", "evidence"},
		},
		{
			ID:           "speech_pathology_autism",
			Title:        "Autism and Communication",
			Organization: "American Speech-Language-Hearing Association",
			URL:          "https://www.asha.org/practice-portal/clinical-topics/autism/",
			Type:         "professional",
			Credibility:  "highest",
			Description:  "Speech-language pathology practice guidelines for autism",
			Keywords:     []string{"communication", "speech", "language", "therapy", "aac"},
		},
		{
			ID:           "occupational_therapy_autism",
			Title:        "Occupational Therapy and Autism",
			Organization: "American Occupational Therapy Association",
			URL:          "https://www.aota.org/",
			Type:         "professional",
			Credibility:  "high",
			Description:  "Occupational therapy interventions for autism",
			Keywords:     []string{"occupational", "therapy", "sensory", "daily", "living", "skills"},
		},
		{
			ID:           "autism_employment_network",
			Title:        "Autism at Work",
			Organization: "Autism Speaks",
			URL:          "https://www.autismspeaks.org/autism-work",
			Type:         "nonprofit",
			Credibility:  "high",
			Description:  "Employment resources for adults with autism",
			Keywords:     []string{"employment", "adult", "work", "job", "career", "workplace"},
		},
		{
			ID:           "adult_autism_services",
			Title:        "Adult Autism Services Guide",
			Organization: "Organization for Autism Research",
			URL:          "https://researchautism.org/",
			Type:         "nonprofit",
			Credibility:  "high",
			Description:  "Research and resources for adult autism support",
			Keywords:     []string{"adult", "services", "independence", "support", "transition"},
		},
		{
			ID:           "family_support_autism",
			Title:        "Family Support Resources",
			Organization: "Autism Society of America",
			URL:          "https://www.autism-society.org/",
			Type:         "nonprofit",
			Credibility:  "high",
			Description:  "Family support and local chapter resources",
			Keywords:     []string{"family", "support", "parent", "sibling", "local", "chapter"},
		},
		{
			ID:           "sibling_support_project",
			Title:        "Sibling Support Project",
			Organization: "The Arc",
			URL:          "https://www.siblingsupport.org/",
			Type:         "nonprofit",
			Credibility:  "high",
			Description:  "Support for siblings of people with disabilities",
			Keywords:     []string{"sibling", "family", "support", "disability", "brother", "sister"},
		},
		{
			ID:           "autism_insurance_advocacy",
			Title:        "Insurance Coverage for Autism",
			Organization: "Autism Speaks",
			URL:          "https://www.autismspeaks.org/insurance",
			Type:         "nonprofit",
			Credibility:  "high",
			Description:  "Insurance advocacy and coverage information",
			Keywords:     []string{"insurance", "coverage", "advocacy", "funding", "benefits"},
		},
		{
			ID:           "medicaid_autism_services",
			Title:        "Medicaid Autism Services",
			Organization: "Centers for Medicare & Medicaid Services",
			URL:          "https://www.medicaid.gov/",
			Type:         "government",
			Credibility:  "highest",
			Description:  "Medicaid coverage for autism services",
			Keywords:     []string{"medicaid", "government", "funding", "services", "waiver"},
		},
		{
			ID:           "crisis_text_line",
			Title:        "Crisis Text Line",
			Organization: "Crisis Text Line",
			URL:          "https://www.crisistextline.org/",
			Type:         "crisis",
			Credibility:  "highest",
			Description:  "24/7 crisis support via text",
			Keywords:     []string{"crisis", "emergency", "mental", "health", "support", "text"},
		},
		{
			ID:           "suicide_prevention",
			Title:        "National Suicide Prevention Lifeline",
			Organization: "SAMHSA",
			URL:          "https://suicidepreventionlifeline.org/",
			Type:         "crisis",
			Credibility:  "highest",
			Description:  "24/7 suicide prevention and crisis support",
			Keywords:     []string{"suicide", "prevention", "crisis", "mental", "health", "emergency"},
		},
		{
			ID:           "autism_speaks_crisis",
			Title:        "Autism Crisis Resources",
			Organization: "Autism Speaks",
			URL:          "https://www.autismspeaks.org/autism-safety-project",
			Type:         "nonprofit",
			Credibility:  "high",
			Description:  "Crisis and safety resources for autism community",
			Keywords:     []string{"crisis", "safety", "emergency", "autism", "wandering", "elopement"},
		},
		{
			ID:           "cochrane_autism",
			Title:        "Cochrane Autism Reviews",
			Organization: "Cochrane Library",
			URL:          "https://www.cochranelibrary.com/",
			Type:         "academic",
			Credibility:  "highest",
			Description:  "Systematic reviews of autism interventions",
			Keywords:     []string{"research", "evidence", "systematic", "review", "cochrane"},
		},
		{
			ID:           "journal_autism",
			Title:        "Journal of Autism and Developmental Disorders",
			Organization: "Springer",
			URL:          "https://link.springer.com/journal/10803",
			Type:         "academic",
			Credibility:  "highest",
			Description:  "Peer-reviewed autism research journal",
			Keywords:     []string{"research", "journal", "peer-reviewed", "academic", "study"},
		},
	}
}
