package refdata

// KeywordCategory is one keyword family scanned during text analysis.
// Matching is case-insensitive substring containment against the lowered
// input, so multi-word phrases and word fragments both count.
type KeywordCategory struct {
	Name     string
	Keywords []string
	Weight   float64
}

// TraitKeywordCategories maps directly onto the four trait dimensions and
// contributes to score merging. The remaining categories are profile-only.
var TraitKeywordCategories = map[string]bool{
	"hands_on":       true,
	"grit":           true,
	"structure":      true,
	"risk_tolerance": true,
}

// KeywordCategories is the fixed, ordered category list. Order determines the
// iteration order of analysis output.
var KeywordCategories = []KeywordCategory{
	{
		Name: "hands_on",
		Keywords: []string{
			"built", "created", "designed", "developed", "constructed", "assembled",
			"made", "crafted", "engineered", "fabricated", "installed", "repaired",
			"fixed", "maintained", "renovated", "restored",

			"arduino", "raspberry pi", " 3d print", "cnc", "laser cut",
			"woodwork", "metalwork", "electronics", "robotics", "mechanics",
			"plumbing", "electrical", "carpentry", "welding", "soldering",

			"workshop", "garage", "prototype", "hack", "mod", "custom",
			"hands-on", "practical", "physical", "manual", "technical",
		},
		Weight: 1.5,
	},
	{
		Name: "grit",
		Keywords: []string{
			"persevered", "overcame", "despite", "challenge", "difficult",
			"struggled", "failed", "tried again", "persisted", "determined",
			"resilient", "tenacious", "dedication", "commitment",

			"marathon", "years of", "self-taught", "practiced", "trained",
			"improved", "progressed", "developed over", "journey",

			"award", "achievement", "competition", "championship", "medal",
			"distinction", "honors", "scholarship", "recognition",

			"setback", "obstacle", "barrier", "difficulty", "adversity",
		},
		Weight: 1.0,
	},
	{
		Name: "structure",
		Keywords: []string{
			"organized", "planned", "scheduled", "structured", "systematic",
			"process", "procedure", "framework", "methodology", "strategy",
			"agenda", "timeline", "roadmap", "checklist", "protocol",

			"research", "thesis", "dissertation", "paper", "study",
			"analysis", "methodology", "framework", "academic",

			"policy", "regulation", "compliance", "standard", "guideline",
			"certification", "accredited", "qualified", "licensed",
		},
		Weight: 1.0,
	},
	{
		Name: "risk_tolerance",
		Keywords: []string{
			"startup", "founded", "launched", "business", "venture",
			"entrepreneur", "self-employed", "freelance", "independent",

			"innovative", "experimental", "novel", "creative", "original",
			"unique", "unconventional", "pioneered", "first to",

			"risk", "bold", "ambitious", "challenged", "pushed boundaries",
			"explored", "ventured", "gamble", "uncertain",

			"changed", "adapted", "flexible", "pivoted", "transformed",
			"evolved", "adjusted", "dynamic",
		},
		Weight: 1.0,
	},
	{
		Name: "leadership",
		Keywords: []string{
			"led", "managed", "supervised", "directed", "coordinated",
			"captain", "president", "chair", "head", "chief", "leader",
			"founder", "co-founder", "director", "manager",

			"mentored", "coached", "trained", "taught", "guided",
			"motivated", "inspired", "delegated", "organized team",

			"initiated", "established", "created team", "recruited",
			"mobilized", "rallied", "united",
		},
		Weight: 1.2,
	},
	{
		Name: "academic_strength",
		Keywords: []string{
			"grade a", "a*", "distinction", "first class", "honors",
			"scholarship", "academic award", "dean's list",

			"research", "published", "thesis", "dissertation", "paper",
			"journal", "conference", "presentation", "analysis",

			"advanced", "higher level", "university course", "ap",
			"extension", "enrichment", "gifted",
		},
		Weight: 1.0,
	},
	{
		Name: "work_experience",
		Keywords: []string{
			"worked", "employed", "job", "position", "role",
			"internship", "placement", "apprenticeship", "work experience",

			"responsible for", "duties", "tasks", "managed",
			"handled", "operated", "served", "assisted",

			"part-time", "full-time", "summer job", "weekend",
			"months", "years", "currently working",
		},
		Weight: 1.0,
	},
}
