package refdata

import "strings"

// Programme is a concrete UK programme a learner can apply to. A negative
// cost means the programme pays the learner over its full duration.
type Programme struct {
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Location          string   `json:"location"`
	Duration          string   `json:"duration"`
	Cost              float64  `json:"cost"`
	EntryRequirements string   `json:"entryRequirements"`
	StartingSalary    float64  `json:"startingSalary"`
	ApplicationLink   string   `json:"applicationLink"`
	FitTags           []string `json:"fitTags"`
	Ranking           string   `json:"ranking"`
}

// Career is one UK career path with salary trajectory and market context.
type Career struct {
	Title             string   `json:"title"`
	EntrySalary       float64  `json:"entrySalary"`
	Year5Salary       float64  `json:"year5Salary"`
	SeniorSalary      float64  `json:"seniorSalary"`
	GrowthRate        float64  `json:"growthRate"`
	RequiredEducation []string `json:"requiredEducation"`
	TopCompanies      []string `json:"topCompanies"`
	Demand            string   `json:"demand"`
	RemoteFriendly    bool     `json:"remoteFriendly"`
	Skills            []string `json:"skills"`
	JobOpeningsUK     string   `json:"jobOpeningsUK"`
}

// Programmes maps pathway name to its catalogue entries, best first.
var Programmes = map[string][]Programme{
	PathwayInternationalUniversity: {
		{
			Name:              "University of Oxford - Computer Science",
			Type:              "University",
			Location:          "Oxford, UK",
			Duration:          "3 years",
			Cost:              27750,
			EntryRequirements: "A*A*A",
			StartingSalary:    35000,
			ApplicationLink:   "https://www.ox.ac.uk",
			FitTags:           []string{"high_structure", "theoretical", "prestige"},
			Ranking:           "1",
		},
		{
			Name:              "Imperial College London - Engineering",
			Type:              "University",
			Location:          "London, UK",
			Duration:          "4 years (MEng)",
			Cost:              37000,
			EntryRequirements: "A*A*A",
			StartingSalary:    34000,
			ApplicationLink:   "https://www.imperial.ac.uk",
			FitTags:           []string{"high_structure", "technical", "prestige"},
			Ranking:           "2",
		},
		{
			Name:              "London School of Economics - Economics",
			Type:              "University",
			Location:          "London, UK",
			Duration:          "3 years",
			Cost:              27750,
			EntryRequirements: "A*AA",
			StartingSalary:    33000,
			ApplicationLink:   "https://www.lse.ac.uk",
			FitTags:           []string{"high_structure", "theoretical", "business"},
			Ranking:           "3",
		},
	},
	PathwayLocalUniversity: {
		{
			Name:              "University of Bristol - Computer Science",
			Type:              "University",
			Location:          "Bristol, UK",
			Duration:          "3 years",
			Cost:              27750,
			EntryRequirements: "AAB",
			StartingSalary:    29000,
			ApplicationLink:   "https://www.bristol.ac.uk",
			FitTags:           []string{"high_structure", "balanced", "russell_group"},
			Ranking:           "Russell Group",
		},
		{
			Name:              "University of Manchester - Engineering",
			Type:              "University",
			Location:          "Manchester, UK",
			Duration:          "3 years",
			Cost:              27750,
			EntryRequirements: "AAA",
			StartingSalary:    28000,
			ApplicationLink:   "https://www.manchester.ac.uk",
			FitTags:           []string{"high_structure", "technical", "russell_group"},
			Ranking:           "Russell Group",
		},
		{
			Name:              "University of Birmingham - Business",
			Type:              "University",
			Location:          "Birmingham, UK",
			Duration:          "3 years",
			Cost:              27750,
			EntryRequirements: "ABB",
			StartingSalary:    27000,
			ApplicationLink:   "https://www.birmingham.ac.uk",
			FitTags:           []string{"high_structure", "business", "russell_group"},
			Ranking:           "Russell Group",
		},
		{
			Name:              "Nottingham Trent University - Computing",
			Type:              "University",
			Location:          "Nottingham, UK",
			Duration:          "3 years",
			Cost:              27750,
			EntryRequirements: "BBC",
			StartingSalary:    25000,
			ApplicationLink:   "https://www.ntu.ac.uk",
			FitTags:           []string{"moderate_structure", "practical", "modern"},
			Ranking:           "Modern University",
		},
		{
			Name:              "Open University - Computing & IT",
			Type:              "Distance Learning",
			Location:          "Online",
			Duration:          "3-6 years (part-time)",
			Cost:              18000,
			EntryRequirements: "None",
			StartingSalary:    26000,
			ApplicationLink:   "https://www.open.ac.uk",
			FitTags:           []string{"flexible", "self_directed", "work_friendly"},
			Ranking:           "Distance Learning",
		},
	},
	PathwayApprenticeship: {
		{
			Name:              "Google Software Engineering Apprenticeship",
			Type:              "Apprenticeship",
			Location:          "London, UK",
			Duration:          "2 years",
			Cost:              -24000,
			EntryRequirements: "A-Levels or equivalent",
			StartingSalary:    28000,
			ApplicationLink:   "https://careers.google.com/apprenticeships",
			FitTags:           []string{"hands_on", "high_grit", "tech"},
			Ranking:           "Big Tech",
		},
		{
			Name:              "IBM Digital Technology Solutions Apprenticeship",
			Type:              "Apprenticeship",
			Location:          "Multiple UK locations",
			Duration:          "2 years",
			Cost:              -22000,
			EntryRequirements: "5 GCSEs grade 4+",
			StartingSalary:    26000,
			ApplicationLink:   "https://www.ibm.com/uk-en/employment/apprenticeships",
			FitTags:           []string{"hands_on", "tech", "structured"},
			Ranking:           "Big Tech",
		},
		{
			Name:              "Rolls-Royce Engineering Apprenticeship",
			Type:              "Apprenticeship",
			Location:          "Derby, UK",
			Duration:          "4 years",
			Cost:              -56000,
			EntryRequirements: "5 GCSEs grade 5+ (Maths & Science)",
			StartingSalary:    30000,
			ApplicationLink:   "https://careers.rolls-royce.com/apprenticeships",
			FitTags:           []string{"hands_on", "engineering", "prestigious"},
			Ranking:           "Engineering",
		},
		{
			Name:              "PwC Flying Start Degree Apprenticeship",
			Type:              "Degree Apprenticeship",
			Location:          "Multiple UK locations",
			Duration:          "5 years",
			Cost:              -75000,
			EntryRequirements: "ABB at A-Level",
			StartingSalary:    32000,
			ApplicationLink:   "https://www.pwc.co.uk/careers/school-jobs/flying-start-programmes.html",
			FitTags:           []string{"hands_on", "business", "degree_included"},
			Ranking:           "Big 4",
		},
		{
			Name:              "BAE Systems Engineering Apprenticeship",
			Type:              "Apprenticeship",
			Location:          "Various UK",
			Duration:          "4 years",
			Cost:              -52000,
			EntryRequirements: "5 GCSEs grade 5+",
			StartingSalary:    29000,
			ApplicationLink:   "https://www.baesystems.com/apprenticeships",
			FitTags:           []string{"hands_on", "engineering", "defence"},
			Ranking:           "Defence",
		},
		{
			Name:              "Amazon Software Development Apprenticeship",
			Type:              "Apprenticeship",
			Location:          "London, UK",
			Duration:          "2 years",
			Cost:              -24000,
			EntryRequirements: "A-Levels or equivalent",
			StartingSalary:    27000,
			ApplicationLink:   "https://www.amazon.jobs/apprenticeships",
			FitTags:           []string{"hands_on", "tech", "fast_paced"},
			Ranking:           "Big Tech",
		},
	},
	PathwayMicroCredentials: {
		{
			Name:              "Le Wagon - Full Stack Web Development",
			Type:              "Bootcamp",
			Location:          "London (+ Remote)",
			Duration:          "9 weeks",
			Cost:              7000,
			EntryRequirements: "None",
			StartingSalary:    28000,
			ApplicationLink:   "https://www.lewagon.com/london",
			FitTags:           []string{"intensive", "hands_on", "career_switcher"},
			Ranking:           "4.9/5 (Switchup)",
		},
		{
			Name:              "Makers Academy - Software Engineering",
			Type:              "Bootcamp",
			Location:          "London (+ Remote)",
			Duration:          "16 weeks",
			Cost:              8000,
			EntryRequirements: "None",
			StartingSalary:    30000,
			ApplicationLink:   "https://www.makers.tech",
			FitTags:           []string{"intensive", "career_switcher", "job_guarantee"},
			Ranking:           "4.8/5 (Course Report)",
		},
		{
			Name:              "General Assembly - Data Science",
			Type:              "Bootcamp",
			Location:          "London",
			Duration:          "12 weeks",
			Cost:              11000,
			EntryRequirements: "Basic programming",
			StartingSalary:    32000,
			ApplicationLink:   "https://generalassemb.ly/locations/london",
			FitTags:           []string{"intensive", "data_science", "global_network"},
			Ranking:           "4.5/5 (Switchup)",
		},
		{
			Name:              "Northcoders - Software Development",
			Type:              "Bootcamp",
			Location:          "Manchester (+ Remote)",
			Duration:          "13 weeks",
			Cost:              6500,
			EntryRequirements: "None",
			StartingSalary:    26000,
			ApplicationLink:   "https://www.northcoders.com",
			FitTags:           []string{"intensive", "northern", "affordable"},
			Ranking:           "4.9/5 (Course Report)",
		},
		{
			Name:              "CodeClan - Software Development",
			Type:              "Bootcamp",
			Location:          "Edinburgh/Glasgow",
			Duration:          "16 weeks",
			Cost:              5500,
			EntryRequirements: "None",
			StartingSalary:    25000,
			ApplicationLink:   "https://www.codeclan.com",
			FitTags:           []string{"intensive", "scotland", "affordable"},
			Ranking:           "4.8/5 (Switchup)",
		},
		{
			Name:              "HyperionDev - Data Science",
			Type:              "Online Bootcamp",
			Location:          "Fully Remote",
			Duration:          "3-6 months (part-time)",
			Cost:              4000,
			EntryRequirements: "None",
			StartingSalary:    27000,
			ApplicationLink:   "https://www.hyperiondev.com",
			FitTags:           []string{"flexible", "work_friendly", "affordable"},
			Ranking:           "4.7/5 (Trustpilot)",
		},
	},
}

// Careers maps field of interest to UK career entries.
var Careers = map[string][]Career{
	"Technology & Software": {
		{
			Title:             "Software Developer",
			EntrySalary:       28000,
			Year5Salary:       45000,
			SeniorSalary:      65000,
			GrowthRate:        0.15,
			RequiredEducation: []string{"Bootcamp", "Degree", "Apprenticeship"},
			TopCompanies:      []string{"Google", "Amazon", "Sky", "BBC", "Monzo"},
			Demand:            "Very High",
			RemoteFriendly:    true,
			Skills:            []string{"JavaScript", "Python", "React", "Git"},
			JobOpeningsUK:     "15,000+",
		},
		{
			Title:             "Data Analyst",
			EntrySalary:       26000,
			Year5Salary:       42000,
			SeniorSalary:      60000,
			GrowthRate:        0.14,
			RequiredEducation: []string{"Bootcamp", "Degree"},
			TopCompanies:      []string{"Deloitte", "KPMG", "British Airways", "HSBC"},
			Demand:            "High",
			RemoteFriendly:    true,
			Skills:            []string{"SQL", "Python", "Excel", "Tableau"},
			JobOpeningsUK:     "8,000+",
		},
		{
			Title:             "DevOps Engineer",
			EntrySalary:       32000,
			Year5Salary:       52000,
			SeniorSalary:      75000,
			GrowthRate:        0.16,
			RequiredEducation: []string{"Degree", "Apprenticeship", "Self-taught"},
			TopCompanies:      []string{"Amazon Web Services", "Google Cloud", "Cloudflare"},
			Demand:            "Very High",
			RemoteFriendly:    true,
			Skills:            []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
			JobOpeningsUK:     "6,000+",
		},
		{
			Title:             "Cloud Architect",
			EntrySalary:       40000,
			Year5Salary:       65000,
			SeniorSalary:      90000,
			GrowthRate:        0.15,
			RequiredEducation: []string{"Degree", "Self-taught with certs"},
			TopCompanies:      []string{"Accenture", "Capgemini", "AWS", "Microsoft"},
			Demand:            "High",
			RemoteFriendly:    true,
			Skills:            []string{"AWS", "Azure", "Architecture", "Security"},
			JobOpeningsUK:     "4,000+",
		},
		{
			Title:             "Cybersecurity Analyst",
			EntrySalary:       30000,
			Year5Salary:       48000,
			SeniorSalary:      70000,
			GrowthRate:        0.14,
			RequiredEducation: []string{"Degree", "Apprenticeship", "Certifications"},
			TopCompanies:      []string{"GCHQ", "BAE Systems", "Darktrace", "NCC Group"},
			Demand:            "Very High",
			RemoteFriendly:    false,
			Skills:            []string{"Network Security", "Penetration Testing", "CISSP"},
			JobOpeningsUK:     "5,500+",
		},
	},
	"Business & Finance": {
		{
			Title:             "Accountant (ACCA/CIMA)",
			EntrySalary:       24000,
			Year5Salary:       38000,
			SeniorSalary:      55000,
			GrowthRate:        0.12,
			RequiredEducation: []string{"Degree", "Apprenticeship + ACCA"},
			TopCompanies:      []string{"PwC", "Deloitte", "EY", "KPMG"},
			Demand:            "High",
			RemoteFriendly:    true,
			Skills:            []string{"Financial Reporting", "Tax", "Audit", "Excel"},
			JobOpeningsUK:     "12,000+",
		},
		{
			Title:             "Financial Analyst",
			EntrySalary:       28000,
			Year5Salary:       45000,
			SeniorSalary:      65000,
			GrowthRate:        0.13,
			RequiredEducation: []string{"Degree", "CFA"},
			TopCompanies:      []string{"JP Morgan", "Barclays", "HSBC", "Goldman Sachs"},
			Demand:            "Medium",
			RemoteFriendly:    true,
			Skills:            []string{"Financial Modelling", "Excel", "Bloomberg", "Valuation"},
			JobOpeningsUK:     "4,500+",
		},
		{
			Title:             "Management Consultant",
			EntrySalary:       32000,
			Year5Salary:       55000,
			SeniorSalary:      85000,
			GrowthRate:        0.15,
			RequiredEducation: []string{"Degree (Russell Group preferred)"},
			TopCompanies:      []string{"McKinsey", "BCG", "Bain", "Accenture"},
			Demand:            "Medium",
			RemoteFriendly:    false,
			Skills:            []string{"Problem Solving", "Excel", "PowerPoint", "Strategy"},
			JobOpeningsUK:     "3,000+",
		},
		{
			Title:             "Business Analyst",
			EntrySalary:       26000,
			Year5Salary:       40000,
			SeniorSalary:      58000,
			GrowthRate:        0.11,
			RequiredEducation: []string{"Degree", "Bootcamp"},
			TopCompanies:      []string{"Lloyds Banking Group", "Tesco", "BT"},
			Demand:            "High",
			RemoteFriendly:    true,
			Skills:            []string{"Requirements Gathering", "SQL", "Agile", "Stakeholder Management"},
			JobOpeningsUK:     "9,000+",
		},
	},
	"Engineering & Manufacturing": {
		{
			Title:             "Mechanical Engineer",
			EntrySalary:       27000,
			Year5Salary:       42000,
			SeniorSalary:      60000,
			GrowthRate:        0.12,
			RequiredEducation: []string{"Degree (MEng)", "Apprenticeship"},
			TopCompanies:      []string{"Rolls-Royce", "BAE Systems", "Airbus", "JLR"},
			Demand:            "High",
			RemoteFriendly:    false,
			Skills:            []string{"CAD", "SolidWorks", "FEA", "Manufacturing"},
			JobOpeningsUK:     "6,500+",
		},
		{
			Title:             "Electrical Engineer",
			EntrySalary:       28000,
			Year5Salary:       44000,
			SeniorSalary:      62000,
			GrowthRate:        0.13,
			RequiredEducation: []string{"Degree", "Apprenticeship"},
			TopCompanies:      []string{"National Grid", "Siemens", "ABB", "Schneider Electric"},
			Demand:            "High",
			RemoteFriendly:    false,
			Skills:            []string{"Circuit Design", "PLC Programming", "AutoCAD", "Testing"},
			JobOpeningsUK:     "5,000+",
		},
		{
			Title:             "Civil Engineer",
			EntrySalary:       26000,
			Year5Salary:       40000,
			SeniorSalary:      55000,
			GrowthRate:        0.11,
			RequiredEducation: []string{"Degree (BEng/MEng)"},
			TopCompanies:      []string{"Arup", "Mott MacDonald", "Balfour Beatty", "HS2"},
			Demand:            "High",
			RemoteFriendly:    false,
			Skills:            []string{"Structural Analysis", "AutoCAD", "Project Management"},
			JobOpeningsUK:     "7,000+",
		},
	},
	"Healthcare & Medicine": {
		{
			Title:             "Registered Nurse",
			EntrySalary:       25000,
			Year5Salary:       32000,
			SeniorSalary:      42000,
			GrowthRate:        0.07,
			RequiredEducation: []string{"Nursing Degree", "Apprenticeship (Nursing Associate)"},
			TopCompanies:      []string{"NHS", "Private Hospitals", "Care Homes"},
			Demand:            "Very High",
			RemoteFriendly:    false,
			Skills:            []string{"Patient Care", "Clinical Skills", "Compassion"},
			JobOpeningsUK:     "40,000+",
		},
		{
			Title:             "Physiotherapist",
			EntrySalary:       24000,
			Year5Salary:       32000,
			SeniorSalary:      44000,
			GrowthRate:        0.08,
			RequiredEducation: []string{"Degree (BSc Physiotherapy)"},
			TopCompanies:      []string{"NHS", "Nuffield Health", "Bupa"},
			Demand:            "High",
			RemoteFriendly:    false,
			Skills:            []string{"Manual Therapy", "Rehabilitation", "Patient Assessment"},
			JobOpeningsUK:     "5,000+",
		},
		{
			Title:             "Dental Nurse",
			EntrySalary:       20000,
			Year5Salary:       25000,
			SeniorSalary:      30000,
			GrowthRate:        0.06,
			RequiredEducation: []string{"Apprenticeship", "Diploma"},
			TopCompanies:      []string{"NHS Dentists", "Private Practices", "Bupa Dental"},
			Demand:            "High",
			RemoteFriendly:    false,
			Skills:            []string{"Dental Procedures", "Sterilization", "Patient Care"},
			JobOpeningsUK:     "8,000+",
		},
	},
	"Trades & Construction": {
		{
			Title:             "Electrician",
			EntrySalary:       22000,
			Year5Salary:       35000,
			SeniorSalary:      45000,
			GrowthRate:        0.14,
			RequiredEducation: []string{"Apprenticeship (Level 3)"},
			TopCompanies:      []string{"Self-employed", "Balfour Beatty", "Laing O'Rourke"},
			Demand:            "Very High",
			RemoteFriendly:    false,
			Skills:            []string{"Wiring", "18th Edition", "Testing & Inspection"},
			JobOpeningsUK:     "15,000+",
		},
		{
			Title:             "Plumber",
			EntrySalary:       21000,
			Year5Salary:       33000,
			SeniorSalary:      42000,
			GrowthRate:        0.13,
			RequiredEducation: []string{"Apprenticeship (Level 3)"},
			TopCompanies:      []string{"Self-employed", "British Gas", "Pimlico Plumbers"},
			Demand:            "Very High",
			RemoteFriendly:    false,
			Skills:            []string{"Pipework", "Gas Safe", "Central Heating"},
			JobOpeningsUK:     "12,000+",
		},
		{
			Title:             "Carpenter",
			EntrySalary:       20000,
			Year5Salary:       30000,
			SeniorSalary:      38000,
			GrowthRate:        0.12,
			RequiredEducation: []string{"Apprenticeship"},
			TopCompanies:      []string{"Self-employed", "Wates", "Morgan Sindall"},
			Demand:            "High",
			RemoteFriendly:    false,
			Skills:            []string{"Joinery", "Site Carpentry", "Reading Drawings"},
			JobOpeningsUK:     "10,000+",
		},
	},
}

// ProgrammesForPathway returns up to limit catalogue entries for a pathway.
func ProgrammesForPathway(pathway string, limit int) []Programme {
	list := Programmes[pathway]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

// CareersForField returns up to limit career entries for a field.
func CareersForField(field string, limit int) []Career {
	list := Careers[field]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

// CareerByTitle looks up a career by its title, case-insensitively.
func CareerByTitle(title string) (Career, bool) {
	for _, careers := range Careers {
		for _, c := range careers {
			if strings.EqualFold(c.Title, title) {
				return c, true
			}
		}
	}
	return Career{}, false
}
