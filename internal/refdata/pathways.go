package refdata

// TraitRange is an inclusive ideal band on the 0-10 trait scale.
type TraitRange struct {
	Min, Max float64
}

// Contains reports whether v falls inside the band.
func (r TraitRange) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Distance returns how far v lies outside the band, 0 when inside.
func (r TraitRange) Distance(v float64) float64 {
	if v < r.Min {
		return r.Min - v
	}
	if v > r.Max {
		return v - r.Max
	}
	return 0
}

// PathwayArchetype describes one education pathway: the trait profile it
// suits, the budget floor to enter it, and a short description.
type PathwayArchetype struct {
	Name         string
	IdealProfile map[string]TraitRange
	MinBudget    float64
	Description  string
}

// Pathway names. Declaration order here doubles as the tie-break order when
// fit scores are equal.
const (
	PathwayInternationalUniversity = "International University"
	PathwayLocalUniversity         = "Local University"
	PathwayApprenticeship          = "Apprenticeship"
	PathwayMicroCredentials        = "Micro-Credentials"
)

// Pathways is the fixed, ordered archetype list.
var Pathways = []PathwayArchetype{
	{
		Name: PathwayInternationalUniversity,
		IdealProfile: map[string]TraitRange{
			"grit":           {Min: 5, Max: 10},
			"hands_on":       {Min: 0, Max: 6},
			"structure":      {Min: 6, Max: 10},
			"risk_tolerance": {Min: 3, Max: 7},
		},
		MinBudget:   30000,
		Description: "Traditional 4-year international degree program",
	},
	{
		Name: PathwayLocalUniversity,
		IdealProfile: map[string]TraitRange{
			"grit":           {Min: 4, Max: 10},
			"hands_on":       {Min: 0, Max: 7},
			"structure":      {Min: 5, Max: 10},
			"risk_tolerance": {Min: 4, Max: 8},
		},
		MinBudget:   10000,
		Description: "Domestic 4-year degree program with lower costs",
	},
	{
		Name: PathwayApprenticeship,
		IdealProfile: map[string]TraitRange{
			"grit":           {Min: 6, Max: 10},
			"hands_on":       {Min: 7, Max: 10},
			"structure":      {Min: 4, Max: 9},
			"risk_tolerance": {Min: 5, Max: 10},
		},
		MinBudget:   0,
		Description: "Earn while you learn - paid work-based training",
	},
	{
		Name: PathwayMicroCredentials,
		IdealProfile: map[string]TraitRange{
			"grit":           {Min: 7, Max: 10},
			"hands_on":       {Min: 6, Max: 10},
			"structure":      {Min: 0, Max: 6},
			"risk_tolerance": {Min: 6, Max: 10},
		},
		MinBudget:   5000,
		Description: "Bootcamps, certificates, and project-based learning",
	},
}

// PathwayNames returns the pathway names in declaration order.
func PathwayNames() []string {
	names := make([]string, len(Pathways))
	for i, p := range Pathways {
		names[i] = p.Name
	}
	return names
}

// PathwayByName returns the archetype with the given name.
func PathwayByName(name string) (PathwayArchetype, bool) {
	for _, p := range Pathways {
		if p.Name == name {
			return p, true
		}
	}
	return PathwayArchetype{}, false
}
