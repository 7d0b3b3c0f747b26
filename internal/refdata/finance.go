package refdata

// SalaryBand is the entry-level salary and annual growth rate for a
// field/pathway pair (GBP, UK market).
type SalaryBand struct {
	Starting   float64
	GrowthRate float64
}

// CostProfile is the annual education cost structure for a pathway in one
// country. A negative tuition means the learner is paid while studying.
// Duration is in years and may be fractional.
type CostProfile struct {
	Tuition       float64
	Living        float64
	DurationYears float64
}

// AnnualCost is tuition plus living for one year.
func (c CostProfile) AnnualCost() float64 {
	return c.Tuition + c.Living
}

// DefaultField is used when a user's field of interest has no salary row.
const DefaultField = "Technology & Software"

// FallbackCountry is used when a country has no cost row for a university
// pathway.
const FallbackCountry = "Local/Home Country"

// SalaryData maps field of interest to per-pathway salary bands.
var SalaryData = map[string]map[string]SalaryBand{
	"Technology & Software": {
		PathwayInternationalUniversity: {Starting: 32000, GrowthRate: 0.12},
		PathwayLocalUniversity:         {Starting: 28000, GrowthRate: 0.11},
		PathwayApprenticeship:          {Starting: 22000, GrowthRate: 0.16},
		PathwayMicroCredentials:        {Starting: 26000, GrowthRate: 0.18},
	},
	"Business & Finance": {
		PathwayInternationalUniversity: {Starting: 30000, GrowthRate: 0.10},
		PathwayLocalUniversity:         {Starting: 26000, GrowthRate: 0.09},
		PathwayApprenticeship:          {Starting: 20000, GrowthRate: 0.12},
		PathwayMicroCredentials:        {Starting: 24000, GrowthRate: 0.14},
	},
	"Healthcare & Medicine": {
		PathwayInternationalUniversity: {Starting: 28000, GrowthRate: 0.08},
		PathwayLocalUniversity:         {Starting: 26000, GrowthRate: 0.08},
		PathwayApprenticeship:          {Starting: 21000, GrowthRate: 0.10},
		PathwayMicroCredentials:        {Starting: 23000, GrowthRate: 0.11},
	},
	"Engineering & Manufacturing": {
		PathwayInternationalUniversity: {Starting: 31000, GrowthRate: 0.09},
		PathwayLocalUniversity:         {Starting: 28000, GrowthRate: 0.09},
		PathwayApprenticeship:          {Starting: 23000, GrowthRate: 0.14},
		PathwayMicroCredentials:        {Starting: 25000, GrowthRate: 0.13},
	},
	"Creative Arts & Design": {
		PathwayInternationalUniversity: {Starting: 22000, GrowthRate: 0.07},
		PathwayLocalUniversity:         {Starting: 20000, GrowthRate: 0.06},
		PathwayApprenticeship:          {Starting: 18000, GrowthRate: 0.11},
		PathwayMicroCredentials:        {Starting: 20000, GrowthRate: 0.13},
	},
	"Education & Social Services": {
		PathwayInternationalUniversity: {Starting: 24000, GrowthRate: 0.06},
		PathwayLocalUniversity:         {Starting: 23000, GrowthRate: 0.06},
		PathwayApprenticeship:          {Starting: 19000, GrowthRate: 0.08},
		PathwayMicroCredentials:        {Starting: 21000, GrowthRate: 0.09},
	},
	"Science & Research": {
		PathwayInternationalUniversity: {Starting: 27000, GrowthRate: 0.08},
		PathwayLocalUniversity:         {Starting: 25000, GrowthRate: 0.08},
		PathwayApprenticeship:          {Starting: 21000, GrowthRate: 0.10},
		PathwayMicroCredentials:        {Starting: 23000, GrowthRate: 0.11},
	},
	"Trades & Construction": {
		PathwayInternationalUniversity: {Starting: 24000, GrowthRate: 0.07},
		PathwayLocalUniversity:         {Starting: 23000, GrowthRate: 0.07},
		PathwayApprenticeship:          {Starting: 21000, GrowthRate: 0.15},
		PathwayMicroCredentials:        {Starting: 22000, GrowthRate: 0.13},
	},
}

// UniversityCosts maps country to annual costs for the two university
// pathways. UK figures are home fees.
var UniversityCosts = map[string]map[string]CostProfile{
	PathwayInternationalUniversity: {
		"USA":           {Tuition: 35000, Living: 14000, DurationYears: 4},
		"UK":            {Tuition: 9250, Living: 9000, DurationYears: 3},
		"Canada":        {Tuition: 18000, Living: 11000, DurationYears: 4},
		"Australia":     {Tuition: 20000, Living: 12000, DurationYears: 3},
		"Germany":       {Tuition: 2000, Living: 9000, DurationYears: 3},
		FallbackCountry: {Tuition: 9250, Living: 9000, DurationYears: 3},
	},
	PathwayLocalUniversity: {
		"USA":           {Tuition: 9000, Living: 9000, DurationYears: 4},
		"UK":            {Tuition: 9250, Living: 7000, DurationYears: 3},
		"Canada":        {Tuition: 6000, Living: 8000, DurationYears: 4},
		"Australia":     {Tuition: 7000, Living: 8500, DurationYears: 3},
		"Germany":       {Tuition: 400, Living: 8000, DurationYears: 3},
		FallbackCountry: {Tuition: 9250, Living: 7000, DurationYears: 3},
	},
}

// ApprenticeshipCost is country-independent. Negative tuition models the
// training wage earned during the programme.
var ApprenticeshipCost = CostProfile{Tuition: -12000, Living: 0, DurationYears: 2}

// MicroCredentialsCost models a six month bootcamp.
var MicroCredentialsCost = CostProfile{Tuition: 9000, Living: 0, DurationYears: 0.5}

// CostFor resolves the cost profile for a pathway and country. University
// pathways fall back to the home-country row when the country is unknown.
func CostFor(pathway, country string) (CostProfile, bool) {
	switch pathway {
	case PathwayApprenticeship:
		return ApprenticeshipCost, true
	case PathwayMicroCredentials:
		return MicroCredentialsCost, true
	}
	table, ok := UniversityCosts[pathway]
	if !ok {
		return CostProfile{}, false
	}
	if c, ok := table[country]; ok {
		return c, true
	}
	return table[FallbackCountry], true
}

// SalaryFor resolves the salary band for a field and pathway, falling back to
// the default field when the field is unknown.
func SalaryFor(field, pathway string) (SalaryBand, bool) {
	table, ok := SalaryData[field]
	if !ok {
		table = SalaryData[DefaultField]
	}
	band, ok := table[pathway]
	return band, ok
}
