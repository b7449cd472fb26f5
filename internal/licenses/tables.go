package licenses

// Requirement is one license a business category needs.
type Requirement struct {
	Name           string `json:"name"`
	Authority      string `json:"authority"`
	FeeUSD         string `json:"fee"`
	ProcessingTime string `json:"processingTime"`
	Notes          string `json:"notes,omitempty"`
}

var requirementsByCategory = map[string][]Requirement{
	"restaurant": {
		{Name: "Food Service License", Authority: "County Health Department", FeeUSD: "$100-$1,000", ProcessingTime: "2-6 weeks", Notes: "Requires a passed health inspection"},
		{Name: "Food Handler Permits", Authority: "County Health Department", FeeUSD: "$10-$50 per employee", ProcessingTime: "1 week"},
		{Name: "Liquor License", Authority: "State Alcoholic Beverage Control", FeeUSD: "$300-$14,000", ProcessingTime: "2-6 months", Notes: "Only if serving alcohol; quotas apply in some states"},
	},
	"retail": {
		{Name: "Seller's Permit", Authority: "State Department of Revenue", FeeUSD: "$0-$100", ProcessingTime: "1-2 weeks"},
		{Name: "Resale Certificate", Authority: "State Department of Revenue", FeeUSD: "$0", ProcessingTime: "immediate"},
	},
	"construction": {
		{Name: "General Contractor License", Authority: "State Contractors Board", FeeUSD: "$300-$600", ProcessingTime: "4-8 weeks", Notes: "Exam and bonding usually required"},
		{Name: "Building Permits", Authority: "City Building Department", FeeUSD: "varies per project", ProcessingTime: "1-4 weeks"},
	},
	"salon": {
		{Name: "Cosmetology Establishment License", Authority: "State Board of Cosmetology", FeeUSD: "$50-$200", ProcessingTime: "2-4 weeks"},
		{Name: "Individual Practitioner Licenses", Authority: "State Board of Cosmetology", FeeUSD: "$40-$150 per practitioner", ProcessingTime: "2-4 weeks"},
	},
	"daycare": {
		{Name: "Child Care Center License", Authority: "State Department of Human Services", FeeUSD: "$100-$500", ProcessingTime: "2-4 months", Notes: "Background checks and facility inspection required"},
	},
	"auto repair": {
		{Name: "Automotive Repair Dealer Registration", Authority: "State Bureau of Automotive Repair", FeeUSD: "$200", ProcessingTime: "2-4 weeks"},
		{Name: "EPA Section 609 Certification", Authority: "US EPA", FeeUSD: "$20-$50 per technician", ProcessingTime: "immediate", Notes: "Required for refrigerant handling"},
	},
}

// stateRegistration covers the general business registration every category
// needs in addition to its category-specific licenses.
type stateRegistration struct {
	FilingFeeUSD string
	Agency       string
}

var registrationByState = map[string]stateRegistration{
	"AL": {FilingFeeUSD: "$200", Agency: "Alabama Secretary of State"},
	"AZ": {FilingFeeUSD: "$50", Agency: "Arizona Corporation Commission"},
	"CA": {FilingFeeUSD: "$70", Agency: "California Secretary of State"},
	"CO": {FilingFeeUSD: "$50", Agency: "Colorado Secretary of State"},
	"FL": {FilingFeeUSD: "$125", Agency: "Florida Division of Corporations"},
	"GA": {FilingFeeUSD: "$100", Agency: "Georgia Secretary of State"},
	"IL": {FilingFeeUSD: "$150", Agency: "Illinois Secretary of State"},
	"MA": {FilingFeeUSD: "$500", Agency: "Massachusetts Secretary of the Commonwealth"},
	"NC": {FilingFeeUSD: "$125", Agency: "North Carolina Secretary of State"},
	"NJ": {FilingFeeUSD: "$125", Agency: "New Jersey Division of Revenue"},
	"NV": {FilingFeeUSD: "$425", Agency: "Nevada Secretary of State"},
	"NY": {FilingFeeUSD: "$200", Agency: "New York Department of State"},
	"OH": {FilingFeeUSD: "$99", Agency: "Ohio Secretary of State"},
	"PA": {FilingFeeUSD: "$125", Agency: "Pennsylvania Department of State"},
	"TX": {FilingFeeUSD: "$300", Agency: "Texas Secretary of State"},
	"WA": {FilingFeeUSD: "$180", Agency: "Washington Secretary of State"},
}
