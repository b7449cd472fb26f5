package advice

// topic is one canned knowledge-base entry. Matching is plain keyword
// overlap, not language understanding.
type topic struct {
	Name     string
	Keywords []string
	Guidance string
	Cases    []CaseSummary
}

// CaseSummary is an illustrative (fictionalized) precedent attached to a
// topic.
type CaseSummary struct {
	Title   string `json:"title"`
	Year    int    `json:"year"`
	Outcome string `json:"outcome"`
}

var topics = []topic{
	{
		Name:     "Contracts",
		Keywords: []string{"contract", "agreement", "breach", "sign", "terms", "clause", "deposit"},
		Guidance: "A contract needs an offer, acceptance, and consideration to be enforceable. " +
			"Review the written terms before signing, and keep copies of every version you sign. " +
			"If the other party breaks the agreement, document the breach in writing before pursuing remedies.",
		Cases: []CaseSummary{
			{Title: "Hargrove v. Linden Supply", Year: 2019, Outcome: "Unsigned email chain held to form a binding contract"},
			{Title: "Petra Homes v. Calloway", Year: 2021, Outcome: "Deposit refunded after seller's material breach"},
		},
	},
	{
		Name:     "Employment",
		Keywords: []string{"employment", "employer", "fired", "terminated", "wages", "overtime", "workplace", "discrimination", "harassment"},
		Guidance: "Most employment is at-will, but termination cannot be based on a protected characteristic. " +
			"Keep records of hours worked and any incidents; wage and discrimination claims usually have strict filing deadlines.",
		Cases: []CaseSummary{
			{Title: "Ruiz v. Brightline Logistics", Year: 2020, Outcome: "Back pay awarded for unpaid overtime"},
			{Title: "Onyango v. Carver Health", Year: 2022, Outcome: "Retaliatory termination claim settled"},
		},
	},
	{
		Name:     "Landlord-Tenant",
		Keywords: []string{"landlord", "tenant", "rent", "lease", "evict", "eviction", "security", "repairs", "apartment"},
		Guidance: "Your lease and local housing code govern most disputes. Request repairs in writing, " +
			"photograph conditions at move-in and move-out, and never withhold rent without checking the rules in your jurisdiction first.",
		Cases: []CaseSummary{
			{Title: "Demarco v. 44 Elm LLC", Year: 2018, Outcome: "Security deposit returned with penalty for late accounting"},
		},
	},
	{
		Name:     "Business Formation",
		Keywords: []string{"llc", "incorporate", "corporation", "partnership", "startup", "business", "formation", "ein"},
		Guidance: "Choosing an entity type affects liability and taxes. An LLC separates personal assets from " +
			"business debts; a sole proprietorship does not. Register with your state, obtain an EIN, and keep business finances separate.",
		Cases: []CaseSummary{
			{Title: "In re Fernwood Catering", Year: 2021, Outcome: "Commingled funds pierced the liability shield"},
		},
	},
	{
		Name:     "Intellectual Property",
		Keywords: []string{"trademark", "copyright", "patent", "brand", "logo", "infringement", "ip"},
		Guidance: "Copyright attaches automatically to original works, but registration strengthens enforcement. " +
			"Trademarks protect brand identifiers and should be searched before you commit to a name.",
		Cases: []CaseSummary{
			{Title: "Solstice Labs v. SolsticeWear", Year: 2023, Outcome: "Preliminary injunction on confusingly similar mark"},
		},
	},
	{
		Name:     "Family Law",
		Keywords: []string{"divorce", "custody", "child", "support", "alimony", "marriage", "prenup"},
		Guidance: "Custody decisions center on the child's best interests, not the parents' preferences. " +
			"Support calculations follow state guidelines; keep records of payments and agreements.",
		Cases: []CaseSummary{
			{Title: "Whitfield v. Whitfield", Year: 2020, Outcome: "Joint custody with mediated parenting plan"},
		},
	},
}

const fallbackGuidance = "I could not match your question to a topic I know. " +
	"Try rephrasing with more specific terms (for example \"lease\", \"contract\", or \"trademark\"), " +
	"or browse the FAQ. This kiosk provides general information, not legal advice."

const disclaimer = "This is general legal information, not legal advice. Consult a licensed attorney for your situation."
