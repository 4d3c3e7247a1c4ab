// Package significance classifies content changes and news text into
// significant / insignificant / uncertain verdicts with sentiment,
// confidence, and evidence, driven by fixed keyword lexicons and an
// ordered rule table.
package significance

// Lexicon maps a category name to its list of phrases.
// All phrases are lowercase; matching is case-insensitive and
// word-boundary delimited.
type Lexicon map[string][]string

// PositiveKeywords signal favorable company developments.
var PositiveKeywords = Lexicon{
	"funding_investment": {
		"funding",
		"raised",
		"series a",
		"series b",
		"series c",
		"series d",
		"series e",
		"venture capital",
		"seed round",
		"valuation",
		"unicorn",
		"pre-seed",
		"funding round",
		"investment round",
		"capital raise",
		"angel round",
	},
	"product_launch": {
		"launched",
		"new product",
		"beta release",
		"general availability",
		"rollout",
		"product launch",
		"new feature",
		"release",
		"public beta",
		"early access",
	},
	"growth_success": {
		"revenue growth",
		"profitable",
		"milestone",
		"arr",
		"mrr",
		"doubled",
		"tripled",
		"record revenue",
		"growth rate",
		"user growth",
	},
	"partnerships": {
		"partnership",
		"strategic alliance",
		"joint venture",
		"signed deal",
		"collaboration",
		"partner",
		"teaming up",
	},
	"expansion": {
		"expansion",
		"new office",
		"international",
		"hiring",
		"scale up",
		"new market",
		"global expansion",
		"opened office",
		"expanding team",
	},
	"recognition": {
		"award",
		"winner",
		"top 10",
		"best of",
		"innovation award",
		"recognized",
		"honored",
		"named to",
		"included in",
	},
	"ipo_exit": {
		"ipo",
		"going public",
		"filed s-1",
		"direct listing",
		"nasdaq",
		"nyse",
		"stock exchange",
		"public offering",
		"spac",
	},
}

// NegativeKeywords signal distress, closure, or adverse events.
var NegativeKeywords = Lexicon{
	"closure": {
		"shut down",
		"closed down",
		"ceased operations",
		"discontinued",
		"winding down",
		"shutting down",
		"closing",
		"going out of business",
		"no longer operating",
	},
	"layoffs_downsizing": {
		"layoffs",
		"downsizing",
		"workforce reduction",
		"job cuts",
		"restructuring",
		"furlough",
		"laid off",
		"headcount reduction",
		"rif",
		"reduction in force",
	},
	"financial_distress": {
		"bankruptcy",
		"insolvent",
		"chapter 11",
		"cash crunch",
		"debt crisis",
		"defaulted",
		"financial difficulties",
		"creditors",
		"liquidation",
	},
	"legal_issues": {
		"lawsuit",
		"litigation",
		"investigation",
		"settlement",
		"fine",
		"penalty",
		"sued",
		"regulatory action",
		"compliance violation",
		"subpoena",
	},
	"security_breach": {
		"data breach",
		"hacked",
		"cyberattack",
		"ransomware",
		"vulnerability",
		"security incident",
		"compromised",
		"unauthorized access",
	},
	"acquisition": {
		"acquired by",
		"merged with",
		"sold to",
		"bought by",
		"takeover",
		"acquisition",
		"merger",
		"buyout",
	},
	"leadership_changes": {
		"ceo resigned",
		"founder left",
		"stepping down",
		"ousted",
		"leadership change",
		"executive departure",
		"cto left",
	},
	"product_failures": {
		"recall",
		"discontinued product",
		"defect",
		"safety issue",
		"product failure",
		"pulled from market",
	},
	"market_exit": {
		"exiting market",
		"pulling out",
		"retreat",
		"abandoned",
		"market withdrawal",
		"leaving market",
	},
}

// InsignificantPatterns match boilerplate churn that carries no business
// signal (styling, copyright footers, tracking snippets).
var InsignificantPatterns = Lexicon{
	"css_styling": {
		"font-family",
		"background-color",
		"margin:",
		"padding:",
		".css",
		"border-radius",
		"text-align",
		"font-size",
	},
	"copyright_year": {
		"(c)",
		"copyright",
		"all rights reserved",
	},
	"tracking_analytics": {
		"google-analytics",
		"gtag",
		"tracking",
		"pixel",
		"analytics",
		"hotjar",
		"mixpanel",
	},
}

// FalsePositivePhrases look like keywords but are not business signals.
var FalsePositivePhrases = []string{
	"talent acquisition",
	"customer acquisition",
	"data acquisition",
	"funding opportunities",
	"funding sources",
	"self-funded",
}

// NegationWords negate a keyword when they appear immediately before it.
var NegationWords = []string{
	"no",
	"not",
	"never",
	"without",
	"lacks",
	"none",
}

// negationSuffixPatterns negate a keyword when they follow it directly
// (e.g. "funding status: none", "funding date: n/a").
var negationSuffixPatterns = []string{
	"status: none",
	"date: n/a",
	"status:none",
	"date:n/a",
}
