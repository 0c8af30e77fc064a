package normalizer

// Short tech terms that must survive stopword/length filtering.
var preserveTerms = map[string]struct{}{
	"ai": {}, "ml": {}, "ar": {}, "vr": {}, "ui": {}, "ux": {},
	"api": {}, "aws": {}, "gcp": {}, "sql": {}, "html": {}, "css": {},
	"ios": {}, "android": {}, "react": {}, "node": {}, "vue": {}, "php": {},
	"java": {}, "python": {}, "r": {}, "scala": {}, "go": {}, "ruby": {},
	"swift": {}, "kotlin": {}, "bi": {}, "etl": {}, "devops": {},
	"ci": {}, "cd": {}, "qa": {}, "nlp": {}, "cnn": {}, "rnn": {},
	"gan": {}, "bert": {}, "gpt": {}, "llm": {}, "iot": {}, "erp": {}, "crm": {},
}

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"then": {}, "else": {}, "for": {}, "to": {}, "of": {}, "in": {}, "on": {},
	"at": {}, "by": {}, "with": {}, "as": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "been": {}, "being": {}, "it": {}, "its": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "from": {}, "up": {},
	"down": {}, "over": {}, "under": {}, "again": {}, "further": {},
	"than": {}, "so": {}, "such": {}, "into": {}, "about": {}, "between": {},
	"through": {}, "during": {}, "before": {}, "after": {}, "above": {},
	"below": {}, "out": {}, "off": {}, "own": {}, "same": {}, "too": {},
	"very": {}, "can": {}, "will": {}, "just": {}, "should": {}, "now": {},
	"you": {}, "your": {}, "they": {}, "their": {}, "we": {}, "our": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"would": {}, "could": {}, "not": {}, "no": {}, "how": {}, "what": {},
	"when": {}, "where": {}, "who": {}, "which": {}, "why": {}, "all": {},
	"any": {}, "both": {}, "each": {}, "few": {}, "more": {}, "most": {},
	"other": {}, "some": {},
}

const maxCompoundLen = 3

// Compounds seen frequently in the course catalog; detected offline by the
// preprocessing pipeline and frozen here.
var compounds = map[string]struct{}{
	"data science":            {},
	"machine learning":        {},
	"deep learning":           {},
	"natural language":        {},
	"artificial intelligence": {},
	"data analysis":           {},
	"data visualization":      {},
	"data engineering":        {},
	"data literacy":           {},
	"data ethics":             {},
	"data validation":         {},
	"data presentation":       {},
	"project management":      {},
	"product management":      {},
	"software development":    {},
	"software engineering":    {},
	"web development":         {},
	"mobile development":      {},
	"cloud computing":         {},
	"computer science":        {},
	"search engine":           {},
	"social media":            {},
	"email marketing":         {},
	"content marketing":       {},
	"digital marketing":       {},
	"user experience":         {},
	"user interface":          {},
	"supply chain":            {},
	"business intelligence":   {},
	"neural network":          {},
	"natural language processing": {},
	"tableau software":           {},
	"spreadsheet software":       {},
}
