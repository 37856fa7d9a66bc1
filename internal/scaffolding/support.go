// Package scaffolding provides structured support for struggling
// learners: hint templates, learning strategies, and question
// simplification keyed by the detected struggle area.
package scaffolding

// Struggle areas. Each maps to one support bundle.
const (
	AreaDefinition   = "definition"
	AreaProcess      = "process"
	AreaRelationship = "relationship"
	AreaApplication  = "application"
)

// Support is the bundle of hints and strategies for one struggle area.
// Hint and prompt templates carry {placeholder} slots the conversation
// layer fills in.
type Support struct {
	StruggleArea   string   `json:"struggle_area"`
	HintTemplates  []string `json:"hint_templates"`
	Strategies     []string `json:"strategies"`
	Simplification string   `json:"simplification"`
	ExamplePrompts []string `json:"example_prompts"`
}

// supports is the static per-area configuration. Never mutated.
var supports = map[string]Support{
	AreaDefinition: {
		StruggleArea: AreaDefinition,
		HintTemplates: []string{
			"Let's start with the basic definition of {concept}.",
			"The key word here is {keyword}.",
			"Think about what {concept} means in simple terms.",
		},
		Strategies: []string{
			"Focus on the core meaning first",
			"Look for keywords that define the concept",
			"Connect to something you already know",
		},
		Simplification: "Ask for recognition instead of recall",
		ExamplePrompts: []string{
			"Which of these best describes {concept}?",
			"True or false: {simple_statement}",
		},
	},
	AreaProcess: {
		StruggleArea: AreaProcess,
		HintTemplates: []string{
			"Let's break this down step by step.",
			"The first step is to {step1}.",
			"What needs to happen before {step}?",
		},
		Strategies: []string{
			"Identify the sequence of steps",
			"Focus on one step at a time",
			"Think about the order things happen",
		},
		Simplification: "Ask about individual steps",
		ExamplePrompts: []string{
			"What is the first step in {process}?",
			"What comes after {step}?",
		},
	},
	AreaRelationship: {
		StruggleArea: AreaRelationship,
		HintTemplates: []string{
			"Think about how {concept1} and {concept2} are connected.",
			"What do these concepts have in common?",
			"How does {concept1} affect {concept2}?",
		},
		Strategies: []string{
			"Look for cause and effect",
			"Identify similarities and differences",
			"Map out how concepts connect",
		},
		Simplification: "Focus on single relationships",
		ExamplePrompts: []string{
			"How are {concept1} and {concept2} similar?",
			"Does {concept1} depend on {concept2}?",
		},
	},
	AreaApplication: {
		StruggleArea: AreaApplication,
		HintTemplates: []string{
			"Think about a simpler example first.",
			"What concept from the lesson applies here?",
			"Have you seen a similar situation before?",
		},
		Strategies: []string{
			"Start with a simpler version of the problem",
			"Identify which concept to apply",
			"Think about real-world examples",
		},
		Simplification: "Provide more context",
		ExamplePrompts: []string{
			"In this simple case, what would you do?",
			"Which approach would work for {scenario}?",
		},
	},
}

// SupportFor returns the support bundle for the given struggle area.
// Unknown areas fall back to the definition bundle, the most
// foundational form of support.
func SupportFor(area string) Support {
	if s, ok := supports[area]; ok {
		return s
	}
	return supports[AreaDefinition]
}
