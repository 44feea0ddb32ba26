// Package technique defines the prompting techniques supported by the
// playground and turns raw user input into the final prompt pair sent to a
// model provider. Templates are fixed at startup and never mutated.
package technique

// Technique identifies a prompting strategy.
type Technique string

const (
	ZeroShot        Technique = "zero-shot"
	FewShot         Technique = "few-shot"
	ChainOfThought  Technique = "chain-of-thought"
	RolePlaying     Technique = "role-playing"
	PersonaBased    Technique = "persona-based"
	ReAct           Technique = "react"
	SelfConsistency Technique = "self-consistency"
	TreeOfThoughts  Technique = "tree-of-thoughts"
)

// Spec describes a technique for listings (CLI -list, GET /api/techniques).
type Spec struct {
	Tag         Technique `json:"tag"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// FormattedPrompt is the output of Format: a system prompt plus the user
// prompt that embeds the caller's input verbatim.
type FormattedPrompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

var specs = []Spec{
	{ZeroShot, "Zero-Shot Prompting", "No examples provided, testing the model's base knowledge"},
	{FewShot, "Few-Shot Prompting", "A few worked examples guide the model before the real input"},
	{ChainOfThought, "Chain-of-Thought Prompting", "Asks the model to reason step by step"},
	{RolePlaying, "Role-Playing Prompting", "Assigns the model a specific role for the task"},
	{PersonaBased, "Persona-Based Prompting", "Answers from the perspective of a described persona"},
	{ReAct, "ReAct Prompting", "Interleaved Thought / Action / Observation reasoning"},
	{SelfConsistency, "Self-Consistency Prompting", "Multiple diverse reasoning paths with a consensus pass"},
	{TreeOfThoughts, "Tree-of-Thoughts Prompting", "Branches several solution approaches and develops the best"},
}

// All returns the supported techniques in display order.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Lookup returns the spec for a tag.
func Lookup(tag Technique) (Spec, bool) {
	for _, s := range specs {
		if s.Tag == tag {
			return s, true
		}
	}
	return Spec{}, false
}

// IsValid reports whether tag names a supported technique.
func IsValid(tag Technique) bool {
	_, ok := Lookup(tag)
	return ok
}
