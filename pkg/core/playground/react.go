package playground

import (
	"strings"

	"promptlab/pkg/core/utils"
)

// ReActStep is one Thought/Action/Observation element extracted from a
// ReAct-formatted completion.
type ReActStep struct {
	Kind string `json:"kind"` // thought, action, observation, answer
	Text string `json:"text"`
}

// ParseReActSteps extracts the step structure from a ReAct completion for
// the web page's step view. Models occasionally answer in JSON despite the
// textual template, so a lenient JSON parse is tried first; otherwise the
// labelled lines are scanned.
func ParseReActSteps(response string) []ReActStep {
	var fromJSON []ReActStep
	if _, err := utils.SmartParse(response, &fromJSON); err == nil && len(fromJSON) > 0 {
		return fromJSON
	}

	var steps []ReActStep
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimLeft(trimmed, "0123456789.) ")

		for _, label := range []string{"Thought", "Action", "Observation", "Answer"} {
			if rest, ok := strings.CutPrefix(trimmed, label+":"); ok {
				steps = append(steps, ReActStep{
					Kind: strings.ToLower(label),
					Text: strings.TrimSpace(rest),
				})
				break
			}
		}
	}
	return steps
}
