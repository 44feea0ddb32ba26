package technique

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTechnique is returned by Format for an unrecognized tag.
var ErrInvalidTechnique = errors.New("invalid technique")

// ErrEmptyInput is returned by Format when the input text is blank.
var ErrEmptyInput = errors.New("empty input")

// fewShotExamples is the fixed example block used by few-shot prompting.
var fewShotExamples = []struct {
	Input  string
	Output string
}{
	{"Translate to French: Hello", "Bonjour"},
	{"Translate to French: Goodbye", "Au revoir"},
}

// Format builds the final prompt pair for a technique. It is pure and
// performs no I/O: a bad tag fails here, before any provider is touched.
func Format(tag Technique, input string) (FormattedPrompt, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return FormattedPrompt{}, ErrEmptyInput
	}

	switch tag {
	case ZeroShot:
		return FormattedPrompt{
			System: "You are a helpful assistant.",
			User:   input,
		}, nil

	case FewShot:
		var b strings.Builder
		b.WriteString("Here are some examples:\n\n")
		for _, ex := range fewShotExamples {
			fmt.Fprintf(&b, "Input: %s\nOutput: %s\n\n", ex.Input, ex.Output)
		}
		b.WriteString("Now respond to:\n")
		b.WriteString(input)
		return FormattedPrompt{
			System: "You are a helpful translation assistant.",
			User:   b.String(),
		}, nil

	case ChainOfThought:
		return FormattedPrompt{
			System: "You are an expert problem solver who explains reasoning clearly.",
			User: fmt.Sprintf(`Let's solve this problem step by step:
%s

Break down your reasoning into clear, logical steps:
1. First, identify the key components of the problem.
2. Then, outline the approach to solve it.
3. Show the detailed calculation or reasoning.
4. Provide the final solution.`, input),
		}, nil

	case RolePlaying:
		role, task := splitDirective(input, "expert consultant")
		return FormattedPrompt{
			System: fmt.Sprintf("You are a %s.", role),
			User: fmt.Sprintf(`You are a %s.
Task: %s

Please respond as if you were truly in this role, using appropriate language,
expertise, and perspective of the assigned persona.`, role, task),
		}, nil

	case PersonaBased:
		persona, query := splitDirective(input, "experienced professional")
		return FormattedPrompt{
			System: fmt.Sprintf("You are a %s.", persona),
			User: fmt.Sprintf(`You are a %s.
Consider your unique background, knowledge, and communication style.

Respond to the following query:
%s

Ensure your response reflects the specific perspective of this persona.`, persona, query),
		}, nil

	case ReAct:
		return FormattedPrompt{
			System: "You are an AI assistant that uses the ReAct framework (Reasoning + Acting) to solve problems step by step.",
			User: fmt.Sprintf(`Task: %s

Use the ReAct framework to solve this task:
1. Thought: What do I need to think about?
2. Action: What action should I take?
3. Observation: What did I observe?
4. (Repeat as needed)
5. Answer: Final solution

Format your response with clear Thought, Action, and Observation steps.`, input),
		}, nil

	case SelfConsistency:
		return FormattedPrompt{
			System: "You are an expert problem solver. Think step by step and show your reasoning.",
			User: fmt.Sprintf(`Solve this problem and explain your reasoning:
%s

Show your step-by-step thinking process.`, input),
		}, nil

	case TreeOfThoughts:
		return FormattedPrompt{
			System: "You are an expert at exploring multiple solution paths and selecting the best approach.",
			User: fmt.Sprintf(`Problem: %s

Use Tree-of-Thoughts approach:
1. Generate 3 initial solution approaches
2. For each approach, evaluate its strengths and weaknesses
3. Select the most promising approach
4. Develop that approach with detailed steps
5. Provide the final solution

Format your response clearly showing:
- Initial Branches (3 approaches)
- Evaluation of each branch
- Selected branch with reasoning
- Detailed solution`, input),
		}, nil
	}

	return FormattedPrompt{}, fmt.Errorf("%w: %q", ErrInvalidTechnique, tag)
}

// splitDirective separates a "role/persona, then the actual task" composite
// input on the first blank line. Single-block inputs get the default
// directive with the whole input treated as the task.
func splitDirective(input, fallback string) (directive, body string) {
	parts := strings.SplitN(input, "\n\n", 2)
	if len(parts) == 2 && strings.TrimSpace(parts[0]) != "" {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return fallback, input
}
