package wizard

// Step is an active wizard step.
type Step int

const (
	// AwaitingName waits for the project name.
	AwaitingName Step = iota
	// AwaitingTemplate waits for the template selection.
	AwaitingTemplate
	// Creating materializes the project.
	Creating
	// Succeeded is a terminal step reached after the project is created.
	Succeeded
	// Failed is a terminal step reached on any failure.
	Failed
)

var stepNames = map[Step]string{
	AwaitingName:     "awaiting name",
	AwaitingTemplate: "awaiting template",
	Creating:         "creating",
	Succeeded:        "succeeded",
	Failed:           "failed",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal returns true for the steps the wizard never leaves.
func (s Step) IsTerminal() bool {
	return s == Succeeded || s == Failed
}

// State is a wizard state.
type State struct {
	// Step is the active step.
	Step Step
	// ProjectName is the project name, empty until known.
	ProjectName string
	// TemplateID is the selected template id, empty until known.
	TemplateID string
	// ProgressMessage describes the current materialization phase.
	ProgressMessage string
	// ErrorMessage is set in the Failed step.
	ErrorMessage string
}
