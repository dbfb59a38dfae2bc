package domain

// SlotState is the tracking state of one curriculum slot.
type SlotState string

const (
	// SlotUnresolved applies only to elective slots with no selection yet.
	SlotUnresolved SlotState = "unresolved"
	SlotNotStarted SlotState = "not_started"
	SlotInProgress SlotState = "in_progress"
	SlotCompleted  SlotState = "completed"
)

// Activation is a classified tree gesture. A single activation toggles
// in-progress membership, a double activation toggles completion.
type Activation string

const (
	ActivationSingle Activation = "single"
	ActivationDouble Activation = "double"
)
