package descriptor

import "github.com/jsamuelsen11/workitems/internal/domain/workitem"

// Condition decides whether a stage applies to the current state of a work
// item.
type Condition interface {
	Matches(item *workitem.WorkItem) bool
}

// PropertyValueCondition matches when the named property equals Value.
type PropertyValueCondition struct {
	Property string
	Value    string
}

// Matches implements Condition.
func (c PropertyValueCondition) Matches(item *workitem.WorkItem) bool {
	return item.Value(c.Property) == c.Value
}

// AllCondition matches when every nested condition matches. An empty
// AllCondition always matches.
type AllCondition struct {
	Conditions []Condition
}

// Matches implements Condition.
func (c AllCondition) Matches(item *workitem.WorkItem) bool {
	for _, cond := range c.Conditions {
		if !cond.Matches(item) {
			return false
		}
	}
	return true
}

// AnyCondition matches when at least one nested condition matches.
type AnyCondition struct {
	Conditions []Condition
}

// Matches implements Condition.
func (c AnyCondition) Matches(item *workitem.WorkItem) bool {
	for _, cond := range c.Conditions {
		if cond.Matches(item) {
			return true
		}
	}
	return false
}

// NotCondition inverts a condition.
type NotCondition struct {
	Condition Condition
}

// Matches implements Condition.
func (c NotCondition) Matches(item *workitem.WorkItem) bool {
	return !c.Condition.Matches(item)
}

// StageProperty overrides the descriptor of one property while a stage
// applies. Nil flags leave the base value unchanged.
type StageProperty struct {
	Property   string
	Visible    *bool
	Editable   *bool
	Validators []Validator
}

// Stage is a workflow stage. When its condition matches the current work
// item, its property overrides are layered on top of the base descriptors.
type Stage struct {
	Name      string
	Condition Condition
	Overrides []StageProperty
}

// Applies reports whether the stage is active for item. A stage without a
// condition always applies.
func (s Stage) Applies(item *workitem.WorkItem) bool {
	return s.Condition == nil || s.Condition.Matches(item)
}
