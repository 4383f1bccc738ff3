package domain

// SlotReason explains why a time slot is unavailable.
// Slots are derived on every availability query and never persisted.
type SlotReason string

const (
	// SlotReasonPast marks a slot that already started today.
	// Takes priority over SlotReasonFull when both apply.
	SlotReasonPast SlotReason = "past"

	// SlotReasonFull marks a slot with no fitting free table
	SlotReasonFull SlotReason = "full"
)
