package blueprint

import "aa-wizard-industry/owner"

// OriginalRuns marks a blueprint original. Copies carry their remaining runs.
const OriginalRuns int32 = -1

type Model struct {
	id                 uint64
	scope              owner.Scope
	itemId             int64
	typeId             uint32
	locationId         int64
	locationFlag       string
	quantity           int32
	runs               int32
	materialEfficiency int32
	timeEfficiency     int32
}

func (m Model) Id() uint64 {
	return m.id
}

func (m Model) Scope() owner.Scope {
	return m.scope
}

func (m Model) ItemId() int64 {
	return m.itemId
}

func (m Model) TypeId() uint32 {
	return m.typeId
}

func (m Model) LocationId() int64 {
	return m.locationId
}

func (m Model) LocationFlag() string {
	return m.locationFlag
}

func (m Model) Quantity() int32 {
	return m.quantity
}

func (m Model) Runs() int32 {
	return m.runs
}

func (m Model) MaterialEfficiency() int32 {
	return m.materialEfficiency
}

func (m Model) TimeEfficiency() int32 {
	return m.timeEfficiency
}

func (m Model) Original() bool {
	return m.runs == OriginalRuns
}
