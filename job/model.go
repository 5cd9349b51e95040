package job

import (
	"aa-wizard-industry/owner"
	"time"
)

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusDelivered = "delivered"
	StatusPaused    = "paused"
	StatusReady     = "ready"
	StatusReverted  = "reverted"
)

type Model struct {
	id                   uint64
	scope                owner.Scope
	jobId                uint32
	activityId           uint32
	blueprintId          int64
	blueprintTypeId      uint32
	productTypeId        uint32
	installerId          uint32
	status               string
	runs                 int32
	licensedRuns         int32
	probability          float64
	cost                 float64
	duration             int32
	startDate            time.Time
	endDate              time.Time
	pauseDate            *time.Time
	completedDate        *time.Time
	completedCharacterId uint32
	successfulRuns       int32
	blueprintLocationId  int64
	facilityId           int64
	locationId           int64
	outputLocationId     int64
	refs                 Refs
}

// Refs are the stored locations a job points at. Zero means not yet known.
type Refs struct {
	BlueprintLocation int64
	Facility          int64
	Location          int64
	OutputLocation    int64
}

// merge keeps every reference already set and fills the empty ones from o.
func (r Refs) merge(o Refs) Refs {
	fill := func(a, b int64) int64 {
		if a != 0 {
			return a
		}
		return b
	}
	return Refs{
		BlueprintLocation: fill(r.BlueprintLocation, o.BlueprintLocation),
		Facility:          fill(r.Facility, o.Facility),
		Location:          fill(r.Location, o.Location),
		OutputLocation:    fill(r.OutputLocation, o.OutputLocation),
	}
}

func (m Model) Id() uint64 {
	return m.id
}

func (m Model) Scope() owner.Scope {
	return m.scope
}

func (m Model) JobId() uint32 {
	return m.jobId
}

func (m Model) ActivityId() uint32 {
	return m.activityId
}

func (m Model) BlueprintId() int64 {
	return m.blueprintId
}

func (m Model) BlueprintTypeId() uint32 {
	return m.blueprintTypeId
}

func (m Model) ProductTypeId() uint32 {
	return m.productTypeId
}

func (m Model) InstallerId() uint32 {
	return m.installerId
}

func (m Model) Status() string {
	return m.status
}

func (m Model) Runs() int32 {
	return m.runs
}

func (m Model) LicensedRuns() int32 {
	return m.licensedRuns
}

func (m Model) Probability() float64 {
	return m.probability
}

func (m Model) Cost() float64 {
	return m.cost
}

func (m Model) Duration() int32 {
	return m.duration
}

func (m Model) StartDate() time.Time {
	return m.startDate
}

func (m Model) EndDate() time.Time {
	return m.endDate
}

func (m Model) PauseDate() *time.Time {
	return m.pauseDate
}

func (m Model) CompletedDate() *time.Time {
	return m.completedDate
}

func (m Model) CompletedCharacterId() uint32 {
	return m.completedCharacterId
}

func (m Model) SuccessfulRuns() int32 {
	return m.successfulRuns
}

func (m Model) BlueprintLocationId() int64 {
	return m.blueprintLocationId
}

func (m Model) FacilityId() int64 {
	return m.facilityId
}

func (m Model) LocationId() int64 {
	return m.locationId
}

func (m Model) OutputLocationId() int64 {
	return m.outputLocationId
}

func (m Model) Refs() Refs {
	return m.refs
}
