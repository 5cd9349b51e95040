package job

import (
	"aa-wizard-industry/owner"
	"strconv"
	"time"
)

type RestModel struct {
	Id                   uint64     `json:"-"`
	OwnerKind            owner.Kind `json:"ownerKind"`
	OwnerScopeId         uint32     `json:"ownerScopeId"`
	JobId                uint32     `json:"jobId"`
	ActivityId           uint32     `json:"activityId"`
	BlueprintId          int64      `json:"blueprintId"`
	BlueprintTypeId      uint32     `json:"blueprintTypeId"`
	ProductTypeId        uint32     `json:"productTypeId"`
	InstallerId          uint32     `json:"installerId"`
	Status               string     `json:"status"`
	Runs                 int32      `json:"runs"`
	Cost                 float64    `json:"cost"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              time.Time  `json:"endDate"`
	PauseDate            *time.Time `json:"pauseDate,omitempty"`
	CompletedDate        *time.Time `json:"completedDate,omitempty"`
	CompletedCharacterId uint32     `json:"completedCharacterId,omitempty"`
	SuccessfulRuns       int32      `json:"successfulRuns"`
	FacilityId           int64      `json:"facilityId"`
	LocationRef          int64      `json:"locationRef,omitempty"`
	OutputLocationRef    int64      `json:"outputLocationRef,omitempty"`
}

func (r RestModel) GetName() string {
	return "jobs"
}

func (r RestModel) GetID() string {
	return strconv.FormatUint(r.Id, 10)
}

func Transform(m Model) RestModel {
	return RestModel{
		Id:                   m.id,
		OwnerKind:            m.scope.Kind,
		OwnerScopeId:         m.scope.Id,
		JobId:                m.jobId,
		ActivityId:           m.activityId,
		BlueprintId:          m.blueprintId,
		BlueprintTypeId:      m.blueprintTypeId,
		ProductTypeId:        m.productTypeId,
		InstallerId:          m.installerId,
		Status:               m.status,
		Runs:                 m.runs,
		Cost:                 m.cost,
		StartDate:            m.startDate,
		EndDate:              m.endDate,
		PauseDate:            m.pauseDate,
		CompletedDate:        m.completedDate,
		CompletedCharacterId: m.completedCharacterId,
		SuccessfulRuns:       m.successfulRuns,
		FacilityId:           m.facilityId,
		LocationRef:          m.refs.Location,
		OutputLocationRef:    m.refs.OutputLocation,
	}
}

func TransformAll(models []Model) []RestModel {
	rms := make([]RestModel, 0, len(models))
	for _, m := range models {
		rms = append(rms, Transform(m))
	}
	return rms
}
