package job

import (
	"aa-wizard-industry/database"
	"aa-wizard-industry/owner"
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getForScope(scope owner.Scope) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Where("scope_kind = ? AND scope_id = ?", string(scope.Kind), scope.Id).Order("job_id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func makeJob(e entity) (Model, error) {
	return Model{
		id:                   e.ID,
		scope:                owner.Scope{Kind: owner.Kind(e.ScopeKind), Id: e.ScopeId},
		jobId:                e.JobId,
		activityId:           e.ActivityId,
		blueprintId:          e.BlueprintId,
		blueprintTypeId:      e.BlueprintTypeId,
		productTypeId:        e.ProductTypeId,
		installerId:          e.InstallerId,
		status:               e.Status,
		runs:                 e.Runs,
		licensedRuns:         e.LicensedRuns,
		probability:          e.Probability,
		cost:                 e.Cost,
		duration:             e.Duration,
		startDate:            e.StartDate,
		endDate:              e.EndDate,
		pauseDate:            e.PauseDate,
		completedDate:        e.CompletedDate,
		completedCharacterId: e.CompletedCharacterId,
		successfulRuns:       e.SuccessfulRuns,
		blueprintLocationId:  e.BlueprintLocationId,
		facilityId:           e.FacilityId,
		locationId:           e.LocationId,
		outputLocationId:     e.OutputLocationId,
		refs: Refs{
			BlueprintLocation: deref(e.BlueprintLocationRef),
			Facility:          deref(e.FacilityRef),
			Location:          deref(e.LocationRef),
			OutputLocation:    deref(e.OutputLocationRef),
		},
	}, nil
}
