package job

import (
	"aa-wizard-industry/esi"
	"aa-wizard-industry/owner"
	"gorm.io/gorm"
)

func ref(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}

func create(db *gorm.DB, scope owner.Scope, rm esi.JobRestModel, refs Refs) (Model, error) {
	e := &entity{
		ScopeKind:            string(scope.Kind),
		ScopeId:              scope.Id,
		JobId:                rm.JobId,
		ActivityId:           rm.ActivityId,
		BlueprintId:          rm.BlueprintId,
		BlueprintTypeId:      rm.BlueprintTypeId,
		ProductTypeId:        rm.ProductTypeId,
		InstallerId:          rm.InstallerId,
		Status:               rm.Status,
		Runs:                 rm.Runs,
		LicensedRuns:         rm.LicensedRuns,
		Probability:          rm.Probability,
		Cost:                 rm.Cost,
		Duration:             rm.Duration,
		StartDate:            rm.StartDate,
		EndDate:              rm.EndDate,
		PauseDate:            rm.PauseDate,
		CompletedDate:        rm.CompletedDate,
		CompletedCharacterId: rm.CompletedCharacterId,
		SuccessfulRuns:       rm.SuccessfulRuns,
		BlueprintLocationId:  rm.BlueprintLocationId,
		FacilityId:           rm.FacilityId,
		LocationId:           rm.Location(),
		OutputLocationId:     rm.OutputLocationId,
		BlueprintLocationRef: ref(refs.BlueprintLocation),
		FacilityRef:          ref(refs.Facility),
		LocationRef:          ref(refs.Location),
		OutputLocationRef:    ref(refs.OutputLocation),
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeJob(*e)
}

// update writes the fields of a job that change after it was installed.
func update(db *gorm.DB, id uint64, rm esi.JobRestModel, refs Refs) error {
	return db.Model(&entity{ID: id}).
		Select("status", "completed_date", "completed_character_id", "pause_date", "successful_runs",
			"blueprint_location_ref", "facility_ref", "location_ref", "output_location_ref").
		Updates(&entity{
			Status:               rm.Status,
			CompletedDate:        rm.CompletedDate,
			CompletedCharacterId: rm.CompletedCharacterId,
			PauseDate:            rm.PauseDate,
			SuccessfulRuns:       rm.SuccessfulRuns,
			BlueprintLocationRef: ref(refs.BlueprintLocation),
			FacilityRef:          ref(refs.Facility),
			LocationRef:          ref(refs.Location),
			OutputLocationRef:    ref(refs.OutputLocation),
		}).Error
}
