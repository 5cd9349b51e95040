package blueprint

import (
	"aa-wizard-industry/esi"
	"aa-wizard-industry/owner"
	"gorm.io/gorm"
)

const insertBatchSize = 500

func replace(tx *gorm.DB, scope owner.Scope, rms []esi.BlueprintRestModel) error {
	err := tx.Where("scope_kind = ? AND scope_id = ?", string(scope.Kind), scope.Id).Delete(&entity{}).Error
	if err != nil {
		return err
	}
	if len(rms) == 0 {
		return nil
	}
	es := make([]entity, 0, len(rms))
	for _, rm := range rms {
		es = append(es, entity{
			ScopeKind:          string(scope.Kind),
			ScopeId:            scope.Id,
			ItemId:             rm.ItemId,
			TypeId:             rm.TypeId,
			LocationId:         rm.LocationId,
			LocationFlag:       rm.LocationFlag,
			Quantity:           rm.Quantity,
			Runs:               rm.Runs,
			MaterialEfficiency: rm.MaterialEfficiency,
			TimeEfficiency:     rm.TimeEfficiency,
		})
	}
	return tx.CreateInBatches(es, insertBatchSize).Error
}
