package blueprint

import (
	"aa-wizard-industry/database"
	"aa-wizard-industry/owner"
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getForScope(scope owner.Scope) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Where("scope_kind = ? AND scope_id = ?", string(scope.Kind), scope.Id).Order("type_id, item_id").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

// getOriginalTypeIds returns the distinct type ids of the originals held by any of the scopes.
func getOriginalTypeIds(db *gorm.DB, scopes []owner.Scope) ([]uint32, error) {
	var results []uint32
	if len(scopes) == 0 {
		return results, nil
	}
	q := db.Model(&entity{}).Distinct("type_id").Where("runs = ?", OriginalRuns)
	cond := db.Where("1 = 0")
	for _, s := range scopes {
		cond = cond.Or("scope_kind = ? AND scope_id = ?", string(s.Kind), s.Id)
	}
	err := q.Where(cond).Pluck("type_id", &results).Error
	return results, err
}

func makeBlueprint(e entity) (Model, error) {
	return Model{
		id:                 e.ID,
		scope:              owner.Scope{Kind: owner.Kind(e.ScopeKind), Id: e.ScopeId},
		itemId:             e.ItemId,
		typeId:             e.TypeId,
		locationId:         e.LocationId,
		locationFlag:       e.LocationFlag,
		quantity:           e.Quantity,
		runs:               e.Runs,
		materialEfficiency: e.MaterialEfficiency,
		timeEfficiency:     e.TimeEfficiency,
	}, nil
}
