package asset

import (
	"aa-wizard-industry/owner"
	"gorm.io/gorm"
)

const insertBatchSize = 500

func toEntity(m Model) entity {
	e := entity{
		ScopeKind:     string(m.scope.Kind),
		ScopeId:       m.scope.Id,
		ItemId:        m.itemId,
		TypeId:        m.typeId,
		Quantity:      m.quantity,
		LocationId:    m.locationId,
		LocationFlag:  m.locationFlag,
		Singleton:     m.singleton,
		BlueprintCopy: m.blueprintCopy,
		Name:          m.name,
	}
	if m.locationRef != 0 {
		r := m.locationRef
		e.LocationRef = &r
	}
	if m.systemRef != 0 {
		s := m.systemRef
		e.SystemRef = &s
	}
	return e
}

// replace swaps the stored assets of the scope for ms. Callers run it inside a transaction.
func replace(tx *gorm.DB, scope owner.Scope, ms []Model) error {
	err := tx.Where("scope_kind = ? AND scope_id = ?", string(scope.Kind), scope.Id).Delete(&entity{}).Error
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		return nil
	}
	es := make([]entity, 0, len(ms))
	for _, m := range ms {
		es = append(es, toEntity(m))
	}
	return tx.CreateInBatches(es, insertBatchSize).Error
}

func updateName(db *gorm.DB, scope owner.Scope, itemId int64, name string) error {
	return db.Model(&entity{}).
		Where("scope_kind = ? AND scope_id = ? AND item_id = ?", string(scope.Kind), scope.Id, itemId).
		Update("name", name).Error
}
