package asset

import (
	"aa-wizard-industry/owner"
	"strconv"
)

type RestModel struct {
	Id            uint64     `json:"-"`
	OwnerKind     owner.Kind `json:"ownerKind"`
	OwnerScopeId  uint32     `json:"ownerScopeId"`
	ItemId        int64      `json:"itemId"`
	TypeId        uint32     `json:"typeId"`
	Quantity      int32      `json:"quantity"`
	LocationId    int64      `json:"locationId"`
	LocationFlag  string     `json:"locationFlag"`
	Singleton     bool       `json:"singleton"`
	BlueprintCopy bool       `json:"blueprintCopy"`
	Name          string     `json:"name,omitempty"`
	LocationRef   int64      `json:"locationRef,omitempty"`
	SystemRef     uint32     `json:"systemRef,omitempty"`
}

func (r RestModel) GetName() string {
	return "assets"
}

func (r RestModel) GetID() string {
	return strconv.FormatUint(r.Id, 10)
}

func Transform(m Model) RestModel {
	return RestModel{
		Id:            m.id,
		OwnerKind:     m.scope.Kind,
		OwnerScopeId:  m.scope.Id,
		ItemId:        m.itemId,
		TypeId:        m.typeId,
		Quantity:      m.quantity,
		LocationId:    m.locationId,
		LocationFlag:  m.locationFlag,
		Singleton:     m.singleton,
		BlueprintCopy: m.blueprintCopy,
		Name:          m.name,
		LocationRef:   m.locationRef,
		SystemRef:     m.systemRef,
	}
}

func TransformAll(models []Model) []RestModel {
	rms := make([]RestModel, 0, len(models))
	for _, m := range models {
		rms = append(rms, Transform(m))
	}
	return rms
}
