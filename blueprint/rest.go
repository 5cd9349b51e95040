package blueprint

import (
	"aa-wizard-industry/owner"
	"strconv"
)

type RestModel struct {
	Id                 uint64     `json:"-"`
	OwnerKind          owner.Kind `json:"ownerKind"`
	OwnerScopeId       uint32     `json:"ownerScopeId"`
	ItemId             int64      `json:"itemId"`
	TypeId             uint32     `json:"typeId"`
	LocationId         int64      `json:"locationId"`
	LocationFlag       string     `json:"locationFlag"`
	Quantity           int32      `json:"quantity"`
	Runs               int32      `json:"runs"`
	MaterialEfficiency int32      `json:"materialEfficiency"`
	TimeEfficiency     int32      `json:"timeEfficiency"`
	Original           bool       `json:"original"`
}

func (r RestModel) GetName() string {
	return "blueprints"
}

func (r RestModel) GetID() string {
	return strconv.FormatUint(r.Id, 10)
}

func Transform(m Model) RestModel {
	return RestModel{
		Id:                 m.id,
		OwnerKind:          m.scope.Kind,
		OwnerScopeId:       m.scope.Id,
		ItemId:             m.itemId,
		TypeId:             m.typeId,
		LocationId:         m.locationId,
		LocationFlag:       m.locationFlag,
		Quantity:           m.quantity,
		Runs:               m.runs,
		MaterialEfficiency: m.materialEfficiency,
		TimeEfficiency:     m.timeEfficiency,
		Original:           m.Original(),
	}
}

func TransformAll(models []Model) []RestModel {
	rms := make([]RestModel, 0, len(models))
	for _, m := range models {
		rms = append(rms, Transform(m))
	}
	return rms
}
