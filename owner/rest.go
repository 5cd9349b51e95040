package owner

import "strconv"

type RestModel struct {
	Id            uint32 `json:"-"`
	Kind          Kind   `json:"kind"`
	UserId        uint32 `json:"userId"`
	CharacterId   uint32 `json:"characterId"`
	CorporationId uint32 `json:"corporationId"`
}

func (r RestModel) GetName() string {
	return "owners"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(id string) error {
	if id == "" {
		return nil
	}
	v, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return err
	}
	r.Id = uint32(v)
	return nil
}

func Transform(m Model) RestModel {
	return RestModel{
		Id:            m.id,
		Kind:          m.kind,
		UserId:        m.userId,
		CharacterId:   m.characterId,
		CorporationId: m.corporationId,
	}
}

func TransformAll(models []Model) []RestModel {
	rms := make([]RestModel, 0, len(models))
	for _, m := range models {
		rms = append(rms, Transform(m))
	}
	return rms
}
