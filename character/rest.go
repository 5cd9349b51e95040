package character

import "strconv"

type RestModel struct {
	Id            uint32 `json:"-"`
	Name          string `json:"name"`
	CorporationId uint32 `json:"corporationId"`
	UserId        uint32 `json:"userId"`
}

func (r RestModel) GetName() string {
	return "characters"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(id string) error {
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
		Name:          m.name,
		CorporationId: m.corporationId,
		UserId:        m.userId,
	}
}

func TransformAll(models []Model) []RestModel {
	rms := make([]RestModel, 0, len(models))
	for _, m := range models {
		rms = append(rms, Transform(m))
	}
	return rms
}
