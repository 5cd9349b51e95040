package catalog

import "strconv"

type RestModel struct {
	UserId uint32           `json:"-"`
	Total  int              `json:"total"`
	Owned  int              `json:"owned"`
	Cost   float64          `json:"cost"`
	Groups []GroupRestModel `json:"groups"`
}

func (r RestModel) GetName() string {
	return "catalogs"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.UserId))
}

type GroupRestModel struct {
	Id          uint32               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Total       int                  `json:"total"`
	Owned       int                  `json:"owned"`
	Cost        float64              `json:"cost"`
	Blueprints  []BlueprintRestModel `json:"blueprints"`
	Groups      []GroupRestModel     `json:"groups"`
}

type BlueprintRestModel struct {
	TypeId   uint32  `json:"typeId"`
	Name     string  `json:"name"`
	BaseCost float64 `json:"baseCost"`
	Owned    bool    `json:"owned"`
}

func Transform(userId uint32, m Model) RestModel {
	return RestModel{
		UserId: userId,
		Total:  m.AllTotal(),
		Owned:  m.AllOwned(),
		Cost:   m.AllCosts(),
		Groups: transformGroups(m.Groups()),
	}
}

func transformGroups(gs []*Group) []GroupRestModel {
	result := make([]GroupRestModel, 0, len(gs))
	for _, g := range gs {
		bs := make([]BlueprintRestModel, 0, len(g.Blueprints()))
		for _, b := range g.Blueprints() {
			bs = append(bs, BlueprintRestModel{TypeId: b.TypeId(), Name: b.Name(), BaseCost: b.BaseCost(), Owned: b.Owned()})
		}
		result = append(result, GroupRestModel{
			Id:          g.Id(),
			Name:        g.Name(),
			Description: g.Description(),
			Total:       g.Total(),
			Owned:       g.Owned(),
			Cost:        g.Cost(),
			Blueprints:  bs,
			Groups:      transformGroups(g.Children()),
		})
	}
	return result
}
