package catalog

import (
	"aa-wizard-industry/blueprint"
	"aa-wizard-industry/character"
	"aa-wizard-industry/configuration"
	"aa-wizard-industry/owner"
	"aa-wizard-industry/universe"
	"errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"strings"
)

// Build walks the market groups below the roots and places every buildable blueprint, flagging those in owned.
func Build(l logrus.FieldLogger, db *gorm.DB, c configuration.Catalog) func(roots []universe.MarketGroupModel, owned map[uint32]bool) (Model, error) {
	return func(roots []universe.MarketGroupModel, owned map[uint32]bool) (Model, error) {
		gs, err := buildGroups(l, db, c, owned)(roots)
		if err != nil {
			return Model{}, err
		}
		return NewModel(gs), nil
	}
}

func buildGroups(l logrus.FieldLogger, db *gorm.DB, c configuration.Catalog, owned map[uint32]bool) func(mgs []universe.MarketGroupModel) ([]*Group, error) {
	return func(mgs []universe.MarketGroupModel) ([]*Group, error) {
		result := make([]*Group, 0, len(mgs))
		for _, mg := range mgs {
			ts, err := universe.GetPublishedTypesInMarketGroup(db)(mg.Id())
			if err != nil {
				return nil, err
			}
			bs := make([]Blueprint, 0, len(ts))
			for _, t := range ts {
				ok, err := buildable(db, c)(t)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				cost, err := baseCost(db)(t.Id())
				if err != nil {
					return nil, err
				}
				bs = append(bs, NewBlueprint(t.Id(), t.Name(), cost, owned[t.Id()]))
			}

			cmgs, err := universe.GetMarketGroupChildren(db)(mg.Id())
			if err != nil {
				return nil, err
			}
			children, err := buildGroups(l, db, c, owned)(cmgs)
			if err != nil {
				return nil, err
			}
			result = append(result, NewGroup(mg.Id(), mg.Name(), mg.Description(), bs, children))
		}
		return result, nil
	}
}

// buildable drops variant and excluded blueprints, those without a manufacturing product and those whose product
// is a non canonical meta variant.
func buildable(db *gorm.DB, c configuration.Catalog) func(t universe.TypeModel) (bool, error) {
	return func(t universe.TypeModel) (bool, error) {
		if c.VariantPrefix != "" && strings.HasPrefix(t.Name(), c.VariantPrefix) {
			return false, nil
		}
		if c.Excluded(t.Id()) {
			return false, nil
		}
		p, err := universe.GetProduct(db)(t.Id(), universe.ActivityManufacturing)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		mt, err := universe.GetMetaType(db)(p.ProductTypeId())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		return c.Canonical(mt.MetaGroupId()), nil
	}
}

func baseCost(db *gorm.DB) func(typeId uint32) (float64, error) {
	return func(typeId uint32) (float64, error) {
		bp, err := universe.GetBasePrice(db)(typeId)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		return bp.BasePrice(), nil
	}
}

// VisibleScopes are the owners whose blueprints a user sees: their own owners and the corporation owners of the
// corporations their characters belong to.
func VisibleScopes(l logrus.FieldLogger, db *gorm.DB) func(userId uint32) ([]owner.Scope, error) {
	return func(userId uint32) ([]owner.Scope, error) {
		seen := make(map[owner.Scope]bool)
		result := make([]owner.Scope, 0)
		add := func(os []owner.Model) {
			for _, o := range os {
				if !seen[o.Scope()] {
					seen[o.Scope()] = true
					result = append(result, o.Scope())
				}
			}
		}

		os, err := owner.GetForUser(l, db)(userId)
		if err != nil {
			return nil, err
		}
		add(os)

		cs, err := character.GetForUser(l, db)(userId)
		if err != nil {
			return nil, err
		}
		corporations := make(map[uint32]bool)
		for _, ch := range cs {
			if corporations[ch.CorporationId()] {
				continue
			}
			corporations[ch.CorporationId()] = true
			os, err = owner.GetForCorporation(l, db)(ch.CorporationId())
			if err != nil {
				return nil, err
			}
			add(os)
		}
		return result, nil
	}
}

// ForUser builds the catalog of the configured root market group with the originals visible to the user marked
// owned.
func ForUser(l logrus.FieldLogger, db *gorm.DB, c configuration.Catalog) func(userId uint32) (Model, error) {
	return func(userId uint32) (Model, error) {
		scopes, err := VisibleScopes(l, db)(userId)
		if err != nil {
			return Model{}, err
		}
		owned, err := blueprint.OwnedOriginals(l, db)(scopes...)
		if err != nil {
			return Model{}, err
		}
		roots, err := universe.GetMarketGroupChildren(db)(c.RootMarketGroupId)
		if err != nil {
			return Model{}, err
		}
		m, err := Build(l, db, c)(roots, owned)
		if err != nil {
			return Model{}, err
		}
		l.Debugf("Built catalog for user [%d]: [%d] of [%d] blueprints owned.", userId, m.AllOwned(), m.AllTotal())
		return m, nil
	}
}
