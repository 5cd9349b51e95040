package universe

const (
	ActivityManufacturing uint32 = 1

	CategoryCelestial  uint32 = 2
	CategoryShip       uint32 = 6
	CategoryDeployable uint32 = 22

	GroupBiomass uint32 = 14
)

type TypeModel struct {
	id            uint32
	name          string
	groupId       uint32
	marketGroupId uint32
	published     bool
}

func NewType(id uint32, name string, groupId uint32, marketGroupId uint32, published bool) TypeModel {
	return TypeModel{id: id, name: name, groupId: groupId, marketGroupId: marketGroupId, published: published}
}

func (m TypeModel) Id() uint32 {
	return m.id
}

func (m TypeModel) Name() string {
	return m.name
}

func (m TypeModel) GroupId() uint32 {
	return m.groupId
}

func (m TypeModel) MarketGroupId() uint32 {
	return m.marketGroupId
}

func (m TypeModel) Published() bool {
	return m.published
}

type GroupModel struct {
	id         uint32
	name       string
	categoryId uint32
}

func NewGroup(id uint32, name string, categoryId uint32) GroupModel {
	return GroupModel{id: id, name: name, categoryId: categoryId}
}

func (m GroupModel) Id() uint32 {
	return m.id
}

func (m GroupModel) Name() string {
	return m.name
}

func (m GroupModel) CategoryId() uint32 {
	return m.categoryId
}

type CategoryModel struct {
	id   uint32
	name string
}

func NewCategory(id uint32, name string) CategoryModel {
	return CategoryModel{id: id, name: name}
}

func (m CategoryModel) Id() uint32 {
	return m.id
}

func (m CategoryModel) Name() string {
	return m.name
}

type MarketGroupModel struct {
	id            uint32
	parentGroupId uint32
	name          string
	description   string
}

func NewMarketGroup(id uint32, parentGroupId uint32, name string, description string) MarketGroupModel {
	return MarketGroupModel{id: id, parentGroupId: parentGroupId, name: name, description: description}
}

func (m MarketGroupModel) Id() uint32 {
	return m.id
}

func (m MarketGroupModel) ParentGroupId() uint32 {
	return m.parentGroupId
}

func (m MarketGroupModel) Name() string {
	return m.name
}

func (m MarketGroupModel) Description() string {
	return m.description
}

type SystemModel struct {
	id              uint32
	name            string
	constellationId uint32
	security        float64
}

func NewSystem(id uint32, name string, constellationId uint32, security float64) SystemModel {
	return SystemModel{id: id, name: name, constellationId: constellationId, security: security}
}

func (m SystemModel) Id() uint32 {
	return m.id
}

func (m SystemModel) Name() string {
	return m.name
}

func (m SystemModel) ConstellationId() uint32 {
	return m.constellationId
}

func (m SystemModel) Security() float64 {
	return m.security
}

type ActivityProductModel struct {
	typeId        uint32
	activityId    uint32
	productTypeId uint32
	quantity      uint32
}

func NewActivityProduct(typeId uint32, activityId uint32, productTypeId uint32, quantity uint32) ActivityProductModel {
	return ActivityProductModel{typeId: typeId, activityId: activityId, productTypeId: productTypeId, quantity: quantity}
}

func (m ActivityProductModel) TypeId() uint32 {
	return m.typeId
}

func (m ActivityProductModel) ActivityId() uint32 {
	return m.activityId
}

func (m ActivityProductModel) ProductTypeId() uint32 {
	return m.productTypeId
}

func (m ActivityProductModel) Quantity() uint32 {
	return m.quantity
}

type BasePriceModel struct {
	typeId    uint32
	basePrice float64
}

func NewBasePrice(typeId uint32, basePrice float64) BasePriceModel {
	return BasePriceModel{typeId: typeId, basePrice: basePrice}
}

func (m BasePriceModel) TypeId() uint32 {
	return m.typeId
}

func (m BasePriceModel) BasePrice() float64 {
	return m.basePrice
}

// MetaTypeModel links a variant type to its parent and meta group. Meta groups 1 and 54 mark canonical items.
type MetaTypeModel struct {
	typeId       uint32
	parentTypeId uint32
	metaGroupId  uint32
}

func NewMetaType(typeId uint32, parentTypeId uint32, metaGroupId uint32) MetaTypeModel {
	return MetaTypeModel{typeId: typeId, parentTypeId: parentTypeId, metaGroupId: metaGroupId}
}

func (m MetaTypeModel) TypeId() uint32 {
	return m.typeId
}

func (m MetaTypeModel) ParentTypeId() uint32 {
	return m.parentTypeId
}

func (m MetaTypeModel) MetaGroupId() uint32 {
	return m.metaGroupId
}
