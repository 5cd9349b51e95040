package esi

import (
	"context"
	"fmt"
)

func (c *Client) Station(ctx context.Context, stationId int64) (StationRestModel, error) {
	return get[StationRestModel](ctx, c, "station", fmt.Sprintf("/universe/stations/%d/", stationId), "")
}

func (c *Client) Structure(ctx context.Context, token string, structureId int64) (StructureRestModel, error) {
	return get[StructureRestModel](ctx, c, "structure", fmt.Sprintf("/universe/structures/%d/", structureId), token)
}

func (c *Client) System(ctx context.Context, systemId uint32) (SystemRestModel, error) {
	return get[SystemRestModel](ctx, c, "system", fmt.Sprintf("/universe/systems/%d/", systemId), "")
}

func (c *Client) Type(ctx context.Context, typeId uint32) (TypeRestModel, error) {
	return get[TypeRestModel](ctx, c, "type", fmt.Sprintf("/universe/types/%d/", typeId), "")
}

func (c *Client) Group(ctx context.Context, groupId uint32) (GroupRestModel, error) {
	return get[GroupRestModel](ctx, c, "group", fmt.Sprintf("/universe/groups/%d/", groupId), "")
}
