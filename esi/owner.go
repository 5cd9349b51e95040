package esi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const MaxNamesPerRequest = 100

var ErrTooManyIds = errors.New("too many ids for a single names request")

func (c *Client) CharacterRoles(ctx context.Context, token string, characterId uint32) (RolesRestModel, error) {
	return get[RolesRestModel](ctx, c, "character_roles", fmt.Sprintf("/characters/%d/roles/", characterId), token)
}

func (c *Client) CharacterAssets(ctx context.Context, token string, characterId uint32) ([]AssetRestModel, error) {
	return get[[]AssetRestModel](ctx, c, "character_assets", fmt.Sprintf("/characters/%d/assets/", characterId), token)
}

// AssetSnapshot is a conditional asset fetch. When NotModified is set Assets is empty and ETag repeats the tag that
// was sent.
type AssetSnapshot struct {
	Assets      []AssetRestModel
	ETag        string
	NotModified bool
}

func (c *Client) CorporationAssets(ctx context.Context, token string, corporationId uint32, etag string) (AssetSnapshot, error) {
	res, meta, err := do[[]AssetRestModel](ctx, c, request{
		operation: "corporation_assets",
		method:    http.MethodGet,
		path:      fmt.Sprintf("/corporations/%d/assets/", corporationId),
		token:     token,
		etag:      etag,
	})
	if err != nil {
		return AssetSnapshot{}, err
	}
	if meta.notModified {
		return AssetSnapshot{ETag: etag, NotModified: true}, nil
	}
	return AssetSnapshot{Assets: res, ETag: meta.etag}, nil
}

func (c *Client) CharacterAssetNames(ctx context.Context, token string, characterId uint32, itemIds []int64) ([]NameRestModel, error) {
	return names(ctx, c, "character_asset_names", fmt.Sprintf("/characters/%d/assets/names/", characterId), token, itemIds)
}

func (c *Client) CorporationAssetNames(ctx context.Context, token string, corporationId uint32, itemIds []int64) ([]NameRestModel, error) {
	return names(ctx, c, "corporation_asset_names", fmt.Sprintf("/corporations/%d/assets/names/", corporationId), token, itemIds)
}

func names(ctx context.Context, c *Client, operation string, path string, token string, itemIds []int64) ([]NameRestModel, error) {
	if len(itemIds) > MaxNamesPerRequest {
		return nil, ErrTooManyIds
	}
	res, _, err := do[[]NameRestModel](ctx, c, request{operation: operation, method: http.MethodPost, path: path, token: token, body: itemIds})
	return res, err
}

func (c *Client) CharacterJobs(ctx context.Context, token string, characterId uint32) ([]JobRestModel, error) {
	return get[[]JobRestModel](ctx, c, "character_jobs", fmt.Sprintf("/characters/%d/industry/jobs/?include_completed=true", characterId), token)
}

func (c *Client) CorporationJobs(ctx context.Context, token string, corporationId uint32) ([]JobRestModel, error) {
	return get[[]JobRestModel](ctx, c, "corporation_jobs", fmt.Sprintf("/corporations/%d/industry/jobs/?include_completed=true", corporationId), token)
}

func (c *Client) CharacterBlueprints(ctx context.Context, token string, characterId uint32) ([]BlueprintRestModel, error) {
	return get[[]BlueprintRestModel](ctx, c, "character_blueprints", fmt.Sprintf("/characters/%d/blueprints/", characterId), token)
}

func (c *Client) CorporationBlueprints(ctx context.Context, token string, corporationId uint32) ([]BlueprintRestModel, error) {
	return get[[]BlueprintRestModel](ctx, c, "corporation_blueprints", fmt.Sprintf("/corporations/%d/blueprints/", corporationId), token)
}
