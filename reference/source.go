package reference

import (
	"context"
	"errors"
	"fmt"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/tidwall/gjson"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	EnvBaseUrl = "SDE_URL"

	defaultBaseUrl = "https://sde.eve-o.tech/latest"

	FileTypes            = "invTypes.json"
	FileMetaTypes        = "invMetaTypes.json"
	FileGroups           = "invGroups.json"
	FileCategories       = "invCategories.json"
	FileMarketGroups     = "invMarketGroups.json"
	FileSolarSystems     = "mapSolarSystems.json"
	FileActivityProducts = "industryActivityProducts.json"
)

var (
	ErrStatus   = errors.New("sde unexpected status")
	ErrNotArray = errors.New("sde file is not a json array")
)

// Source downloads flat SDE export files.
type Source struct {
	baseUrl string
	hc      *http.Client
}

func NewSource(baseUrl string) Source {
	return Source{baseUrl: strings.TrimSuffix(baseUrl, "/"), hc: &http.Client{Timeout: 5 * time.Minute}}
}

func SourceFromEnv() Source {
	if val, ok := os.LookupEnv(EnvBaseUrl); ok {
		return NewSource(val)
	}
	return NewSource(defaultBaseUrl)
}

// rows downloads the file and returns its top level array.
func (s Source) rows(ctx context.Context, file string) ([]gjson.Result, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sde.download")
	defer span.Finish()
	span.SetTag("file", file)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseUrl+"/"+file, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.hc.Do(req)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, err
	}
	defer resp.Body.Close()
	ext.HTTPStatusCode.Set(span, uint16(resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		ext.Error.Set(span, true)
		return nil, fmt.Errorf("%w: %s returned %d", ErrStatus, file, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: %s", ErrNotArray, file)
	}
	return doc.Array(), nil
}
