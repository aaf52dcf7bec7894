package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-storefront/models"
)

const (
	publishableKeyHeader = "x-publishable-api-key"

	paramSalesChannelID = "sales_channel_id"
)

// queryList collects every value of param, accepting repeated parameters,
// the bracket form (param[]) and comma-separated lists. Blank entries are
// dropped.
func queryList(values url.Values, param string) []string {
	var out []string
	for _, key := range []string{param, param + "[]"} {
		for _, raw := range values[key] {
			for _, part := range strings.Split(raw, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
	}
	return out
}

// parseListFilter reads the product filters of GET /store/products.
func parseListFilter(values url.Values, salesChannels bool) (models.ListProductsFilter, error) {
	filter := models.ListProductsFilter{
		IDs:           queryList(values, "id"),
		Q:             strings.TrimSpace(values.Get("q")),
		Title:         strings.TrimSpace(values.Get("title")),
		Handle:        strings.TrimSpace(values.Get("handle")),
		CollectionIDs: queryList(values, "collection_id"),
		TypeIDs:       queryList(values, "type_id"),
		Tags:          queryList(values, "tags"),
	}

	salesChannelIDs := queryList(values, paramSalesChannelID)
	if len(salesChannelIDs) > 0 && !salesChannels {
		return models.ListProductsFilter{}, fmt.Errorf("%w: %s is not supported", errInvalidQueryParameter, paramSalesChannelID)
	}
	filter.SalesChannelIDs = salesChannelIDs

	if raw := values.Get("is_giftcard"); raw != "" {
		isGiftcard, err := strconv.ParseBool(raw)
		if err != nil {
			return models.ListProductsFilter{}, fmt.Errorf("%w: is_giftcard must be a boolean, got %q", errInvalidQueryParameter, raw)
		}
		filter.IsGiftcard = &isGiftcard
	}

	return filter, nil
}
