package http

import (
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/query"
	"github.com/MKhiriev/go-storefront/models"
)

// relationKeys are the top-level JSON keys of product relations.
var relationKeys = func() map[string]struct{} {
	keys := make(map[string]struct{})
	for _, path := range models.StoreProductRelations() {
		top, _, _ := strings.Cut(path, ".")
		keys[top] = struct{}{}
	}
	return keys
}()

// projectProduct reduces p to the attributes selected by d, always keeping
// id, plus the top-level relations d loads. Relation objects are kept whole.
func projectProduct(p models.Product, d query.Descriptor) (models.ProjectedProduct, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	var all map[string]any
	if err = json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}

	projected := make(models.ProjectedProduct, len(all))
	for key, value := range all {
		if _, isRelation := relationKeys[key]; isRelation {
			if d.Includes(key) {
				projected[key] = value
			}
			continue
		}
		if key == "id" || d.HasField(key) {
			projected[key] = value
		}
	}

	return projected, nil
}

func projectProducts(products []models.Product, d query.Descriptor) ([]models.ProjectedProduct, error) {
	out := make([]models.ProjectedProduct, 0, len(products))
	for _, p := range products {
		projected, err := projectProduct(p, d)
		if err != nil {
			return nil, err
		}
		out = append(out, projected)
	}
	return out, nil
}
