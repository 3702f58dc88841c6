package search

import (
	"net/url"
	"strconv"
	"strings"

	"rental-frontend/app/domain"
)

// FiltersFromQuery reads listing filters from URL query parameters
// (location, minPrice, maxPrice, bedrooms, propertyType, features, limit, offset).
// Features may be repeated or comma separated.
func FiltersFromQuery(q url.Values) (domain.SearchFilters, error) {
	var (
		filters domain.SearchFilters
		err     error
	)

	filters.Location = strings.TrimSpace(q.Get("location"))

	if filters.MinPrice, err = optionalInt64(q, "minPrice"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = optionalInt64(q, "maxPrice"); err != nil {
		return filters, err
	}
	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return filters, domain.NewValidationError("minPrice", "minPrice must not exceed maxPrice")
	}

	if filters.Bedrooms, err = optionalInt(q, "bedrooms"); err != nil {
		return filters, err
	}

	if raw := strings.ToLower(strings.TrimSpace(q.Get("propertyType"))); raw != "" {
		pt := domain.PropertyType(raw)
		if !pt.Valid() {
			return filters, domain.NewValidationError("propertyType", "unknown property type")
		}
		filters.PropertyType = pt
	}

	for _, value := range q["features"] {
		for _, feature := range strings.Split(value, ",") {
			if feature = strings.TrimSpace(feature); feature != "" {
				filters.Features = append(filters.Features, feature)
			}
		}
	}

	if limit, err := optionalInt(q, "limit"); err != nil {
		return filters, err
	} else if limit != nil {
		filters.Limit = *limit
	}
	if offset, err := optionalInt(q, "offset"); err != nil {
		return filters, err
	} else if offset != nil {
		filters.Offset = *offset
	}

	return filters, nil
}

func optionalInt64(q url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil, domain.NewValidationError(key, key+" must be a non-negative integer")
	}
	return &n, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	n, err := optionalInt64(q, key)
	if err != nil || n == nil {
		return nil, err
	}
	v := int(*n)
	return &v, nil
}
