package http

import (
	"net/http"
	"strconv"

	"github.com/reachronakofficial756/excelSort/pkg/config"
	apperrors "github.com/reachronakofficial756/excelSort/pkg/errors"
)

func ExtractLimitOffset(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	offset := 0
	if s := query.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid offset parameter: " + s)
		}
		offset = v
	}

	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	return limit, offset, nil
}

// ExtractPage parses a 1-based page path segment. Non-numeric, zero, and
// negative values map to a not-found error, matching route-converter
// behavior; upper-bound checks belong to the service, which knows the
// index size.
func ExtractPage(raw string) (int, error) {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, apperrors.NotFound("page " + raw)
	}
	return page, nil
}
