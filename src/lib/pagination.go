package lib

import "strconv"

const (
	DefaultFeedLimit = 10
	MaxFeedLimit     = 50
)

// ParsePagination resolves page and limit query values. Missing, non-numeric
// or non-positive values fall back to the defaults, and limit is capped at
// MaxFeedLimit.
func ParsePagination(pageStr, limitStr string) (page, limit int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	return page, limit
}
