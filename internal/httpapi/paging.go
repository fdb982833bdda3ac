package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
)

// parsePage reads limit and offset. A missing or zero limit means the default,
// a limit above the maximum is capped.
func parsePage(c *gin.Context) (limit, offset int, err error) {
	limit, err = intQuery(c, "limit", domain.DefaultPageLimit)
	if err != nil {
		return 0, 0, err
	}

	offset, err = intQuery(c, "offset", 0)
	if err != nil {
		return 0, 0, err
	}

	if limit < 0 {
		return 0, 0, errors.New("limit must not be negative")
	}

	if offset < 0 {
		return 0, 0, errors.New("offset must not be negative")
	}

	if offset > domain.MaxPageOffset {
		return 0, 0, fmt.Errorf("offset cannot exceed %d", domain.MaxPageOffset)
	}

	if limit == 0 {
		limit = domain.DefaultPageLimit
	}

	return min(limit, domain.MaxPageLimit), offset, nil
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}

	return v, nil
}

// statusQuery accepts repeated and comma-separated status parameters.
func statusQuery(c *gin.Context) []string {
	var statuses []string
	for _, raw := range c.QueryArray("status") {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	return statuses
}
