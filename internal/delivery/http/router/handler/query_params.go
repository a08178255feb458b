package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// parsePaging reads page and limit; malformed values become zero and are
// clamped by the use case.
func parsePaging(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return page, limit
}

// parseDateRange reads from and to as calendar days in UTC; to covers its whole day.
func parseDateRange(c echo.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := strings.TrimSpace(c.QueryParam("from")); raw != "" {
		day, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return nil, nil, errors.New("from must be a date formatted as YYYY-MM-DD")
		}
		from = &day
	}

	if raw := strings.TrimSpace(c.QueryParam("to")); raw != "" {
		day, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return nil, nil, errors.New("to must be a date formatted as YYYY-MM-DD")
		}
		day = day.Add(24*time.Hour - time.Millisecond)
		to = &day
	}

	return from, to, nil
}

func allAsEmpty(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}

	return v
}
