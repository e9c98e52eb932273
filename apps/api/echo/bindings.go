package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/chayanin/tcasport/core/student"
)

// Ordering is the sort order requested via the "ordering" query param.
// A "-" prefix requests descending order (eg. "-gpa"). Unknown keys are ignored.
type Ordering struct {
	Key       student.SortKey
	Ascending bool
}

func getOrdering(ctx echo.Context) Ordering {
	ord := Ordering{Ascending: true}

	raw := strings.TrimSpace(ctx.QueryParam("ordering"))
	if raw == "" {
		return ord
	}
	if strings.HasPrefix(raw, "-") {
		ord.Ascending = false
		raw = raw[1:]
	}

	switch key := student.SortKey(raw); key {
	case student.SortByName, student.SortByGPA:
		ord.Key = key
	}
	return ord
}
