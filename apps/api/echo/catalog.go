package echoapi

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/chayanin/tcasport/core/student"
)

func registerCatalogAPI(g *echo.Group) {
	cg := g.Group("/catalog")

	cg.GET("/faculties", listFaculties)
	cg.GET("/faculties/:name/departments", listDepartments)
	cg.GET("/universities", listUniversities)
	cg.GET("/genders", listGenders)
}

func listFaculties(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, student.Faculties)
}

func listDepartments(ctx echo.Context) error {
	name, err := url.PathUnescape(ctx.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid faculty name")
	}
	depts, ok := student.Departments(name)
	if !ok {
		return errFacultyNotFound
	}
	return ctx.JSON(http.StatusOK, depts)
}

func listUniversities(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, student.Universities)
}

func listGenders(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, student.Genders)
}
