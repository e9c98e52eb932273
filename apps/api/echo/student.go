package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/chayanin/tcasport/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *student.Service, validate *validator.Validate) {
	api := studentApi{svc: svc, validate: validate}

	sg := g.Group("/students")

	// public: applicants register and upload portfolio images
	sg.POST("", api.create)
	sg.POST("/images", api.readImages)

	// reviewer-only
	ag := sg.Group("", jwt)
	ag.GET("", api.query)
	ag.GET("/:id", api.retrieve)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

func (api *studentApi) create(ctx echo.Context) error {
	reg := student.NewRegistration(api.svc, api.validate)

	data := reg.Draft()
	if err := ctx.Bind(data); err != nil {
		return err
	}
	stud, err := reg.Submit()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, stud)
}

func (api *studentApi) readImages(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return err
	}
	files := student.ImageFilesFromMultipart(form.File["images"])
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no images provided")
	}

	urls, err := api.svc.ReadImages(ctx.Request().Context(), files)
	if err != nil {
		if errors.Cause(err) == student.ErrNotImage {
			return echo.NewHTTPError(http.StatusBadRequest, student.ErrNotImage.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"urls": urls})
}

func (api *studentApi) query(ctx echo.Context) error {
	rev := student.NewReview(api.svc)

	var filter student.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	rev.SetSearch(filter.Search)

	if ord := getOrdering(ctx); ord.Key != "" {
		rev.ToggleSort(ord.Key)
		if !ord.Ascending {
			rev.ToggleSort(ord.Key) // flip to descending
		}
	}

	studs, err := rev.View()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, studs)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	stud, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errStudentNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, stud)
}

func (api *studentApi) update(ctx echo.Context) error {
	id := ctx.Param("id")

	orig, err := api.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errStudentNotFound
		}
		return err
	}

	data := new(student.UpdateStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(orig, api.validate); err != nil {
		return err
	}

	stud, err := api.svc.Update(id, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stud)
}

// destroy removes a record via the two-step review flow; the client
// acknowledges the deletion by passing confirm=true.
func (api *studentApi) destroy(ctx echo.Context) error {
	if ctx.QueryParam("confirm") != "true" {
		return errConfirmRequired
	}

	id := ctx.Param("id")
	if _, err := api.svc.GetByID(id); err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errStudentNotFound
		}
		return err
	}

	rev := student.NewReview(api.svc)
	rev.StageDelete(id)
	if err := rev.ConfirmDelete(); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
