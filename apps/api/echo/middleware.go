package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/teacher"
)

const ctxTeacherKey = "teacher"

var errTeacherNotFoundInCtx = errors.New("teacher object not found in echo.Context")

// teacherMiddleware loads the Teacher of the `:id` path param into the context.
func teacherMiddleware(svc *teacher.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			t, err := svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
			if err != nil {
				if errors.Cause(err) == teacher.ErrNotFound {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding teacher by ID")
			}
			ctx.Set(ctxTeacherKey, t)
			return next(ctx)
		}
	}
}

func getContextTeacher(ctx echo.Context) (teacher.Teacher, error) {
	t, ok := ctx.Get(ctxTeacherKey).(teacher.Teacher)
	if !ok {
		return teacher.Teacher{}, errors.Wrap(errTeacherNotFoundInCtx, "retrieving teacher from context")
	}
	return t, nil
}
