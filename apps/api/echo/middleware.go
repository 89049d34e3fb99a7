package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/hmpssainta/sainta/core"
)

// roleHeader carries the acting role on a request. There is no authentication
// scheme; the header is a capability switch and absent it the configured
// default role applies.
const roleHeader = "X-Role"

func contextRole(ctx echo.Context, conf *core.Config) string {
	if role := core.CleanString(ctx.Request().Header.Get(roleHeader), true /* lower */); role != "" {
		return role
	}
	return conf.DefaultRole
}

func adminMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if contextRole(ctx, conf) == core.RoleAdmin {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
