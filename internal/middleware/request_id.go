package middleware

import (
	"myGreenReco/business/recommendation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderRequestID = echo.HeaderXRequestID

// RequestID reuses the caller's X-Request-ID or generates one, echoes it on
// the response and stores it as the trace id of the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			rid := req.Header.Get(HeaderRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Response().Header().Set(HeaderRequestID, rid)
			c.SetRequest(req.WithContext(recommendation.WithTraceID(req.Context(), rid)))

			return next(c)
		}
	}
}
