package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/render"
	"github.com/diesi/aienum/internal/version"
)

// DefaultName is used when a request does not name its enum.
const DefaultName = "Enum"

type enumRequest struct {
	Description string `json:"description"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Format      string `json:"format"`
	Casing      *bool  `json:"casing"`
	Trailing    *bool  `json:"trailing"`
}

type enumResponse struct {
	Enum enumdesc.Enum `json:"enum"`
	Code string        `json:"code"`
}

type renderRequest struct {
	Enum   enumdesc.Enum `json:"enum"`
	Format string        `json:"format"`
}

type renderResponse struct {
	Code string `json:"code"`
}

// HealthHandler reports liveness and the build version.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Get()})
	}
}

// EnumHandler extracts an enum from a description and renders it.
func EnumHandler(resolve enumdesc.NameFunc, defaults Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req enumRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abort(c, errors.WrapInvalidRequest(err, "decode body"))
			return
		}
		if strings.TrimSpace(req.Description) == "" {
			abort(c, errors.Wrap(errors.ErrInvalidRequest, "description is required"))
			return
		}
		format, err := render.ParseFormat(firstNonEmpty(req.Format, defaults.Format))
		if err != nil {
			abort(c, err)
			return
		}

		var opts []enumdesc.Option
		if !boolOr(req.Casing, defaults.Casing) {
			opts = append(opts, enumdesc.WithoutCasing())
		}
		if boolOr(req.Trailing, defaults.Trailing) {
			opts = append(opts, enumdesc.WithTrailingSegment())
		}
		entries, err := enumdesc.Extract(c.Request.Context(), req.Description, resolve, opts...)
		if err != nil {
			abort(c, err)
			return
		}
		if entries == nil {
			abort(c, errors.WithHint(errors.ErrNoEnum, "number each item, e.g. 1 red, 2 green, 3 blue"))
			return
		}

		e := enumdesc.Enum{
			Label:   firstNonEmpty(req.Label, strings.TrimSpace(req.Description)),
			Name:    firstNonEmpty(req.Name, DefaultName),
			Entries: entries,
		}
		code, err := render.Render(format, e)
		if err != nil {
			abort(c, err)
			return
		}
		c.JSON(http.StatusOK, enumResponse{Enum: e, Code: code})
	}
}

// RenderHandler renders a caller-supplied enum.
func RenderHandler(defaults Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req renderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abort(c, errors.WrapInvalidRequest(err, "decode body"))
			return
		}
		if req.Enum.Name == "" {
			abort(c, errors.Wrap(errors.ErrInvalidRequest, "enum.name is required"))
			return
		}
		format, err := render.ParseFormat(firstNonEmpty(req.Format, defaults.Format))
		if err != nil {
			abort(c, err)
			return
		}
		code, err := render.Render(format, req.Enum)
		if err != nil {
			abort(c, errors.WrapInvalidRequest(err, "render"))
			return
		}
		c.JSON(http.StatusOK, renderResponse{Code: code})
	}
}

// abort maps err to a status and writes the JSON error body.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	body := gin.H{
		"error":      err.Error(),
		"request_id": c.GetString(ctxRequestID),
	}
	if hint := errors.FlattenHints(err); hint != "" {
		body["hint"] = hint
	}
	c.AbortWithStatusJSON(statusFor(err), body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrInvalidRequest), errors.Is(err, errors.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrNoEnum):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrMissingAPIKey):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
