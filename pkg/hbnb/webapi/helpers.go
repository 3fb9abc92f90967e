// Package webapi implements the v1 REST surface over the storage facade.
// Response bodies and status codes match the service's original API: 400
// with {"error": "Not a JSON"} for an unusable body, 400 with
// {"error": "Missing <field>"} for absent required fields, 404 with
// {"error": "Not found"} for missing resources, and {} on delete.
package webapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// decodeAttrs reads the request body as a JSON object. A body that isn't a
// JSON object, or is empty, is unusable.
func decodeAttrs(ctx echo.Context) (map[string]any, bool) {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, false
	}

	var attrs map[string]any
	if err := json.Unmarshal(body, &attrs); err != nil {
		return nil, false
	}

	if len(attrs) == 0 {
		return nil, false
	}

	return attrs, true
}

// requireString pulls a required, non-empty string field out of the decoded
// body.
func requireString(attrs map[string]any, key string) (string, bool) {
	s, ok := attrs[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func notAJSON(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Not a JSON"})
}

func missingField(ctx echo.Context, field string) error {
	return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Missing " + field})
}

func notFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
}

func deleted(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{})
}
