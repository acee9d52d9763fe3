// Package openapi describes the registered resources as an OpenAPI 3.0
// document and serves it together with a Swagger UI page.
package openapi

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/pkg/civil"
)

var dateType = reflect.TypeOf(civil.Date{})

// Resource is one CRUD collection. Model is the stored entity returned by
// the API and Payload the body accepted on create and update; both are
// zero values used only for their type.
type Resource struct {
	Name    string
	Tag     string
	Path    string
	Model   any
	Payload any
}

// Query is an extra read-only collection route such as a listing filtered
// by a parent id.
type Query struct {
	Resource string
	Path     string
	Param    string
	Summary  string
}

// Generator accumulates resources and renders the document on demand.
type Generator struct {
	mu        sync.Mutex
	title     string
	version   string
	resources []Resource
	queries   []Query
}

func NewGenerator(title, version string) *Generator {
	return &Generator{title: title, version: version}
}

func (g *Generator) Add(resources ...Resource) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resources = append(g.resources, resources...)
}

func (g *Generator) AddQuery(q Query) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queries = append(g.queries, q)
}

// GenerateSpec produces the OpenAPI 3.0 document as a map.
func (g *Generator) GenerateSpec() map[string]interface{} {
	g.mu.Lock()
	defer g.mu.Unlock()

	paths := make(map[string]interface{})
	schemas := map[string]interface{}{
		"Error":   errorSchema(),
		"Message": messageSchema(),
	}
	var tags []map[string]string
	seenTags := map[string]bool{}

	for _, r := range g.resources {
		schemas[r.Name] = schemaFor(reflect.TypeOf(r.Model))
		schemas[r.Name+"Input"] = schemaFor(reflect.TypeOf(r.Payload))
		paths[r.Path] = collectionOperations(r)
		paths[r.Path+"/{id}"] = itemOperations(r)
		if !seenTags[r.Tag] {
			seenTags[r.Tag] = true
			tags = append(tags, map[string]string{"name": r.Tag})
		}
	}

	for _, q := range g.queries {
		paths[q.Path] = map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     q.Summary,
				"operationId": "list" + q.Resource + "By" + exportName(q.Param),
				"tags":        []string{tagOf(g.resources, q.Resource)},
				"parameters":  []map[string]interface{}{pathParam(q.Param)},
				"responses": map[string]interface{}{
					"200": arrayResponse("Success", q.Resource),
					"400": errorResponse("Invalid parameter"),
				},
			},
		}
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":   g.title,
			"version": g.version,
		},
		"tags":  tags,
		"paths": paths,
		"components": map[string]interface{}{
			"schemas": schemas,
		},
	}
}

func tagOf(resources []Resource, name string) string {
	for _, r := range resources {
		if r.Name == name {
			return r.Tag
		}
	}
	return name
}

func collectionOperations(r Resource) map[string]interface{} {
	return map[string]interface{}{
		"get": map[string]interface{}{
			"summary":     "List " + r.Name,
			"operationId": "list" + r.Name,
			"tags":        []string{r.Tag},
			"parameters": []map[string]interface{}{
				queryParam("limit", "Maximum number of rows to return"),
				queryParam("offset", "Number of rows to skip"),
			},
			"responses": map[string]interface{}{
				"200": arrayResponse("Success", r.Name),
			},
		},
		"post": map[string]interface{}{
			"summary":     "Create " + r.Name,
			"operationId": "create" + r.Name,
			"tags":        []string{r.Tag},
			"requestBody": requestBody(r.Name + "Input"),
			"responses": map[string]interface{}{
				"201": objectResponse("Created", r.Name),
				"400": errorResponse("Invalid payload or reference"),
				"409": errorResponse("Unique constraint violated"),
			},
		},
	}
}

func itemOperations(r Resource) map[string]interface{} {
	params := []map[string]interface{}{pathParam("id")}
	return map[string]interface{}{
		"get": map[string]interface{}{
			"summary":     "Read " + r.Name,
			"operationId": "read" + r.Name,
			"tags":        []string{r.Tag},
			"parameters":  params,
			"responses": map[string]interface{}{
				"200": objectResponse("Success", r.Name),
				"404": errorResponse("Not found"),
			},
		},
		"put": map[string]interface{}{
			"summary":     "Update " + r.Name,
			"operationId": "update" + r.Name,
			"tags":        []string{r.Tag},
			"parameters":  params,
			"requestBody": requestBody(r.Name + "Input"),
			"responses": map[string]interface{}{
				"200": objectResponse("Updated", r.Name),
				"400": errorResponse("Invalid payload or reference"),
				"404": errorResponse("Not found"),
				"409": errorResponse("Unique constraint violated"),
			},
		},
		"delete": map[string]interface{}{
			"summary":     "Delete " + r.Name,
			"operationId": "delete" + r.Name,
			"tags":        []string{r.Tag},
			"parameters":  params,
			"responses": map[string]interface{}{
				"200": objectResponse("Deleted", "Message"),
				"404": errorResponse("Not found"),
				"409": errorResponse("Still referenced by other rows"),
			},
		},
	}
}

func queryParam(name, description string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"in":          "query",
		"description": description,
		"schema":      map[string]interface{}{"type": "integer", "minimum": 0},
	}
}

func pathParam(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":     name,
		"in":       "path",
		"required": true,
		"schema":   map[string]interface{}{"type": "integer", "format": "int64", "minimum": 1},
	}
}

func ref(name string) map[string]interface{} {
	return map[string]interface{}{"$ref": "#/components/schemas/" + name}
}

func jsonContent(schema map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		echo.MIMEApplicationJSON: map[string]interface{}{"schema": schema},
	}
}

func requestBody(schemaName string) map[string]interface{} {
	return map[string]interface{}{
		"required": true,
		"content":  jsonContent(ref(schemaName)),
	}
}

func objectResponse(description, schemaName string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content":     jsonContent(ref(schemaName)),
	}
}

func arrayResponse(description, schemaName string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content": jsonContent(map[string]interface{}{
			"type":  "array",
			"items": ref(schemaName),
		}),
	}
}

func errorResponse(description string) map[string]interface{} {
	return objectResponse(description, "Error")
}

func errorSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"code":    map[string]interface{}{"type": "string"},
			"message": map[string]interface{}{"type": "string"},
			"status":  map[string]interface{}{"type": "integer"},
			"errors": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"field": map[string]interface{}{"type": "string"},
						"error": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
		"required": []string{"code", "message", "status"},
	}
}

func messageSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"message": map[string]interface{}{"type": "string"},
		},
		"required": []string{"message"},
	}
}

// schemaFor describes a struct from its json and validate tags.
func schemaFor(t reflect.Type) map[string]interface{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	props := make(map[string]interface{})
	var required []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		prop := typeSchema(f.Type)
		rules := strings.Split(f.Tag.Get("validate"), ",")
		for _, rule := range rules {
			if rule == "required" {
				required = append(required, name)
			}
			applyRule(prop, rule)
		}
		props[name] = prop
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func typeSchema(t reflect.Type) map[string]interface{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == dateType {
		return map[string]interface{}{"type": "string", "format": "date"}
	}
	switch t.Kind() {
	case reflect.Int64:
		return map[string]interface{}{"type": "integer", "format": "int64"}
	case reflect.Int, reflect.Int32, reflect.Int16, reflect.Int8:
		return map[string]interface{}{"type": "integer", "format": "int32"}
	case reflect.Float64, reflect.Float32:
		return map[string]interface{}{"type": "number", "format": "double"}
	case reflect.Bool:
		return map[string]interface{}{"type": "boolean"}
	}
	return map[string]interface{}{"type": "string"}
}

// applyRule maps one validator rule onto the matching JSON Schema keyword.
func applyRule(prop map[string]interface{}, rule string) {
	key, param, _ := strings.Cut(rule, "=")
	n, err := strconv.Atoi(param)
	numeric := prop["type"] == "integer" || prop["type"] == "number"

	switch key {
	case "email":
		prop["format"] = "email"
	case "max":
		if err == nil && !numeric {
			prop["maxLength"] = n
		} else if err == nil {
			prop["maximum"] = n
		}
	case "len":
		if err == nil {
			prop["minLength"] = n
			prop["maxLength"] = n
		}
	case "gte":
		if err == nil {
			prop["minimum"] = n
		}
	case "gt":
		if err == nil {
			prop["minimum"] = n
			prop["exclusiveMinimum"] = true
		}
	}
}

func exportName(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Healthplan API - Swagger UI</title>
  <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" >
  <style>
    html { box-sizing: border-box; overflow-y: scroll; }
    *, *:before, *:after { box-sizing: inherit; }
    body { margin: 0; background: #fafafa; }
  </style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/openapi.json",
      dom_id: '#swagger-ui',
      deepLinking: true,
      presets: [
        SwaggerUIBundle.presets.apis,
        SwaggerUIBundle.SwaggerUIStandalonePreset
      ],
      layout: "BaseLayout"
    })
  </script>
</body>
</html>`

// RegisterRoutes registers the OpenAPI endpoints.
func (g *Generator) RegisterRoutes(e *echo.Echo) {
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, g.GenerateSpec())
	})
	e.GET("/docs", func(c echo.Context) error {
		return c.HTML(http.StatusOK, swaggerUIHTML)
	})
}
