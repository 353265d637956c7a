// Package docs holds the generated swagger spec. Regenerate with:
//
//	swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/charts/axis": {
            "post": {
                "tags": ["Charts"],
                "summary": "Nice axis domain and tick labels for a data sample",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/charts/grid": {
            "post": {
                "tags": ["Charts"],
                "summary": "Build a segmented chart grid",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/v1/compare": {
            "post": {
                "tags": ["Comparison"],
                "summary": "Compare a window against the equal-duration previous window",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/v1/contexts": {
            "post": {
                "tags": ["Contexts"],
                "summary": "Save a dashboard context",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "tags": ["Contexts"],
                "summary": "Remove every saved context (logout)",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/contexts/active": {
            "get": {
                "tags": ["Contexts"],
                "summary": "Fetch the active dashboard context",
                "responses": {"200": {"description": "OK"}, "204": {"description": "No Content"}}
            }
        },
        "/v1/contexts/{id}/activate": {
            "put": {
                "tags": ["Contexts"],
                "summary": "Switch the active dashboard context",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/kpis": {
            "get": {
                "tags": ["KPIs"],
                "summary": "Headline KPIs for the live dashboard",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Control Center Analytics API",
	Description:      "Dimensional time-series aggregation and segmentation service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
