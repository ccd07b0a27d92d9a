// Package docs holds the Swagger description served at /swagger/*any.
// Regenerate with swag init after changing handler annotations.
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
        "/api/v1/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List tasks", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Tasks"], "summary": "Add a task", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/tasks/complete": {
            "post": {"tags": ["Tasks"], "summary": "Complete tasks by 1-based position", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/tasks/{id}/toggle": {
            "patch": {"tags": ["Tasks"], "summary": "Toggle task completion", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/tasks/{id}": {
            "delete": {"tags": ["Tasks"], "summary": "Delete a task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/notes": {
            "get": {"tags": ["Notes"], "summary": "List notes", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Notes"], "summary": "Add a note", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/notes/{id}": {
            "delete": {"tags": ["Notes"], "summary": "Delete a note", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/settings": {
            "get": {"tags": ["Settings"], "summary": "Get settings with masked secrets", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Settings"], "summary": "Replace settings", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/trends": {
            "get": {"tags": ["Trends"], "summary": "Last trend snapshot", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/trends/scan": {
            "post": {"tags": ["Trends"], "summary": "Scan trends for a category", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}}
        },
        "/api/v1/generate": {
            "post": {"tags": ["Generation"], "summary": "Generate text", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}}
        },
        "/api/v1/generate/idea": {
            "post": {"tags": ["Generation"], "summary": "Generate a content idea", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}
        },
        "/api/v1/sync": {
            "post": {"tags": ["Sync"], "summary": "Run a sync tick now", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/sync/status": {
            "get": {"tags": ["Sync"], "summary": "Sync loop status", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/health": {
            "get": {"tags": ["Health"], "summary": "Health Check", "produces": ["application/json"], "responses": {"200": {"description": "API is healthy"}}}
        },
        "/ready": {
            "get": {"tags": ["Health"], "summary": "Readiness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is ready"}}}
        },
        "/live": {
            "get": {"tags": ["Health"], "summary": "Liveness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is alive"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:3001",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Social Arch API",
	Description:      "Personal content assistant: tasks, notes, trends and a Telegram command bot.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
