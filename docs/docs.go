// Package docs holds the OpenAPI document served by the swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {
            "post": {
                "summary": "Start a session for a user name, creating the user when unknown",
                "tags": ["session"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/logout": {
            "post": {
                "summary": "End the active session",
                "tags": ["session"],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/subjects": {
            "get": {
                "summary": "List subjects that have questions",
                "tags": ["quiz"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/subjects/{subject}/select": {
            "post": {
                "summary": "Switch to a subject and draw a question",
                "tags": ["quiz"],
                "parameters": [{"name": "subject", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/answers": {
            "post": {
                "summary": "Submit an answer for the pending question",
                "tags": ["quiz"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "409": {"description": "Conflict"}}
            }
        },
        "/profile": {
            "get": {
                "summary": "Active user's name and points",
                "tags": ["profile"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/profile/name": {
            "put": {
                "summary": "Rename the active user",
                "tags": ["profile"],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/export": {
            "get": {
                "summary": "Download all stored progress as JSON",
                "tags": ["profile"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Lernapp API",
	Description:      "Single-user quiz trainer — log in, pick a subject, answer questions, collect points.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
