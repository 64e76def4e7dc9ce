// Package docs hosts the swaggo-generated Swagger spec for the
// hugostego HTTP API. In a real build this file is produced by
// `swag init`; it is checked in here so gin-swagger has a spec to
// serve without a generation step.
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
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Health Check",
                "responses": {"200": {"description": "Service is healthy"}}
            }
        },
        "/capacity": {
            "get": {
                "tags": ["Steganography"],
                "summary": "Calculate Embedding Capacity",
                "parameters": [
                    {"name": "width", "in": "query", "required": true, "type": "integer"},
                    {"name": "height", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {"200": {"description": "Successfully calculated embedding capacity"}}
            }
        },
        "/embed": {
            "post": {
                "tags": ["Steganography"],
                "summary": "Embed secret file into a cover image",
                "consumes": ["multipart/form-data"],
                "produces": ["image/png"],
                "parameters": [
                    {"name": "cover", "in": "formData", "required": true, "type": "file"},
                    {"name": "secret", "in": "formData", "required": true, "type": "file"},
                    {"name": "stego_key", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "Stego PNG image with embedded secret"}}
            }
        },
        "/extract": {
            "post": {
                "tags": ["Steganography"],
                "summary": "Extract secret file from a stego image",
                "consumes": ["multipart/form-data"],
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "stego", "in": "formData", "required": true, "type": "file"},
                    {"name": "stego_key", "in": "formData", "required": true, "type": "string"},
                    {"name": "output_filename", "in": "formData", "required": false, "type": "string"}
                ],
                "responses": {"200": {"description": "Extracted secret file"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger info so main can override the
// base path at startup.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "hugostego API",
	Description:      "Content-adaptive image steganography codec HTTP API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
