// Package docs provides the Swagger document for the apiregistry REST API.
//
//	@title			apiregistry API
//	@version		1.0.0
//	@description	Registry of API endpoint definitions (name, path, method, description).
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//	@schemes		http https
package docs

import (
	"github.com/swaggo/swag"
)

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/endpoints": {
            "get": {
                "description": "Returns every registered endpoint, newest first.",
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "List endpoints",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/models.APIEndpoint"}
                        }
                    },
                    "500": {
                        "description": "Failed to fetch API endpoints",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Registers a new endpoint. Names are unique.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "Create endpoint",
                "parameters": [
                    {
                        "description": "Endpoint definition",
                        "name": "endpoint",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.EndpointInput"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/models.APIEndpoint"}
                    },
                    "400": {
                        "description": "Missing required fields: name, path, method",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    },
                    "409": {
                        "description": "An API endpoint with this name already exists.",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    },
                    "500": {
                        "description": "Failed to create API endpoint",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    }
                }
            }
        },
        "/endpoints/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "Get endpoint",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Endpoint ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.APIEndpoint"}
                    },
                    "404": {
                        "description": "API endpoint not found",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    },
                    "500": {
                        "description": "Failed to fetch API endpoint",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    }
                }
            },
            "put": {
                "description": "Replaces name, path and method. An omitted description keeps the stored one.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "Update endpoint",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Endpoint ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Endpoint definition",
                        "name": "endpoint",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.EndpointInput"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.APIEndpoint"}
                    },
                    "400": {
                        "description": "Missing required fields: name, path, method",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    },
                    "404": {
                        "description": "API endpoint not found",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    },
                    "409": {
                        "description": "An API endpoint with this name already exists.",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    },
                    "500": {
                        "description": "Failed to update API endpoint",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["endpoints"],
                "summary": "Delete endpoint",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Endpoint ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "API endpoint deleted successfully",
                        "schema": {"$ref": "#/definitions/docs.MessageResponse"}
                    },
                    "404": {
                        "description": "API endpoint not found",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    },
                    "500": {
                        "description": "Failed to delete API endpoint",
                        "schema": {"$ref": "#/definitions/apiutil.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "models.APIEndpoint": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "path": {"type": "string"},
                "method": {"type": "string"},
                "description": {"type": "string", "x-nullable": true},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "models.EndpointInput": {
            "type": "object",
            "required": ["name", "path", "method"],
            "properties": {
                "name": {"type": "string", "example": "ping"},
                "path": {"type": "string", "example": "/ping"},
                "method": {"type": "string", "example": "GET"},
                "description": {"type": "string", "x-nullable": true}
            }
        },
        "apiutil.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not_found"},
                "message": {"type": "string", "example": "API endpoint not found"},
                "details": {}
            }
        },
        "docs.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "API endpoint deleted successfully"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{"http", "https"},
	Title:            "apiregistry API",
	Description:      "Registry of API endpoint definitions (name, path, method, description).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
