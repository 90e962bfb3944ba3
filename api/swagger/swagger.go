package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tutor Classes API",
        "description": "Register tutors with weekly class schedules and search who is teaching a subject at a given time.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Classes", "description": "Class registration and availability search"},
        {"name": "Health", "description": "Liveness, readiness and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Schedule store unavailable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Health"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "Search classes",
                "description": "Returns every tutor teaching subject whose schedule covers week_day at time.",
                "parameters": [
                    {"name": "subject", "in": "query", "required": true, "type": "string"},
                    {"name": "week_day", "in": "query", "required": true, "type": "integer"},
                    {"name": "time", "in": "query", "required": true, "type": "string", "description": "HH:MM"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TutorWithClass"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Register class",
                "description": "Creates a tutor, their class and its weekly schedule atomically.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/export": {
            "get": {
                "tags": ["Classes"],
                "summary": "Export search results",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "subject", "in": "query", "required": true, "type": "string"},
                    {"name": "week_day", "in": "query", "required": true, "type": "integer"},
                    {"name": "time", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Attachment"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/count": {
            "get": {
                "tags": ["Classes"],
                "summary": "Count registered classes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ClassCount"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Classes"],
                "summary": "List distinct subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "ScheduleItem": {
            "type": "object",
            "required": ["week_day", "from", "to"],
            "properties": {
                "week_day": {"type": "integer", "minimum": 0, "maximum": 6},
                "from": {"type": "string", "example": "08:00"},
                "to": {"type": "string", "example": "10:00"}
            }
        },
        "RegisterClassRequest": {
            "type": "object",
            "required": ["name", "avatar", "whatsapp", "bio", "subject", "cost", "schedule"],
            "properties": {
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "whatsapp": {"type": "string"},
                "bio": {"type": "string"},
                "subject": {"type": "string"},
                "cost": {"type": "number", "minimum": 0},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/ScheduleItem"}}
            }
        },
        "TutorWithClass": {
            "type": "object",
            "properties": {
                "class_id": {"type": "string"},
                "subject": {"type": "string"},
                "cost": {"type": "number"},
                "tutor_id": {"type": "string"},
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "whatsapp": {"type": "string"},
                "bio": {"type": "string"}
            }
        },
        "ClassCount": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
