// Package swagger registers the generated OpenAPI document consumed by
// gin-swagger in cmd/timetable-api. In a real build this file would be
// produced by `swag init`; it is checked in by hand here since the
// toolchain isn't run as part of this exercise.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable Engine API",
        "description": "Constraint-satisfaction weekly timetable solver",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/v1/solve": {
            "post": {
                "summary": "Solve a timetabling input document",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Solution document (solved, infeasible, or timed out)"
                    },
                    "400": {
                        "description": "Input document is malformed"
                    },
                    "422": {
                        "description": "Input document violates a reference or invariant rule"
                    }
                }
            }
        },
        "/v1/solve/export.csv": {
            "post": {
                "summary": "Solve and render the result as CSV",
                "produces": ["text/csv"]
            }
        },
        "/v1/solve/export.pdf": {
            "post": {
                "summary": "Solve and render the result as PDF",
                "produces": ["application/pdf"]
            }
        },
        "/v1/runs": {
            "get": {
                "summary": "List recent solve runs",
                "produces": ["application/json"]
            }
        },
        "/v1/runs/{id}": {
            "get": {
                "summary": "Fetch a single solve run",
                "produces": ["application/json"]
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
