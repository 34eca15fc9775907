// Package docs registers the Swagger document of the analytics service.
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
        "/analysis/engagement-over-time": {
            "get": {
                "description": "Weekly (Monday start) engagements per author and post category over the last three months.",
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Engagement over time",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.WeeklyAuthorCategory"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/analysis/engagement-patterns": {
            "get": {
                "description": "Engagements per day of week (0 = Sunday) and hour of day.",
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Engagement patterns",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.EngagementPattern"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/analysis/low-engagement-authors": {
            "get": {
                "description": "Post count, engagements and engagements per post for every author, most prolific and least engaging first.",
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Low engagement authors",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.AuthorEfficiency"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/analysis/top-authors": {
            "get": {
                "description": "Authors ranked by total engagements on their posts. Equal totals are ordered by author id.",
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Top authors",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.AuthorEngagement"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/trends/engagement": {
            "get": {
                "description": "Number of engagements per calendar date, oldest first.",
                "produces": ["application/json"],
                "tags": ["trends"],
                "summary": "Engagement trend",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.EngagementTrend"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "entity.AuthorEfficiency": {
            "type": "object",
            "properties": {
                "author_id": {"type": "integer"},
                "engagement_per_post": {"type": "number"},
                "name": {"type": "string"},
                "post_count": {"type": "integer"},
                "total_engagements": {"type": "integer"}
            }
        },
        "entity.AuthorEngagement": {
            "type": "object",
            "properties": {
                "author_id": {"type": "integer"},
                "name": {"type": "string"},
                "total_engagements": {"type": "integer"}
            }
        },
        "entity.EngagementPattern": {
            "type": "object",
            "properties": {
                "day_of_week": {"type": "integer"},
                "hour_of_day": {"type": "integer"},
                "total_engagements": {"type": "integer"}
            }
        },
        "entity.EngagementTrend": {
            "type": "object",
            "properties": {
                "engagement_date": {"type": "string"},
                "total_engagements": {"type": "integer"}
            }
        },
        "entity.WeeklyAuthorCategory": {
            "type": "object",
            "properties": {
                "author_name": {"type": "string"},
                "category": {"type": "string"},
                "total_engagements": {"type": "integer"},
                "week": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Content Analytics API",
	Description:      "Engagement reports over the generated content analytics dataset.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
