// Package docs holds the Swagger specification served at /swagger.
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "description": "Authenticate the owner and get a token",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token generated"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "description": "Add an income, expense, transfer, or save transaction. A cash expense projecting over the daily limit is withheld unless confirm_over_budget is set.",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Withheld pending over-budget confirmation"},
                    "201": {"description": "Transaction committed"},
                    "400": {"description": "Invalid input or insufficient balance"},
                    "502": {"description": "Persistence failure"}
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Get a transaction",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Delete a transaction",
                "description": "Delete a transaction and reverse its effect on the balances",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/balances": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["finance"],
                "summary": "Get balances",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/budget/evaluate": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["finance"],
                "summary": "Evaluate budget",
                "parameters": [{"name": "amount", "in": "query", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}
            }
        },
        "/statistics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["finance"],
                "summary": "Get statistics",
                "parameters": [{"name": "window", "in": "query", "type": "string", "enum": ["day", "week", "month"]}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/goals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["goals"],
                "summary": "List savings goals",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["goals"],
                "summary": "Create a savings goal",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateGoalRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}
            }
        },
        "/goals/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["goals"],
                "summary": "Delete a savings goal",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/goals/{id}/sync": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["goals"],
                "summary": "Sync goal progress",
                "description": "Refresh the goal's cached current amount from the pooled savings balance",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/settings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["settings"],
                "summary": "Update settings",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateSettingsRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid settings"}}
            }
        },
        "/reset": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["finance"],
                "summary": "Reset all data",
                "responses": {"200": {"description": "All data reset"}}
            }
        }
    },
    "definitions": {
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"}
            }
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["type", "amount", "description", "account"],
            "properties": {
                "type": {"type": "string", "enum": ["income", "expense", "transfer", "save"]},
                "amount": {"type": "integer"},
                "description": {"type": "string", "maxLength": 100},
                "account": {"type": "string", "enum": ["bank", "cash", "savings"]},
                "target_account": {"type": "string", "enum": ["bank", "cash"]},
                "category": {"type": "string"},
                "confirm_over_budget": {"type": "boolean"}
            }
        },
        "handlers.CreateGoalRequest": {
            "type": "object",
            "required": ["name", "target_amount"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "target_amount": {"type": "integer"},
                "deadline": {"type": "string", "format": "date-time"}
            }
        },
        "handlers.UpdateSettingsRequest": {
            "type": "object",
            "required": ["daily_cash_limit"],
            "properties": {
                "daily_cash_limit": {"type": "integer"},
                "enable_notifications": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and JWT token."
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Duitku API",
	Description:      "Duitku is a personal finance tracker with bank, cash, and savings balances, a daily cash budget, and savings goals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
