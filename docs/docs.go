// Package docs holds the OpenAPI description served at /swagger/index.html.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/ping": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "pong"}}}
        },
        "/timeline/calculate": {
            "post": {"tags": ["timeline"], "summary": "Price a project for a contractor without saving it", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "quote"}, "400": {"description": "invalid project"}, "409": {"description": "contractor unavailable"}}}
        },
        "/timeline/save": {
            "post": {"tags": ["timeline"], "summary": "Price and save an estimate, redeeming applicable discounts", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "estimate"}}}
        },
        "/timeline/my-estimates": {
            "get": {"tags": ["timeline"], "summary": "List the caller's estimates", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "estimates"}}}
        },
        "/timeline/{id}": {
            "get": {"tags": ["timeline"], "summary": "Get an estimate", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "estimate"}, "403": {"description": "forbidden"}, "404": {"description": "not found"}}},
            "delete": {"tags": ["timeline"], "summary": "Delete an estimate", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "deleted"}, "409": {"description": "estimate is in the cart"}}}
        },
        "/timeline/{id}/status": {
            "put": {"tags": ["timeline"], "summary": "Move an estimate through draft, sent, approved, rejected and completed", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "estimate"}, "409": {"description": "transition not allowed"}}}
        },
        "/discounts/active": {
            "get": {"tags": ["discounts"], "summary": "List active discounts", "responses": {"200": {"description": "discounts"}}}
        },
        "/discounts/validate": {
            "post": {"tags": ["discounts"], "summary": "Check a promo code against a project", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "validation"}, "404": {"description": "unknown code"}}}
        },
        "/discounts/create": {
            "post": {"tags": ["discounts"], "summary": "Create a discount", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "discount"}, "409": {"description": "code taken"}}}
        },
        "/discounts/analytics": {
            "get": {"tags": ["discounts"], "summary": "Redemption analytics of the caller's discounts", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "analytics"}}}
        },
        "/discounts/{id}": {
            "put": {"tags": ["discounts"], "summary": "Update a discount", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "discount"}}},
            "delete": {"tags": ["discounts"], "summary": "Delete a discount", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "deleted"}}}
        },
        "/cart": {
            "get": {"tags": ["cart"], "summary": "Get the caller's cart", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "cart"}}}
        },
        "/cart/add": {
            "post": {"tags": ["cart"], "summary": "Add an estimate to the cart", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "cart"}, "409": {"description": "already in cart or concurrent update"}}}
        },
        "/cart/remove/{itemId}": {
            "delete": {"tags": ["cart"], "summary": "Remove a cart item", "security": [{"BearerAuth": []}], "parameters": [{"name": "itemId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "cart"}}}
        },
        "/cart/clear": {
            "delete": {"tags": ["cart"], "summary": "Empty the cart", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "cart"}}}
        },
        "/orders/create": {
            "post": {"tags": ["orders"], "summary": "Check out the cart", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "order"}, "400": {"description": "empty cart"}}}
        },
        "/orders/payment/process": {
            "post": {"tags": ["orders"], "summary": "Pay an order by card", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "payment"}, "400": {"description": "invalid card"}, "402": {"description": "declined"}, "409": {"description": "already paid"}}}
        },
        "/orders/my-orders": {
            "get": {"tags": ["orders"], "summary": "List the caller's orders", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "orders"}}}
        },
        "/orders/{id}": {
            "get": {"tags": ["orders"], "summary": "Get an order", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "order"}}}
        },
        "/orders/{id}/cancel": {
            "put": {"tags": ["orders"], "summary": "Cancel an order, refunding a completed payment", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "order"}}}
        },
        "/orders/{id}/status": {
            "put": {"tags": ["orders"], "summary": "Advance a paid order to in_progress or completed", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "order"}}}
        },
        "/estimate": {
            "post": {"tags": ["calculator"], "summary": "Paint quantity and cost for one room", "responses": {"200": {"description": "quote"}}}
        },
        "/budget": {
            "post": {"tags": ["calculator"], "summary": "Recommend a paint tier for a budget", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "budget"}}}
        },
        "/budget/{userId}": {
            "get": {"tags": ["calculator"], "summary": "List a user's budgets", "security": [{"BearerAuth": []}], "parameters": [{"name": "userId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "budgets"}}}
        },
        "/contractors": {
            "get": {"tags": ["contractors"], "summary": "List contractors, available first", "responses": {"200": {"description": "contractors"}}}
        },
        "/contractors/me": {
            "put": {"tags": ["contractors"], "summary": "Create or update the caller's contractor profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "contractor"}}}
        },
        "/contractors/{id}": {
            "get": {"tags": ["contractors"], "summary": "Get a contractor", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "contractor"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Paint Marketplace API",
	Description:      "Painting project estimates, contractor discounts, cart and checkout.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
