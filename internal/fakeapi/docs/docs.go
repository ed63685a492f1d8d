// Package docs registra la documentación OpenAPI del backend falso en swag.
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
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/register": {"post": {"summary": "Create a user account", "tags": ["auth"], "responses": {"201": {"description": "token + user"}, "409": {"description": "email taken"}}}},
        "/login": {"post": {"summary": "User login", "tags": ["auth"], "responses": {"200": {"description": "token + user"}, "401": {"description": "bad credentials"}}}},
        "/api/pets/register": {"post": {"summary": "Register owner and pet (pending approval)", "tags": ["pets"], "responses": {"201": {"description": "registration"}}}},
        "/api/pets/login": {"post": {"summary": "Pet owner login", "tags": ["pets"], "responses": {"200": {"description": "token + owner"}}}},
        "/api/pets/logout": {"get": {"summary": "Pet owner logout", "tags": ["pets"], "security": [{"Bearer": []}], "responses": {"200": {"description": "ok"}}}},
        "/api/pets/approved": {"get": {"summary": "Approved pets", "tags": ["pets"], "responses": {"200": {"description": "registrations"}}}},
        "/api/pets/my-profile": {"get": {"summary": "Owner registration", "tags": ["pets"], "security": [{"Bearer": []}], "responses": {"200": {"description": "registration"}}}},
        "/api/pets/update-pet": {"patch": {"summary": "Edit pet details", "tags": ["pets"], "security": [{"Bearer": []}], "responses": {"200": {"description": "registration"}}}},
        "/api/pets/update-owner": {"patch": {"summary": "Edit owner details", "tags": ["pets"], "security": [{"Bearer": []}], "responses": {"200": {"description": "registration"}}}},
        "/api/pets/update-password": {"patch": {"summary": "Change owner password", "tags": ["pets"], "security": [{"Bearer": []}], "responses": {"200": {"description": "ok"}}}},
        "/api/pets/all-registrations": {"get": {"summary": "All registrations (admin)", "tags": ["admin"], "security": [{"Bearer": []}], "responses": {"200": {"description": "registrations"}}}},
        "/api/pets/status/{id}": {"patch": {"summary": "Approve or reject a registration (admin)", "tags": ["admin"], "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "registration"}}}},
        "/api/admin/delete-registration/{id}": {"delete": {"summary": "Delete a registration (admin)", "tags": ["admin"], "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "ok"}}}},
        "/api/products": {
            "get": {"summary": "List products", "tags": ["products"], "responses": {"200": {"description": "products"}}},
            "post": {"summary": "Create product (admin)", "tags": ["products"], "security": [{"Bearer": []}], "responses": {"201": {"description": "product"}}}
        },
        "/api/products/{id}": {"patch": {"summary": "Update price or stock (admin)", "tags": ["products"], "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "product"}}}},
        "/api/adoptions": {"post": {"summary": "Submit adoption request", "tags": ["adoptions"], "security": [{"Bearer": []}], "responses": {"201": {"description": "request"}}}},
        "/api/adoptions/owner": {"get": {"summary": "Requests for the owner's pet", "tags": ["adoptions"], "security": [{"Bearer": []}], "responses": {"200": {"description": "requests"}}}},
        "/api/adoptions/{id}/status": {"patch": {"summary": "Approve or reject an adoption request", "tags": ["adoptions"], "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "request"}}}},
        "/api/contact": {"post": {"summary": "Contact form", "tags": ["contact"], "responses": {"200": {"description": "ok"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet adoption portal API (fake)",
	Description:      "In-memory backend speaking the portal's REST contract.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
