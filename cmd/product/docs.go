package main

// @title Product Service API
// @version 1.0
// @description Product catalog exposed as JSON:API resources (application/vnd.api+json)

// @contact.name API Support
// @contact.url http://github.com/link/inventory-platform

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared API key of the platform.

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Health
// @tag.description Health check endpoints
