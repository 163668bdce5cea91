package main

// @title Inventory Service API
// @version 1.0
// @description Stock per product, exposed as JSON:API resources. Product data comes from the product service.

// @contact.name API Support
// @contact.url http://github.com/link/inventory-platform

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared API key of the platform.

// @tag.name Inventory
// @tag.description Inventory management endpoints

// @tag.name Health
// @tag.description Health and circuit breaker endpoints
