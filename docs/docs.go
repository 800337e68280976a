// Package docs holds the Swagger 2.0 document served under /v1/swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog/categories": {
            "get": {
                "description": "Returns the full category tree starting at the top-level categories",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Category tree",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/catalog.CategoryNode"}
                        }
                    }
                }
            }
        },
        "/catalog/categories/flat": {
            "get": {
                "description": "Pre-order list of every category with its depth (0 for top-level)",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Flattened categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/main.flatCategory"}
                        }
                    }
                }
            }
        },
        "/catalog/categories/{categoryID}": {
            "get": {
                "description": "Returns a category with its breadcrumb trail and the number of products beneath it",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "categoryID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.categoryDetail"}},
                    "404": {"description": "Not Found", "schema": {}}
                }
            }
        },
        "/catalog/menu": {
            "get": {
                "description": "Top-level categories with their second-level columns and third-level links, each with a product count",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Navigation menu",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/catalog.MenuEntry"}
                        }
                    }
                }
            }
        },
        "/catalog/products": {
            "get": {
                "description": "Filters by search term, category (any ancestor) and category path prefix, then sorts and paginates",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Query catalog products",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of name or description", "name": "q", "in": "query"},
                    {"type": "string", "description": "Category ID matched against every level of the product's path", "name": "category", "in": "query"},
                    {"type": "string", "description": "Comma separated category IDs, matched as a path prefix", "name": "path", "in": "query"},
                    {"enum": ["name", "price-low", "price-high"], "type": "string", "description": "name, price-low or price-high", "name": "sort", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 24, max 60)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.productPage"}}
                }
            }
        },
        "/catalog/products/id/{productID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get product by id",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "productID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.productDetail"}},
                    "400": {"description": "Bad Request", "schema": {}},
                    "404": {"description": "Not Found", "schema": {}}
                }
            }
        },
        "/catalog/products/{urlKey}": {
            "get": {
                "description": "Resolves a product detail page by its url key, case-insensitively",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get product by url key",
                "parameters": [
                    {"type": "string", "description": "Product url key", "name": "urlKey", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.productDetail"}},
                    "404": {"description": "Not Found", "schema": {}}
                }
            }
        },
        "/health": {
            "get": {
                "security": [{"BasicAuth": []}],
                "description": "Reports the build version, catalog size and database reachability",
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.healthStatus"}},
                    "401": {"description": "Unauthorized", "schema": {}}
                }
            }
        }
    },
    "definitions": {
        "catalog.CategoryNode": {
            "type": "object",
            "properties": {
                "children": {"type": "array", "items": {"$ref": "#/definitions/catalog.CategoryNode"}},
                "href": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "catalog.Crumb": {
            "type": "object",
            "properties": {
                "href": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "catalog.MenuColumn": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "href": {"type": "string"},
                "id": {"type": "string"},
                "links": {"type": "array", "items": {"$ref": "#/definitions/catalog.MenuLink"}},
                "name": {"type": "string"}
            }
        },
        "catalog.MenuEntry": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"$ref": "#/definitions/catalog.MenuColumn"}},
                "count": {"type": "integer"},
                "href": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "catalog.MenuLink": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "href": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "catalog.Product": {
            "type": "object",
            "properties": {
                "category_href": {"type": "string"},
                "category_id": {"type": "string"},
                "category_names": {"type": "array", "items": {"type": "string"}},
                "category_path": {"type": "array", "items": {"type": "string"}},
                "category_slugs": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "discount_percent": {"type": "integer"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "in_stock": {"type": "boolean"},
                "name": {"type": "string"},
                "original_price": {"type": "integer"},
                "price": {"type": "integer"},
                "rating": {"type": "number"},
                "reviews": {"type": "integer"},
                "slug": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "url_key": {"type": "string"}
            }
        },
        "catalog.TagConfig": {
            "type": "object",
            "properties": {
                "bg_color": {"type": "string"},
                "label": {"type": "string"},
                "label_en": {"type": "string"},
                "priority": {"type": "integer"},
                "text_color": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "main.categoryDetail": {
            "type": "object",
            "properties": {
                "breadcrumbs": {"type": "array", "items": {"$ref": "#/definitions/catalog.Crumb"}},
                "category": {"$ref": "#/definitions/catalog.CategoryNode"},
                "product_count": {"type": "integer"}
            }
        },
        "main.flatCategory": {
            "type": "object",
            "properties": {
                "has_children": {"type": "boolean"},
                "href": {"type": "string"},
                "id": {"type": "string"},
                "level": {"type": "integer"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "main.healthStatus": {
            "type": "object",
            "properties": {
                "catalog_products": {"type": "integer"},
                "database": {"type": "string"},
                "env": {"type": "string"},
                "status": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "main.productDetail": {
            "type": "object",
            "properties": {
                "breadcrumbs": {"type": "array", "items": {"$ref": "#/definitions/catalog.Crumb"}},
                "primary_tag": {"$ref": "#/definitions/catalog.TagConfig"},
                "product": {"$ref": "#/definitions/catalog.Product"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/catalog.TagConfig"}},
                "url": {"type": "string"}
            }
        },
        "main.productPage": {
            "type": "object",
            "properties": {
                "pagination": {"$ref": "#/definitions/params.Pagination"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/catalog.Product"}}
            }
        },
        "params.Pagination": {
            "type": "object",
            "properties": {
                "has_next": {"type": "boolean"},
                "has_prev": {"type": "boolean"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "page": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BasicAuth": {
            "type": "basic"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Storefront Catalog API",
	Description:      "Category tree, catalog queries and product listing for the storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
