// Package docs регистрирует OpenAPI-описание HTTP API для /swagger/*.
// Формат совпадает с выводом swag init; при изменении ручек правится вместе с аннотациями.
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
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Информация о товарах",
                "parameters": [
                    {"type": "string", "description": "ID через запятую", "name": "ids", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ProductsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Регистрация товара",
                "parameters": [
                    {"type": "string", "description": "Название товара", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Категория", "name": "category", "in": "formData", "required": true},
                    {"type": "number", "description": "Цена", "name": "price", "in": "formData", "required": true},
                    {"type": "integer", "description": "Остаток", "name": "stock", "in": "formData"},
                    {"type": "string", "description": "JSON-массив [{minQty, discountPercent}]", "name": "discounts", "in": "formData"},
                    {"type": "file", "description": "Изображения товара", "name": "images", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "Изменений нет", "schema": {"$ref": "#/definitions/http.RegisterProductResponse"}},
                    "201": {"description": "Товар создан или изменён", "schema": {"$ref": "#/definitions/http.RegisterProductResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/discounts": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Замена оптовых скидок товара",
                "parameters": [
                    {"type": "integer", "description": "ID товара", "name": "id", "in": "path", "required": true},
                    {"description": "Новый набор скидок", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SetDiscountsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/price": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Цена товара для количества",
                "parameters": [
                    {"type": "integer", "description": "ID товара", "name": "id", "in": "path", "required": true},
                    {"type": "number", "description": "Количество (по умолчанию 1; дробное округляется вниз, нечисловое и отрицательное считается нулём)", "name": "quantity", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.PriceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/quotes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Расчёт корзины",
                "parameters": [
                    {"description": "Позиции", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.QuoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.QuoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/carts/{owner}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["carts"],
                "summary": "Корзина с ценами",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}}
                }
            },
            "delete": {
                "tags": ["carts"],
                "summary": "Очистить корзину",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/carts/{owner}/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["carts"],
                "summary": "Добавить товар в корзину",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"description": "Товар и количество", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CartItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/carts/{owner}/items/{productId}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["carts"],
                "summary": "Изменить количество (меньше 1 удаляет строку)",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"type": "integer", "description": "ID товара", "name": "productId", "in": "path", "required": true},
                    {"description": "Количество", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.QuantityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["carts"],
                "summary": "Удалить товар из корзины",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"type": "integer", "description": "ID товара", "name": "productId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CartResponse"}}
                }
            }
        },
        "/wishlists/{owner}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wishlists"],
                "summary": "Избранное",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.WishlistResponse"}}
                }
            }
        },
        "/wishlists/{owner}/items/{productId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["wishlists"],
                "summary": "Добавить в избранное или убрать из него",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"type": "integer", "description": "ID товара", "name": "productId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ToggleWishlistResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Настройки магазина",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SettingsResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Частичное обновление настроек",
                "parameters": [
                    {"description": "Изменяемые поля", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.UpdateSettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SettingsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/addresses/{owner}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["addresses"],
                "summary": "Адреса покупателя",
                "parameters": [{"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AddressesResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["addresses"],
                "summary": "Добавить адрес (первый становится адресом по умолчанию)",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"description": "Адрес", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AddressRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.SavedAddressDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/addresses/{owner}/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["addresses"],
                "summary": "Изменить адрес",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "ID адреса", "name": "id", "in": "path", "required": true},
                    {"description": "Адрес", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AddressRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SavedAddressDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["addresses"],
                "summary": "Удалить адрес",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "ID адреса", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AddressesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/addresses/{owner}/{id}/default": {
            "put": {
                "produces": ["application/json"],
                "tags": ["addresses"],
                "summary": "Сделать адрес адресом по умолчанию",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "ID адреса", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.AddressesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/coupons": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["coupons"],
                "summary": "Создать купон или перезаписать купон с тем же кодом",
                "parameters": [{"description": "Купон", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CreateCouponRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CouponDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/coupons/apply": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["coupons"],
                "summary": "Применить купон к корзине без оформления заказа",
                "parameters": [{"description": "Покупатель и код", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ApplyCouponRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ApplyCouponResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{owner}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Заказы покупателя, новые первыми",
                "parameters": [{"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrdersResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Оформить заказ",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"description": "Позиции, адрес, оплата и купон", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.PlaceOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.OrderDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{owner}/{orderId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Заказ покупателя",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"type": "integer", "description": "ID заказа", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{owner}/{orderId}/cancel": {
            "post": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Отменить заказ (только Pending или Processing)",
                "parameters": [
                    {"type": "string", "description": "Владелец", "name": "owner", "in": "path", "required": true},
                    {"type": "integer", "description": "ID заказа", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/admin/orders/{orderId}/status": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Сменить статус заказа",
                "parameters": [
                    {"type": "integer", "description": "ID заказа", "name": "orderId", "in": "path", "required": true},
                    {"description": "Новый статус", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.UpdateOrderStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "integer"}, "message": {"type": "string"}}
        },
        "http.TierDTO": {
            "type": "object",
            "properties": {"minQty": {"type": "integer"}, "discountPercent": {"type": "number"}}
        },
        "http.SetDiscountsRequest": {
            "type": "object",
            "properties": {"tiers": {"type": "array", "items": {"$ref": "#/definitions/http.TierDTO"}}}
        },
        "http.RegisterProductResponse": {
            "type": "object",
            "properties": {"productId": {"type": "integer"}, "eventId": {"type": "string"}, "changed": {"type": "boolean"}}
        },
        "http.ProductDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "price": {"type": "string"},
                "priceCents": {"type": "integer"},
                "stock": {"type": "integer"},
                "quantityDiscounts": {"type": "array", "items": {"$ref": "#/definitions/http.TierDTO"}}
            }
        },
        "http.ProductsResponse": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/http.ProductDTO"}},
                "notFoundProducts": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "http.PricingDTO": {
            "type": "object",
            "properties": {
                "originalPrice": {"type": "string"},
                "unitPrice": {"type": "string"},
                "totalPrice": {"type": "string"},
                "hasDiscount": {"type": "boolean"},
                "discountPercent": {"type": "string"},
                "tiers": {"type": "array", "items": {"$ref": "#/definitions/http.TierDTO"}}
            }
        },
        "http.PriceResponse": {
            "type": "object",
            "properties": {
                "productId": {"type": "integer"},
                "quantity": {"type": "integer"},
                "product": {"$ref": "#/definitions/http.ProductDTO"},
                "pricing": {"$ref": "#/definitions/http.PricingDTO"}
            }
        },
        "http.QuoteItemDTO": {
            "type": "object",
            "properties": {"productId": {"type": "integer"}, "quantity": {"type": "integer"}}
        },
        "http.QuoteRequest": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/http.QuoteItemDTO"}}}
        },
        "http.LineDTO": {
            "type": "object",
            "properties": {
                "product": {"$ref": "#/definitions/http.ProductDTO"},
                "quantity": {"type": "integer"},
                "pricing": {"$ref": "#/definitions/http.PricingDTO"}
            }
        },
        "http.QuoteResponse": {
            "type": "object",
            "properties": {
                "lines": {"type": "array", "items": {"$ref": "#/definitions/http.LineDTO"}},
                "subtotal": {"type": "string"},
                "itemCount": {"type": "integer"},
                "notFoundProducts": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "http.CartItemRequest": {
            "type": "object",
            "properties": {"productId": {"type": "integer"}, "quantity": {"type": "integer"}}
        },
        "http.QuantityRequest": {
            "type": "object",
            "properties": {"quantity": {"type": "integer"}}
        },
        "http.CartResponse": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/http.LineDTO"}},
                "cartTotal": {"type": "string"},
                "cartCount": {"type": "integer"},
                "notFoundProducts": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "http.WishlistItemDTO": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "string"}, "category": {"type": "string"}}
        },
        "http.WishlistResponse": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.WishlistItemDTO"}}
            }
        },
        "http.ToggleWishlistResponse": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.WishlistItemDTO"}},
                "inWishlist": {"type": "boolean"}
            }
        },
        "http.NotificationsDTO": {
            "type": "object",
            "properties": {"newOrder": {"type": "boolean"}, "lowStock": {"type": "boolean"}, "dailyReport": {"type": "boolean"}}
        },
        "http.SettingsResponse": {
            "type": "object",
            "properties": {
                "storeName": {"type": "string"},
                "storeDescription": {"type": "string"},
                "enableEmailNotifications": {"type": "boolean"},
                "notifications": {"$ref": "#/definitions/http.NotificationsDTO"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "http.UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "storeName": {"type": "string"},
                "storeDescription": {"type": "string"},
                "enableEmailNotifications": {"type": "boolean"},
                "notifications": {"$ref": "#/definitions/http.NotificationsDTO"}
            }
        },
        "http.AddressDTO": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "zipCode": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "http.AddressRequest": {
            "type": "object",
            "required": ["fullName", "address", "city", "phone"],
            "properties": {
                "fullName": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "zipCode": {"type": "string"},
                "phone": {"type": "string"},
                "isDefault": {"type": "boolean"}
            }
        },
        "http.SavedAddressDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fullName": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "zipCode": {"type": "string"},
                "phone": {"type": "string"},
                "isDefault": {"type": "boolean"}
            }
        },
        "http.AddressesResponse": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "addresses": {"type": "array", "items": {"$ref": "#/definitions/http.SavedAddressDTO"}}
            }
        },
        "http.CreateCouponRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "kind": {"type": "string", "enum": ["percent", "fixed"]},
                "value": {"type": "string"},
                "minSubtotal": {"type": "string"},
                "active": {"type": "boolean"},
                "expiresAt": {"type": "string"}
            }
        },
        "http.CouponDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "kind": {"type": "string"},
                "value": {"type": "string"},
                "minSubtotal": {"type": "string"},
                "active": {"type": "boolean"},
                "expiresAt": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "http.ApplyCouponRequest": {
            "type": "object",
            "properties": {"owner": {"type": "string"}, "code": {"type": "string"}}
        },
        "http.ApplyCouponResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "cartTotal": {"type": "string"},
                "discount": {"type": "string"},
                "finalTotal": {"type": "string"}
            }
        },
        "http.PlaceOrderRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.QuoteItemDTO"}},
                "addressId": {"type": "string"},
                "shippingAddress": {"$ref": "#/definitions/http.AddressDTO"},
                "paymentMethod": {"type": "string", "enum": ["COD", "card"]},
                "couponCode": {"type": "string"}
            }
        },
        "http.UpdateOrderStatusRequest": {
            "type": "object",
            "properties": {"status": {"type": "string", "enum": ["Pending", "Processing", "Shipped", "Delivered", "Cancelled"]}}
        },
        "http.OrderItemDTO": {
            "type": "object",
            "properties": {
                "productId": {"type": "integer"},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "unitPrice": {"type": "string"},
                "totalPrice": {"type": "string"},
                "discountPercent": {"type": "string"}
            }
        },
        "http.OrderDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "owner": {"type": "string"},
                "status": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.OrderItemDTO"}},
                "shippingAddress": {"$ref": "#/definitions/http.AddressDTO"},
                "paymentMethod": {"type": "string"},
                "couponCode": {"type": "string"},
                "subTotal": {"type": "string"},
                "discount": {"type": "string"},
                "total": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "http.OrdersResponse": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "orders": {"type": "array", "items": {"$ref": "#/definitions/http.OrderDTO"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront Pricing API",
	Description:      "Каталог, оптовые скидки, расчёт цен, корзина, адреса, купоны, заказы и настройки магазина.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
