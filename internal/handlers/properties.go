// properties.go
//
// A scalable, high performance drop-in replacement for the realty-dash nodejs data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of realtydash.
// realtydash is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// realtydash is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with realtydash.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/realtydash/internal/models"
	"github.com/localnerve/realtydash/internal/store"
	"github.com/localnerve/realtydash/internal/utils"
	"github.com/localnerve/realtydash/internal/validation"
)

// PropertyHandler handles property listing routes
type PropertyHandler struct {
	Store *store.Store
}

// GetProperties handles GET /api/properties
// @Summary List properties
// @Description Get all property listings
// @Tags Properties
// @Produce json
// @Success 200 {array} models.Property
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [get]
func (h *PropertyHandler) GetProperties(c *fiber.Ctx) error {
	properties := h.Store.AllProperties()

	if err := c.Status(fiber.StatusOK).JSON(properties); err != nil {
		return internalError("Failed to fetch properties", "getProperties")
	}
	return nil
}

// CreateProperty handles POST /api/properties
// @Summary Create property
// @Description Create a property listing; id, createdAt and pricePerSqft are assigned by the server
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body models.InsertProperty true "Property to create"
// @Success 201 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	insert, violations := validation.ValidateInsertProperty(c.Body())
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, "Invalid property data", violations)
	}

	property := h.Store.CreateProperty(insert)

	if err := c.Status(fiber.StatusCreated).JSON(property); err != nil {
		return internalError("Failed to create property", "createProperty")
	}
	return nil
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Update property
// @Description Apply a partial update to a property; pricePerSqft is never recomputed
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param body body models.PropertyUpdate true "Fields to update"
// @Success 200 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return notFound("Property not found", "updateProperty")
	}

	var updates models.PropertyUpdate
	if err := json.Unmarshal(c.Body(), &updates); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest)
	}

	property, ok := h.Store.UpdateProperty(id, updates)
	if !ok {
		return notFound("Property not found", "updateProperty")
	}

	if err := c.Status(fiber.StatusOK).JSON(property); err != nil {
		return internalError("Failed to update property", "updateProperty")
	}
	return nil
}

// DeleteProperty handles DELETE /api/properties/:id
// @Summary Delete property
// @Description Delete a property listing
// @Tags Properties
// @Param id path int true "Property ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return notFound("Property not found", "deleteProperty")
	}

	if !h.Store.DeleteProperty(id) {
		return notFound("Property not found", "deleteProperty")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
