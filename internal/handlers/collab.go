// collab.go
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
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/realtydash/internal/store"
	"github.com/localnerve/realtydash/internal/utils"
	"github.com/localnerve/realtydash/internal/validation"
)

// CollabHandler handles the team collaboration routes: activity feed, shared
// documents, and comments. All three join their referencing user at read time
// and silently drop rows whose user id no longer resolves.
type CollabHandler struct {
	Store *store.Store
}

// GetTeamActivity handles GET /api/team-activity
// @Summary List team activity
// @Description Get the activity feed joined with each entry's user
// @Tags Collab
// @Produce json
// @Success 200 {array} models.TeamActivityWithUser
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /team-activity [get]
func (h *CollabHandler) GetTeamActivity(c *fiber.Ctx) error {
	activities := h.Store.AllTeamActivity()

	if err := c.Status(fiber.StatusOK).JSON(activities); err != nil {
		return internalError("Failed to fetch team activity", "getTeamActivity")
	}
	return nil
}

// CreateTeamActivity handles POST /api/team-activity
// @Summary Create team activity
// @Description Append an entry to the activity feed
// @Tags Collab
// @Accept json
// @Produce json
// @Param body body models.InsertTeamActivity true "Activity to create"
// @Success 201 {object} models.TeamActivity
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /team-activity [post]
func (h *CollabHandler) CreateTeamActivity(c *fiber.Ctx) error {
	insert, violations := validation.ValidateInsertTeamActivity(c.Body())
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, "Invalid activity data", violations)
	}

	activity := h.Store.CreateTeamActivity(insert)

	if err := c.Status(fiber.StatusCreated).JSON(activity); err != nil {
		return internalError("Failed to create activity", "createTeamActivity")
	}
	return nil
}

// GetDocuments handles GET /api/documents
// @Summary List documents
// @Description Get the shared documents joined with each document's sharing user
// @Tags Collab
// @Produce json
// @Success 200 {array} models.DocumentWithUser
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /documents [get]
func (h *CollabHandler) GetDocuments(c *fiber.Ctx) error {
	documents := h.Store.AllDocuments()

	if err := c.Status(fiber.StatusOK).JSON(documents); err != nil {
		return internalError("Failed to fetch documents", "getDocuments")
	}
	return nil
}

// CreateDocument handles POST /api/documents
// @Summary Share document
// @Description Append a shared document
// @Tags Collab
// @Accept json
// @Produce json
// @Param body body models.InsertDocument true "Document to share"
// @Success 201 {object} models.Document
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /documents [post]
func (h *CollabHandler) CreateDocument(c *fiber.Ctx) error {
	insert, violations := validation.ValidateInsertDocument(c.Body())
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, "Invalid document data", violations)
	}

	document := h.Store.CreateDocument(insert)

	if err := c.Status(fiber.StatusCreated).JSON(document); err != nil {
		return internalError("Failed to create document", "createDocument")
	}
	return nil
}

// GetComments handles GET /api/comments
// @Summary List comments
// @Description Get the comments joined with each comment's user
// @Tags Collab
// @Produce json
// @Success 200 {array} models.CommentWithUser
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /comments [get]
func (h *CollabHandler) GetComments(c *fiber.Ctx) error {
	comments := h.Store.AllComments()

	if err := c.Status(fiber.StatusOK).JSON(comments); err != nil {
		return internalError("Failed to fetch comments", "getComments")
	}
	return nil
}

// CreateComment handles POST /api/comments
// @Summary Create comment
// @Description Append a comment
// @Tags Collab
// @Accept json
// @Produce json
// @Param body body models.InsertComment true "Comment to create"
// @Success 201 {object} models.Comment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /comments [post]
func (h *CollabHandler) CreateComment(c *fiber.Ctx) error {
	insert, violations := validation.ValidateInsertComment(c.Body())
	if !violations.Empty() {
		return utils.ValidationErrorResponse(c, "Invalid comment data", violations)
	}

	comment := h.Store.CreateComment(insert)

	if err := c.Status(fiber.StatusCreated).JSON(comment); err != nil {
		return internalError("Failed to create comment", "createComment")
	}
	return nil
}
