package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// personHandler handles HTTP requests related to persons.
type personHandler struct {
	personService portssvc.PersonSvcFacade
}

// newPersonHandler creates a new personHandler.
func newPersonHandler(ps portssvc.PersonSvcFacade) *personHandler {
	return &personHandler{personService: ps}
}

// registerPersonRoutes registers routes related to persons.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade) {
	h := newPersonHandler(personService)

	persons := rg.Group("/persons")
	{
		persons.GET("", h.listPersons)
		persons.POST("", h.createPerson)
		persons.GET("/statistics", h.getPersonStatistics)
		persons.GET("/:id", h.getPerson)
		persons.PUT("/:id", h.updatePerson)
		persons.DELETE("/:id", h.deletePerson)
	}
}

// listPersons godoc
// @Summary List persons
// @Description Lists all persons that are not hidden
// @Tags persons
// @Produce json
// @Success 200 {array} dto.PersonResponse
// @Failure 500 {object} map[string]string "Failed to list persons"
// @Router /persons [get]
func (h *personHandler) listPersons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	persons, err := h.personService.ListPersons(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list persons")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPersonResponse(persons))
}

// createPerson godoc
// @Summary Create a person
// @Tags persons
// @Accept json
// @Produce json
// @Param person body dto.PersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} ValidationProblem
// @Failure 500 {object} map[string]string "Failed to create person"
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePerson", slog.String("error", err.Error()))
		handleBindError(c, err)
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create person")
		return
	}

	c.Header("Location", fmt.Sprintf("/api/persons/%d", person.PersonID))
	c.JSON(http.StatusCreated, dto.ToPersonResponse(person))
}

// getPerson godoc
// @Summary Get a person by ID
// @Description Returns the person even when it is hidden
// @Tags persons
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 "Person not found"
// @Router /persons/{id} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	person, err := h.personService.GetPersonByID(c.Request.Context(), personID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve person")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// updatePerson godoc
// @Summary Update a person
// @Description Hides the person and stores the new details as a new person with the original identification number
// @Tags persons
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Param person body dto.PersonRequest true "Person details"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} ValidationProblem
// @Failure 404 "Person not found"
// @Failure 409 {object} map[string]string "Person already superseded"
// @Router /persons/{id} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePerson", slog.String("error", err.Error()))
		handleBindError(c, err)
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), personID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update person")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// deletePerson godoc
// @Summary Delete a person
// @Description Hides the person. Deleting a hidden person succeeds.
// @Tags persons
// @Param id path int true "Person ID"
// @Success 204
// @Failure 404 "Person not found"
// @Router /persons/{id} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.personService.DeletePerson(c.Request.Context(), personID); err != nil {
		respondWithError(c, logger, err, "Failed to delete person")
		return
	}
	c.Status(http.StatusNoContent)
}

// getPersonStatistics godoc
// @Summary Revenue per person
// @Tags persons
// @Produce json
// @Success 200 {array} dto.PersonStatisticResponse
// @Router /persons/statistics [get]
func (h *personHandler) getPersonStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.personService.GetPersonStatistics(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute person statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPersonStatisticResponse(stats))
}
