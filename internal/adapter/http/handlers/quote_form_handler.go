package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "fabar_drinks/internal/adapter/http/dto/request"
	response "fabar_drinks/internal/adapter/http/dto/response"
	"fabar_drinks/internal/adapter/persistence/repository"
	"fabar_drinks/internal/domain/entities"
	"fabar_drinks/internal/usecase"
	"fabar_drinks/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// QuoteFormHandler exposes the quote form container over JSON.
type QuoteFormHandler struct {
	usecase usecase.IQuoteFormUseCase
	phone   string
	log     *zap.Logger
}

func NewQuoteFormHandler(uc usecase.IQuoteFormUseCase, phone string, log *zap.Logger) *QuoteFormHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteFormHandler{usecase: uc, phone: phone, log: log}
}

// GetOptions godoc
// @Summary      Option lists
// @Description  Event types, beverages, services and payment methods in display order
// @Tags         quote-form
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /quote-form/options [get]
func (h *QuoteFormHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(entities.DefaultCatalog(), h.phone))
}

// Preview godoc
// @Summary      Format a quote request
// @Description  Returns the message and WhatsApp link for a full record without storing anything
// @Tags         quote-form
// @Accept       json
// @Produce      json
// @Param        request  body      request.QuoteFormRequest  true  "Quote request"
// @Success      200      {object}  response.SubmissionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /quote-form/preview [post]
func (h *QuoteFormHandler) Preview(c *gin.Context) {
	var payload request.QuoteFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(h.usecase.Preview(payload.ToQuoteRequest())))
}

// StartSession godoc
// @Summary      Start a draft
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *QuoteFormHandler) StartSession(c *gin.Context) {
	s, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// GetSession godoc
// @Summary      Get a draft
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [get]
func (h *QuoteFormHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SetField godoc
// @Summary      Set a text field
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Session ID"
// @Param        field    path      string                     true  "Field name"
// @Param        request  body      request.FieldValueRequest  true  "Value"
// @Success      200      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /sessions/{id}/fields/{field} [put]
func (h *QuoteFormHandler) SetField(c *gin.Context) {
	var payload request.FieldValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	s, err := h.usecase.SetField(c.Request.Context(), c.Param("id"), c.Param("field"), payload.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// ToggleSetMember godoc
// @Summary      Toggle a checkbox value
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Session ID"
// @Param        field    path      string                 true  "beverageTypes or services"
// @Param        request  body      request.MemberRequest  true  "Value"
// @Success      200      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /sessions/{id}/sets/{field}/toggle [post]
func (h *QuoteFormHandler) ToggleSetMember(c *gin.Context) {
	var payload request.MemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	s, err := h.usecase.ToggleSetMember(c.Request.Context(), c.Param("id"), c.Param("field"), payload.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SelectSingle godoc
// @Summary      Select a radio value
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Session ID"
// @Param        field    path      string                 true  "paymentMethod"
// @Param        request  body      request.MemberRequest  true  "Value"
// @Success      200      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /sessions/{id}/choices/{field} [put]
func (h *QuoteFormHandler) SelectSingle(c *gin.Context) {
	var payload request.MemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	s, err := h.usecase.SelectSingle(c.Request.Context(), c.Param("id"), c.Param("field"), payload.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Submit godoc
// @Summary      Submit a draft
// @Description  Checks required fields, formats the message once and returns the WhatsApp link
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SubmissionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/submit [post]
func (h *QuoteFormHandler) Submit(c *gin.Context) {
	sub, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), requireComplete)
	if err != nil {
		h.log.Debug("submit rejected", zap.String("session_id", c.Param("id")), zap.Error(err))
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(sub))
}

// requireComplete applies the form's binding rules to a stored record.
func requireComplete(q entities.QuoteRequest) error {
	if err := binding.Validator.ValidateStruct(request.FromQuoteRequest(q)); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrIncompleteForm, err)
	}
	return nil
}

// Restart godoc
// @Summary      Back to the form
// @Description  Returns to the editable view; field values are kept
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id}/restart [post]
func (h *QuoteFormHandler) Restart(c *gin.Context) {
	s, err := h.usecase.Restart(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *QuoteFormHandler) fail(c *gin.Context, err error) {
	appErr := mapQuoteFormError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteFormError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteForm):
		return pkg.NewDomainError("INVALID_REQUEST", "Required fields are missing", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownField),
		errors.Is(err, entities.ErrNotScalarField),
		errors.Is(err, entities.ErrNotSetField),
		errors.Is(err, entities.ErrNotChoiceField):
		return pkg.NewDomainError("INVALID_FIELD", "Invalid field for this operation", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrDraftConflict), errors.Is(err, repository.ErrDraftAlreadyExists):
		return pkg.NewDomainErrorSimple("DRAFT_CONFLICT", "Session was modified concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
