package handlers

import (
	"errors"
	"net/http"
	"time"

	request "fabar_drinks/internal/adapter/http/dto/request"
	response "fabar_drinks/internal/adapter/http/dto/response"
	"fabar_drinks/internal/domain/entities"
	"fabar_drinks/internal/usecase"
	"fabar_drinks/pkg"
	"fabar_drinks/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgMissingFields = "Preencha todos os campos obrigatórios antes de enviar."

// PageOptions configures the session cookie used by the HTML form.
type PageOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// PageHandler serves the server-rendered form. The visitor's draft is found
// through a cookie; a missing or expired draft silently becomes a new one.
type PageHandler struct {
	usecase usecase.IQuoteFormUseCase
	opts    PageOptions
	log     *zap.Logger
}

func NewPageHandler(uc usecase.IQuoteFormUseCase, opts PageOptions, log *zap.Logger) *PageHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PageHandler{usecase: uc, opts: opts, log: log}
}

// Show renders the form or, after a submit, the confirmation screen.
func (h *PageHandler) Show(c *gin.Context) {
	s, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	page := web.NewPage(s.Form)
	if s.State == entities.ViewStateSubmitted {
		page.Link = h.usecase.Preview(s.Form).Link
		c.HTML(http.StatusOK, "confirmation.html", page)
		return
	}
	c.HTML(http.StatusOK, "form.html", page)
}

// Submit stores the posted form and submits it. The form's script posts with
// Accept: application/json and points the tab it opened during the click at
// the returned link. A plain form post gets the confirmation page, whose
// button opens the link.
func (h *PageHandler) Submit(c *gin.Context) {
	s, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	var payload request.QuoteFormRequest
	if err := c.ShouldBind(&payload); err != nil {
		h.log.Debug("form post rejected", zap.String("session_id", s.ID), zap.Error(err))
		h.incomplete(c, payload.ToQuoteRequest())
		return
	}

	ctx := c.Request.Context()
	if _, err := h.usecase.ReplaceForm(ctx, s.ID, payload.ToQuoteRequest()); err != nil {
		h.fail(c, err)
		return
	}
	sub, err := h.usecase.Submit(ctx, s.ID, requireComplete)
	if errors.Is(err, usecase.ErrIncompleteForm) {
		h.incomplete(c, payload.ToQuoteRequest())
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, response.FromSubmission(sub))
		return
	}
	page := web.NewPage(sub.Session.Form)
	page.Link = sub.Link
	c.HTML(http.StatusOK, "confirmation.html", page)
}

func (h *PageHandler) incomplete(c *gin.Context, form entities.QuoteRequest) {
	if wantsJSON(c) {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", msgMissingFields, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	page := web.NewPage(form)
	page.Error = msgMissingFields
	c.HTML(http.StatusBadRequest, "form.html", page)
}

// Restart goes back to the form with the previous answers filled in.
func (h *PageHandler) Restart(c *gin.Context) {
	s, err := h.session(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if s.State == entities.ViewStateSubmitted {
		if _, err := h.usecase.Restart(c.Request.Context(), s.ID); err != nil {
			h.fail(c, err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) session(c *gin.Context) (entities.Session, error) {
	ctx := c.Request.Context()
	if id, err := c.Cookie(h.opts.CookieName); err == nil {
		s, err := h.usecase.GetSession(ctx, id)
		switch {
		case err == nil:
			h.setCookie(c, s.ID)
			return s, nil
		case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrInvalidSessionID):
		default:
			return entities.Session{}, err
		}
	}

	s, err := h.usecase.StartSession(ctx)
	if err != nil {
		return entities.Session{}, err
	}
	h.setCookie(c, s.ID)
	return s, nil
}

func (h *PageHandler) setCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, id, int(h.opts.TTL.Seconds()), "/", "", h.opts.Secure, true)
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	appErr := mapQuoteFormError(err)
	h.log.Error("page request failed", zap.String("code", appErr.Code), zap.Error(err))
	_ = c.Error(err)
	if wantsJSON(c) {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.String(appErr.HTTPStatus, appErr.Message)
}

// wantsJSON is true for the form script's fetch, which asks for JSON.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
