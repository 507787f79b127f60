package web

import (
	"bytes"
	"strings"
	"testing"

	"fabar_drinks/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_RenderForm(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	form := entities.NewQuoteRequest()
	form.FullName = "Ana <Silva>"
	form.EventType = entities.EventTypeGospel
	form.BeverageTypes = []string{entities.BeverageVinho}
	form.PaymentMethod = entities.PaymentMethodPIX

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "form.html", NewPage(form)))
	html := buf.String()

	assert.Contains(t, html, `value="Ana &lt;Silva&gt;"`)
	assert.Contains(t, html, `<option value="Gospel" selected>`)
	assert.Contains(t, html, `value="Vinho" checked`)
	assert.NotContains(t, html, `value="Cerveja" checked`)
	assert.Contains(t, html, `value="PIX" checked`)
	assert.Contains(t, html, `min="1"`)
	assert.Contains(t, html, BackgroundVideoURL)
	assert.Contains(t, html, "this.parentElement.style.display=")
	assert.Contains(t, html, "Enviar via WhatsApp")
	assert.Contains(t, html, "Aguardo seu retorno.")
}

func TestTemplates_RenderFormError(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	page := NewPage(entities.NewQuoteRequest())
	page.Error = "Preencha os campos obrigatórios."

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "form.html", page))
	assert.Contains(t, buf.String(), `<div class="error">Preencha os campos obrigatórios.</div>`)
}

func TestTemplates_RenderConfirmation(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	page := NewPage(entities.NewQuoteRequest())
	page.Link = "https://api.whatsapp.com/send?phone=556191362933&text=oi%20tudo"

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "confirmation.html", page))
	html := buf.String()

	assert.Contains(t, html, "Redirecionado para WhatsApp!")
	assert.Contains(t, html, "Nova Solicitação")
	assert.Contains(t, html, "Abrir o WhatsApp")
	assert.NotContains(t, html, "window.open(")
}

func TestTemplates_FormOpensTabDuringClick(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "form.html", NewPage(entities.NewQuoteRequest())))
	html := buf.String()

	assert.Contains(t, html, `<form id="quote-form" method="post" action="/solicitacao">`)
	assert.Contains(t, html, "window.open('', '_blank')")
	assert.Contains(t, html, "'Accept': 'application/json'")
	assert.Contains(t, html, "data.whatsapp_url")
	// the blank tab is opened before the request goes out
	assert.Less(t, strings.Index(html, "window.open('', '_blank')"), strings.Index(html, "fetch(form.action"))
}
