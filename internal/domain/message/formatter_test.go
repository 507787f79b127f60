package message

import (
	"strings"
	"testing"

	"fabar_drinks/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2024-03-07":   "07/03/2024",
		"2024-12-20":   "20/12/2024",
		"1999-01-31":   "31/01/1999",
		"":             "",
		"2024-12":      "undefined/12/2024",
		"20241220":     "undefined/undefined/20241220",
		"2024-12-20-1": "20/12/2024",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDate(in), in)
	}
}

func anaSilva() entities.QuoteRequest {
	return entities.QuoteRequest{
		FullName:         "Ana Silva",
		WhatsApp:         "61999998888",
		EventType:        entities.EventTypeCasamento,
		BeverageTypes:    []string{entities.BeverageVinho},
		Date:             "2024-12-20",
		Time:             "19:00",
		Location:         "Salão Jardim",
		GuestCount:       "80",
		Services:         []string{entities.ServiceBarCompleto},
		DrinkPreferences: "Clássicos",
		Customization:    "",
		PaymentMethod:    entities.PaymentMethodPIX,
	}
}

func TestFormat_FullMessage(t *testing.T) {
	want := `*SOLICITAÇÃO DE ORÇAMENTO - FABARDRINKS*

*DADOS PESSOAIS:*
Nome: Ana Silva
WhatsApp: 61999998888

*DETALHES DO EVENTO:*
Tipo: Casamento
Data: 20/12/2024
Horário: 19:00
Local: Salão Jardim
Número de convidados: 80

*BEBIDAS:*
Tipos selecionados: Vinho

*SERVIÇOS:*
- Bar completo (mão de obra + bebidas + estrutura + insumos)

*PREFERÊNCIAS DE DRINKS:*
Clássicos

*PERSONALIZAÇÃO:*
Nenhuma personalização solicitada

*FORMA DE PAGAMENTO:*
PIX

Aguardo o orçamento detalhado!`

	assert.Equal(t, want, Format(anaSilva()))
}

func TestFormat_SectionOrder(t *testing.T) {
	msg := Format(anaSilva())
	headers := []string{
		"*SOLICITAÇÃO DE ORÇAMENTO - FABARDRINKS*",
		"*DADOS PESSOAIS:*",
		"*DETALHES DO EVENTO:*",
		"*BEBIDAS:*",
		"*SERVIÇOS:*",
		"*PREFERÊNCIAS DE DRINKS:*",
		"*PERSONALIZAÇÃO:*",
		"*FORMA DE PAGAMENTO:*",
	}
	last := -1
	for _, h := range headers {
		i := strings.Index(msg, h)
		require.GreaterOrEqual(t, i, 0, h)
		assert.Greater(t, i, last, h)
		last = i
	}
}

func TestFormat_Placeholders(t *testing.T) {
	q := anaSilva()
	q.BeverageTypes = nil
	q.Services = nil
	q.Customization = "Tema tropical"

	msg := Format(q)
	assert.Contains(t, msg, "Tipos selecionados: Nenhum selecionado\n")
	assert.Contains(t, msg, "*SERVIÇOS:*\n\n\n*PREFERÊNCIAS DE DRINKS:*")
	assert.Contains(t, msg, "*PERSONALIZAÇÃO:*\nTema tropical\n")
	assert.NotContains(t, msg, NoCustomizationPlaceholder)
}

func TestFormat_ListsKeepSelectionOrder(t *testing.T) {
	q := anaSilva()
	q.BeverageTypes = []string{entities.BeverageEspumante, entities.BeverageCerveja}
	q.Services = []string{entities.ServiceApenasEstrutura, entities.ServiceApenasMaoDeObra}

	msg := Format(q)
	assert.Contains(t, msg, "Tipos selecionados: Espumante, Cerveja\n")
	assert.Contains(t, msg, "- "+entities.ServiceApenasEstrutura+"\n- "+entities.ServiceApenasMaoDeObra+"\n")
}

func TestFormat_ValuesVerbatim(t *testing.T) {
	q := anaSilva()
	q.FullName = "  Ana  "
	q.Customization = "linha 1\nlinha 2"

	msg := Format(q)
	assert.Contains(t, msg, "Nome:   Ana  \n")
	assert.Contains(t, msg, "linha 1\nlinha 2\n")
}
