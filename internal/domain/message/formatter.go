// Package message turns a quote request into the WhatsApp text sent to the
// FabarDrinks team. Labels are read by people on the other end and must stay
// exactly as they are.
package message

import (
	"strings"

	"fabar_drinks/internal/domain/entities"
)

const (
	NoBeveragePlaceholder      = "Nenhum selecionado"
	NoCustomizationPlaceholder = "Nenhuma personalização solicitada"
)

// missingDatePart stands in for a part a malformed date does not have, the
// same text the web form has always printed for it.
const missingDatePart = "undefined"

// FormatDate rearranges YYYY-MM-DD into DD/MM/YYYY as text. No calendar
// parsing happens, so no timezone can shift the day.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	parts := strings.Split(date, "-")
	part := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return missingDatePart
	}
	return part(2) + "/" + part(1) + "/" + part(0)
}

// Format builds the quote request message.
func Format(q entities.QuoteRequest) string {
	beverages := NoBeveragePlaceholder
	if len(q.BeverageTypes) > 0 {
		beverages = strings.Join(q.BeverageTypes, ", ")
	}

	services := make([]string, 0, len(q.Services))
	for _, s := range q.Services {
		services = append(services, "- "+s)
	}

	customization := q.Customization
	if customization == "" {
		customization = NoCustomizationPlaceholder
	}

	var b strings.Builder
	b.WriteString("*SOLICITAÇÃO DE ORÇAMENTO - FABARDRINKS*\n")
	b.WriteString("\n")
	b.WriteString("*DADOS PESSOAIS:*\n")
	b.WriteString("Nome: " + q.FullName + "\n")
	b.WriteString("WhatsApp: " + q.WhatsApp + "\n")
	b.WriteString("\n")
	b.WriteString("*DETALHES DO EVENTO:*\n")
	b.WriteString("Tipo: " + q.EventType + "\n")
	b.WriteString("Data: " + FormatDate(q.Date) + "\n")
	b.WriteString("Horário: " + q.Time + "\n")
	b.WriteString("Local: " + q.Location + "\n")
	b.WriteString("Número de convidados: " + q.GuestCount + "\n")
	b.WriteString("\n")
	b.WriteString("*BEBIDAS:*\n")
	b.WriteString("Tipos selecionados: " + beverages + "\n")
	b.WriteString("\n")
	b.WriteString("*SERVIÇOS:*\n")
	b.WriteString(strings.Join(services, "\n") + "\n")
	b.WriteString("\n")
	b.WriteString("*PREFERÊNCIAS DE DRINKS:*\n")
	b.WriteString(q.DrinkPreferences + "\n")
	b.WriteString("\n")
	b.WriteString("*PERSONALIZAÇÃO:*\n")
	b.WriteString(customization + "\n")
	b.WriteString("\n")
	b.WriteString("*FORMA DE PAGAMENTO:*\n")
	b.WriteString(q.PaymentMethod + "\n")
	b.WriteString("\n")
	b.WriteString("Aguardo o orçamento detalhado!")
	return b.String()
}
