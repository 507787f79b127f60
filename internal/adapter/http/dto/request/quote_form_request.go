package request

import (
	"slices"

	"fabar_drinks/internal/domain/entities"
)

// QuoteFormRequest is the whole form as posted by the HTML page or sent to
// the preview endpoint. Binding tags mirror the browser markers of the page:
// presence only, plus the closed lists and the guest minimum. Checkbox
// values must come from the catalog.
type QuoteFormRequest struct {
	FullName         string   `json:"fullName" form:"fullName" binding:"required"`
	WhatsApp         string   `json:"whatsapp" form:"whatsapp" binding:"required"`
	EventType        string   `json:"eventType" form:"eventType" binding:"required,event_type"`
	BeverageTypes    []string `json:"beverageTypes" form:"beverageTypes" binding:"dive,beverage_type"`
	Date             string   `json:"date" form:"date" binding:"required"`
	Time             string   `json:"time" form:"time" binding:"required"`
	Location         string   `json:"location" form:"location" binding:"required"`
	GuestCount       string   `json:"guestCount" form:"guestCount" binding:"required,guest_count"`
	Services         []string `json:"services" form:"services" binding:"dive,service"`
	DrinkPreferences string   `json:"drinkPreferences" form:"drinkPreferences" binding:"required"`
	Customization    string   `json:"customization" form:"customization"`
	PaymentMethod    string   `json:"paymentMethod" form:"paymentMethod" binding:"required,payment_method"`
}

// ToQuoteRequest converts the payload into the domain record. Repeated set
// values collapse to their first occurrence.
func (r QuoteFormRequest) ToQuoteRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		FullName:         r.FullName,
		WhatsApp:         r.WhatsApp,
		EventType:        r.EventType,
		BeverageTypes:    uniqueInOrder(r.BeverageTypes),
		Date:             r.Date,
		Time:             r.Time,
		Location:         r.Location,
		GuestCount:       r.GuestCount,
		Services:         uniqueInOrder(r.Services),
		DrinkPreferences: r.DrinkPreferences,
		Customization:    r.Customization,
		PaymentMethod:    r.PaymentMethod,
	}
}

// FromQuoteRequest is used to run the same presence checks on a stored draft
// before it is submitted through the JSON API.
func FromQuoteRequest(q entities.QuoteRequest) QuoteFormRequest {
	return QuoteFormRequest{
		FullName:         q.FullName,
		WhatsApp:         q.WhatsApp,
		EventType:        q.EventType,
		BeverageTypes:    q.BeverageTypes,
		Date:             q.Date,
		Time:             q.Time,
		Location:         q.Location,
		GuestCount:       q.GuestCount,
		Services:         q.Services,
		DrinkPreferences: q.DrinkPreferences,
		Customization:    q.Customization,
		PaymentMethod:    q.PaymentMethod,
	}
}

// FieldValueRequest carries one value for a field-level edit. An empty value
// is allowed for SetField: it clears the input.
type FieldValueRequest struct {
	Value string `json:"value"`
}

// MemberRequest carries the checkbox or radio value being toggled/selected.
type MemberRequest struct {
	Value string `json:"value" binding:"required"`
}

func uniqueInOrder(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
