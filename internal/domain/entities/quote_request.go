package entities

import (
	"errors"
	"slices"
)

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrNotScalarField = errors.New("field is not a scalar field")
	ErrNotSetField    = errors.New("field is not a multi-select field")
	ErrNotChoiceField = errors.New("field is not a single-choice field")
)

// Field names as posted by the form and used by the JSON API.
const (
	FieldFullName         = "fullName"
	FieldWhatsApp         = "whatsapp"
	FieldEventType        = "eventType"
	FieldBeverageTypes    = "beverageTypes"
	FieldDate             = "date"
	FieldTime             = "time"
	FieldLocation         = "location"
	FieldGuestCount       = "guestCount"
	FieldServices         = "services"
	FieldDrinkPreferences = "drinkPreferences"
	FieldCustomization    = "customization"
	FieldPaymentMethod    = "paymentMethod"
)

// QuoteRequest is the event quote request (orçamento) collected by the form.
//
// Date is kept as the raw YYYY-MM-DD text and Time as HH:MM, exactly as the
// browser date/time inputs send them. GuestCount stays text for the same reason.
// BeverageTypes and Services keep selection order.
//
// All mutators use value receivers and return a new record; set slices are
// never shared between the old and the new value.
type QuoteRequest struct {
	FullName         string   `json:"fullName"`
	WhatsApp         string   `json:"whatsapp"`
	EventType        string   `json:"eventType"`
	BeverageTypes    []string `json:"beverageTypes"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Location         string   `json:"location"`
	GuestCount       string   `json:"guestCount"`
	Services         []string `json:"services"`
	DrinkPreferences string   `json:"drinkPreferences"`
	Customization    string   `json:"customization"`
	PaymentMethod    string   `json:"paymentMethod"`
}

// NewQuoteRequest returns the empty record a visit starts with.
func NewQuoteRequest() QuoteRequest {
	return QuoteRequest{
		BeverageTypes: []string{},
		Services:      []string{},
	}
}

// SetField replaces the named scalar field.
func (q QuoteRequest) SetField(name, value string) (QuoteRequest, error) {
	out := q.Clone()
	ptr, err := out.scalar(name)
	if err != nil {
		return q, err
	}
	*ptr = value
	return out, nil
}

// ToggleSetMember removes value from the named set when present, otherwise
// appends it. The relative order of the remaining members is preserved.
func (q QuoteRequest) ToggleSetMember(name, value string) (QuoteRequest, error) {
	out := q.Clone()
	ptr, err := out.set(name)
	if err != nil {
		return q, err
	}
	if i := slices.Index(*ptr, value); i >= 0 {
		*ptr = slices.Delete(*ptr, i, i+1)
	} else {
		*ptr = append(*ptr, value)
	}
	return out, nil
}

// SelectSingle sets an exclusive-choice field. There is no way back to empty.
func (q QuoteRequest) SelectSingle(name, value string) (QuoteRequest, error) {
	if name != FieldPaymentMethod {
		if _, err := q.lookup(name); err != nil {
			return q, err
		}
		return q, ErrNotChoiceField
	}
	out := q.Clone()
	out.PaymentMethod = value
	return out, nil
}

// Clone returns a deep copy of the record.
func (q QuoteRequest) Clone() QuoteRequest {
	out := q
	out.BeverageTypes = cloneSet(q.BeverageTypes)
	out.Services = cloneSet(q.Services)
	return out
}

type fieldKind int

const (
	fieldKindScalar fieldKind = iota
	fieldKindSet
	fieldKindChoice
)

var fieldKinds = map[string]fieldKind{
	FieldFullName:         fieldKindScalar,
	FieldWhatsApp:         fieldKindScalar,
	FieldEventType:        fieldKindScalar,
	FieldBeverageTypes:    fieldKindSet,
	FieldDate:             fieldKindScalar,
	FieldTime:             fieldKindScalar,
	FieldLocation:         fieldKindScalar,
	FieldGuestCount:       fieldKindScalar,
	FieldServices:         fieldKindSet,
	FieldDrinkPreferences: fieldKindScalar,
	FieldCustomization:    fieldKindScalar,
	FieldPaymentMethod:    fieldKindChoice,
}

func (q QuoteRequest) lookup(name string) (fieldKind, error) {
	kind, ok := fieldKinds[name]
	if !ok {
		return 0, ErrUnknownField
	}
	return kind, nil
}

// scalar resolves scalar and choice fields; the payment method is a plain
// string too, so SetField may write it like any other text input.
func (q *QuoteRequest) scalar(name string) (*string, error) {
	switch name {
	case FieldFullName:
		return &q.FullName, nil
	case FieldWhatsApp:
		return &q.WhatsApp, nil
	case FieldEventType:
		return &q.EventType, nil
	case FieldDate:
		return &q.Date, nil
	case FieldTime:
		return &q.Time, nil
	case FieldLocation:
		return &q.Location, nil
	case FieldGuestCount:
		return &q.GuestCount, nil
	case FieldDrinkPreferences:
		return &q.DrinkPreferences, nil
	case FieldCustomization:
		return &q.Customization, nil
	case FieldPaymentMethod:
		return &q.PaymentMethod, nil
	case FieldBeverageTypes, FieldServices:
		return nil, ErrNotScalarField
	}
	return nil, ErrUnknownField
}

func (q *QuoteRequest) set(name string) (*[]string, error) {
	switch name {
	case FieldBeverageTypes:
		return &q.BeverageTypes, nil
	case FieldServices:
		return &q.Services, nil
	}
	if _, err := q.lookup(name); err != nil {
		return nil, err
	}
	return nil, ErrNotSetField
}

func cloneSet(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
