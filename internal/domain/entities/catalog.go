package entities

import "slices"

// Event types offered by the form.
const (
	EventTypeCasamento        = "Casamento"
	EventTypeAniversario      = "Aniversário"
	EventTypeCorporativo      = "Corporativo"
	EventTypeConfraternizacao = "Confraternização"
	EventTypeFormatura        = "Formatura"
	EventTypeReveillon        = "Réveillon"
	EventTypeFesta15Anos      = "Festa de 15 anos"
	EventTypeChaDeBebe        = "Chá de bebê"
	EventTypeGospel           = "Gospel"
)

const (
	BeverageCerveja   = "Cerveja"
	BeverageWhisky    = "Whisky"
	BeverageVinho     = "Vinho"
	BeverageEspumante = "Espumante"
)

const (
	ServiceBarCompleto     = "Bar completo (mão de obra + bebidas + estrutura + insumos)"
	ServiceApenasMaoDeObra = "Apenas mão de obra (bartenders e utensílios, cliente fornece bebidas)"
	ServiceApenasEstrutura = "Apenas estrutura (bancada de bar, gelo, copos, etc.)"
)

const (
	PaymentMethodPIX           = "PIX"
	PaymentMethodCartaoComTaxa = "Cartão com taxa da maquininha"
)

// Catalog holds the closed option lists in display order.
type Catalog struct {
	EventTypes     []string `json:"event_types"`
	BeverageTypes  []string `json:"beverage_types"`
	Services       []string `json:"services"`
	PaymentMethods []string `json:"payment_methods"`
}

var catalog = Catalog{
	EventTypes: []string{
		EventTypeCasamento,
		EventTypeAniversario,
		EventTypeCorporativo,
		EventTypeConfraternizacao,
		EventTypeFormatura,
		EventTypeReveillon,
		EventTypeFesta15Anos,
		EventTypeChaDeBebe,
		EventTypeGospel,
	},
	BeverageTypes:  []string{BeverageCerveja, BeverageWhisky, BeverageVinho, BeverageEspumante},
	Services:       []string{ServiceBarCompleto, ServiceApenasMaoDeObra, ServiceApenasEstrutura},
	PaymentMethods: []string{PaymentMethodPIX, PaymentMethodCartaoComTaxa},
}

// DefaultCatalog returns a copy of the option lists.
func DefaultCatalog() Catalog {
	return Catalog{
		EventTypes:     cloneSet(catalog.EventTypes),
		BeverageTypes:  cloneSet(catalog.BeverageTypes),
		Services:       cloneSet(catalog.Services),
		PaymentMethods: cloneSet(catalog.PaymentMethods),
	}
}

func IsEventType(v string) bool     { return slices.Contains(catalog.EventTypes, v) }
func IsBeverageType(v string) bool  { return slices.Contains(catalog.BeverageTypes, v) }
func IsService(v string) bool       { return slices.Contains(catalog.Services, v) }
func IsPaymentMethod(v string) bool { return slices.Contains(catalog.PaymentMethods, v) }
