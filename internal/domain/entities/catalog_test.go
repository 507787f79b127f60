package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.EventTypes, 9)
	assert.Len(t, c.BeverageTypes, 4)
	assert.Len(t, c.Services, 3)
	assert.Equal(t, []string{"PIX", "Cartão com taxa da maquininha"}, c.PaymentMethods)

	c.EventTypes[0] = "changed"
	assert.Equal(t, EventTypeCasamento, DefaultCatalog().EventTypes[0])
}

func TestCatalogMembership(t *testing.T) {
	assert.True(t, IsEventType("Chá de bebê"))
	assert.False(t, IsEventType("Cha de bebe"))
	assert.True(t, IsBeverageType(BeverageEspumante))
	assert.True(t, IsService(ServiceApenasMaoDeObra))
	assert.False(t, IsService("Bar completo"))
	assert.True(t, IsPaymentMethod(PaymentMethodPIX))
	assert.False(t, IsPaymentMethod(""))
}
