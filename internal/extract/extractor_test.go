package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContractNumberOnly(t *testing.T) {
	e := New(0)

	entities := e.Extract("show contract 123456")

	require.Len(t, entities, 1)
	assert.Equal(t, Entity{AttrContractNumber, OpEquals, "123456"}, entities[AttrContractNumber])
}

func TestExtractContractCode(t *testing.T) {
	e := New(0)

	entities := e.Extract("parts for contract abc-789")

	require.Contains(t, entities, AttrContractNumber)
	assert.Equal(t, "ABC-789", entities[AttrContractNumber].Value)

	// The code belongs to the contract; it must not double as a part number.
	assert.NotContains(t, entities, AttrPartNumber)
}

func TestExtractPartNumber(t *testing.T) {
	e := New(0)

	entities := e.Extract("parts with part number ab-1234")

	require.Contains(t, entities, AttrPartNumber)
	assert.Equal(t, "AB-1234", entities[AttrPartNumber].Value)
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractStandalonePartCode(t *testing.T) {
	e := New(0)

	entities := e.Extract("show pn1234 details")

	require.Contains(t, entities, AttrPartNumber)
	assert.Equal(t, "PN1234", entities[AttrPartNumber].Value)
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractAccountNumber(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts for account 98765432")

	require.Contains(t, entities, AttrAccountNumber)
	assert.Equal(t, "98765432", entities[AttrAccountNumber].Value)

	// Digits after "account" are an account number, not a contract number.
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractCustomerNumber(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts for customer 555123")

	require.Contains(t, entities, AttrCustomerNumber)
	assert.Equal(t, "555123", entities[AttrCustomerNumber].Value)
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractCustomerName(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts for customer acme corp")

	require.Contains(t, entities, AttrCustomerName)
	assert.Equal(t, "Acme Corp", entities[AttrCustomerName].Value)
}

func TestExtractCreatedBy(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts created by john smith")

	require.Contains(t, entities, AttrCreatedBy)
	assert.Equal(t, "John Smith", entities[AttrCreatedBy].Value)
	assert.NotContains(t, entities, AttrCustomerName)
}

func TestExtractCreatedByClaimsSpanBeforeCustomerName(t *testing.T) {
	e := New(0)

	entities := e.Extract("parts created by customer acme")

	require.Contains(t, entities, AttrCreatedBy)
	assert.Equal(t, "Acme", entities[AttrCreatedBy].Value)
	assert.NotContains(t, entities, AttrCustomerName)
}

func TestExtractDateRange(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts effective between 01/01/2024 and 31/12/2024")

	require.Contains(t, entities, AttrEffectiveDate)
	assert.Equal(t, OpBetween, entities[AttrEffectiveDate].Operator)
	assert.Equal(t, "01/01/2024 TO 31/12/2024", entities[AttrEffectiveDate].Value)

	// Year fragments of the date literals are not contract numbers.
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractSingleDateBindsToNearbyAttribute(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts expiring on 15/01/2024")

	require.Contains(t, entities, AttrExpirationDate)
	assert.Equal(t, OpEquals, entities[AttrExpirationDate].Operator)
	assert.Equal(t, "15/01/2024", entities[AttrExpirationDate].Value)
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractThisMonthOperator(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts effective this month")

	require.Contains(t, entities, AttrEffectiveDate)
	assert.Equal(t, OpThisMonth, entities[AttrEffectiveDate].Operator)
	assert.Equal(t, "", entities[AttrEffectiveDate].Value)
}

func TestExtractStatusValue(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts with status active")

	require.Contains(t, entities, AttrStatus)
	assert.Equal(t, Entity{AttrStatus, OpEquals, "active"}, entities[AttrStatus])
}

func TestExtractStatusWithoutValue(t *testing.T) {
	e := New(0)

	entities := e.Extract("status of the contract")

	require.Contains(t, entities, AttrStatus)
	assert.Equal(t, "", entities[AttrStatus].Value)
}

func TestExtractPriceValue(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts with price 5000")

	require.Contains(t, entities, AttrPrice)
	assert.Equal(t, Entity{AttrPrice, OpEquals, "5000"}, entities[AttrPrice])

	// The amount is not a contract number.
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractPriceComparison(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts with price above 5000")

	require.Contains(t, entities, AttrPrice)
	assert.Equal(t, OpGreaterThan, entities[AttrPrice].Operator)
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractNumericRangeBindsToPrice(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts with price between 1000 and 5000")

	require.Contains(t, entities, AttrPrice)
	assert.Equal(t, OpBetween, entities[AttrPrice].Operator)
	assert.Equal(t, "1000 TO 5000", entities[AttrPrice].Value)

	// The range bounds are neither contract numbers nor a date range.
	assert.NotContains(t, entities, AttrContractNumber)
	assert.NotContains(t, entities, AttrDate)
	assert.Len(t, entities, 1)
}

func TestExtractRangeWithoutNumbersIsNotARange(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts between acme and beta")

	assert.Empty(t, entities)
}

func TestExtractCustomerNameStripsPunctuation(t *testing.T) {
	e := New(0)

	entities := e.Extract("contracts for customer acme inc.")

	require.Contains(t, entities, AttrCustomerName)
	assert.Equal(t, "Acme Inc", entities[AttrCustomerName].Value)
}

func TestExtractAcceptsMixedCaseInput(t *testing.T) {
	e := New(0)

	entities := e.Extract("Contracts for customer Acme Corp")

	require.Contains(t, entities, AttrCustomerName)
	assert.Equal(t, "Acme Corp", entities[AttrCustomerName].Value)
	assert.NotContains(t, entities, AttrContractNumber)
}

func TestExtractNameTokenLimit(t *testing.T) {
	e := New(2)

	entities := e.Extract("contracts for customer acme global trading")

	require.Contains(t, entities, AttrCustomerName)
	assert.Equal(t, "Acme Global", entities[AttrCustomerName].Value)
}

func TestExtractEmptyText(t *testing.T) {
	e := New(0)

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   "))
}
