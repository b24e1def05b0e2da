// Package extract pulls filter entities (attribute, operator, value) out of
// corrected query text using an ordered set of regular expressions. For each
// attribute the first successful pattern wins; attributes with no match are
// absent from the result.
package extract

// Filter operators attached to extracted entities.
const (
	OpEquals      = "EQUALS"
	OpContains    = "CONTAINS"
	OpBetween     = "BETWEEN"
	OpGreaterThan = "GREATER_THAN"
	OpLessThan    = "LESS_THAN"
	OpThisMonth   = "THIS_MONTH"
	OpThisYear    = "THIS_YEAR"
	OpTillDate    = "TILL_DATE"
)

// Canonical attribute names shared with the response assembler.
const (
	AttrContractNumber = "contractNumber"
	AttrPartNumber     = "partNumber"
	AttrCustomerNumber = "customerNumber"
	AttrAccountNumber  = "accountNumber"
	AttrCustomerName   = "customerName"
	AttrCreatedBy      = "createdBy"
	AttrEffectiveDate  = "effectiveDate"
	AttrExpirationDate = "expirationDate"
	AttrCreatedDate    = "createdDate"
	AttrDate           = "date"
	AttrStatus         = "status"
	AttrPrice          = "price"
)

// AttributeOrder fixes the order entities are emitted in responses. Map
// iteration order is not deterministic; this list is.
var AttributeOrder = []string{
	AttrContractNumber,
	AttrPartNumber,
	AttrCustomerNumber,
	AttrAccountNumber,
	AttrCustomerName,
	AttrCreatedBy,
	AttrEffectiveDate,
	AttrExpirationDate,
	AttrCreatedDate,
	AttrDate,
	AttrStatus,
	AttrPrice,
}

// Entity is one extracted filter condition. Value holds the raw matched
// substring, normalized to upper-case for identifiers and title-case for
// names; for BETWEEN it is encoded as "start TO end". Keyword-presence
// attributes (status, price, date qualifiers) may carry an empty Value when
// the query names the attribute without supplying one.
type Entity struct {
	Attribute string
	Operator  string
	Value     string
}
