// Package classify routes corrected query text to a domain and a specific
// action type. Classification is a decision table evaluated top to bottom:
// parts+create outranks parts, parts outranks create/help, and anything else
// lands in the CONTRACT default bucket. It never fails.
package classify

import (
	"regexp"
	"strings"

	"github.com/contract-portal/backend/internal/extract"
	"github.com/contract-portal/backend/internal/lexicon"
)

// Decision is the routing outcome for one query.
type Decision struct {
	Domain                string
	ActionType            string
	Reason                string
	BusinessRuleViolation bool
}

var (
	// Past-tense "created by" phrasing is a historical filter, not a
	// creation attempt; it must not trip the parts-creation rule.
	rePastTense = regexp.MustCompile(`(?i)\b(?:created|made|signed)\s+by\b`)

	rePartContainment = regexp.MustCompile(`(?i)\b(?:containing|contains|with|having|include|includes|including)\s+(?:part|component)\b`)
)

type Classifier struct {
	lex *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

func (c *Classifier) Classify(text string, entities map[string]extract.Entity) Decision {
	text = strings.ToLower(text)

	hasParts := c.lex.HasPartsKeyword(text)
	hasCreate := c.lex.HasCreateKeyword(text)
	pastTense := rePastTense.MatchString(text)

	// Rule 1: parts cannot be created through the portal (they are bulk
	// loaded), so parts+create phrasing is an explicit unsupported
	// operation, not an ambiguity.
	if hasParts && hasCreate && !pastTense {
		return Decision{
			Domain:                DomainParts,
			ActionType:            ActionPartsCreateError,
			Reason:                "parts and creation keywords present; parts cannot be created through the portal",
			BusinessRuleViolation: true,
		}
	}

	if hasParts {
		return c.classifyParts(entities)
	}

	if (hasCreate && !pastTense) || c.lex.HasHelpKeyword(text) {
		return c.classifyHelp(text)
	}

	return c.classifyContract(text, entities)
}

func (c *Classifier) classifyParts(entities map[string]extract.Entity) Decision {
	d := Decision{Domain: DomainParts}

	switch {
	case hasEntity(entities, extract.AttrPartNumber):
		d.ActionType = ActionPartsByPartNumber
		d.Reason = "parts keyword with part number"
	case hasEntity(entities, extract.AttrContractNumber):
		d.ActionType = ActionPartsByContract
		d.Reason = "parts keyword with contract number"
	case hasEntity(entities, extract.AttrCreatedBy):
		d.ActionType = ActionPartsByUser
		d.Reason = "parts keyword with created-by filter"
	case hasEntity(entities, extract.AttrCustomerName) || hasEntity(entities, extract.AttrCustomerNumber):
		d.ActionType = ActionPartsByCustomer
		d.Reason = "parts keyword with customer filter"
	default:
		d.ActionType = ActionPartsList
		d.Reason = "parts keyword without identifying entities"
	}

	if hasRangeOperator(entities) {
		d.ActionType = ActionPartsByDateRange
		d.Reason = "parts keyword with date range filter"
	}

	return d
}

func (c *Classifier) classifyHelp(text string) Decision {
	d := Decision{Domain: DomainHelp}

	switch {
	case strings.Contains(text, "workflow") || strings.Contains(text, "approv"):
		d.ActionType = ActionHelpWorkflow
		d.Reason = "help request about workflow or approval"
	case c.lex.HasContractKeyword(text):
		d.ActionType = ActionHelpContractCreation
		d.Reason = "help request about contract creation"
	default:
		d.ActionType = ActionHelpGeneral
		d.Reason = "general help request"
	}

	return d
}

func (c *Classifier) classifyContract(text string, entities map[string]extract.Entity) Decision {
	d := Decision{Domain: DomainContract}

	switch {
	case hasEntity(entities, extract.AttrContractNumber):
		d.ActionType = contractNumberAction(text)
		d.Reason = "contract number present"
	case hasEntity(entities, extract.AttrCustomerName) || hasEntity(entities, extract.AttrCustomerNumber):
		d.ActionType = ActionContractsByCustomerName
		d.Reason = "customer filter present"
	case hasEntity(entities, extract.AttrAccountNumber):
		d.ActionType = ActionContractsByAccountNumber
		d.Reason = "account number present"
	case hasEntity(entities, extract.AttrCreatedBy):
		d.ActionType = ActionContractsByUser
		d.Reason = "created-by filter present"
	case rePartContainment.MatchString(text):
		d.ActionType = ActionContractsByParts
		d.Reason = "part containment phrasing"
	default:
		d.ActionType = ActionContractsList
		d.Reason = "no domain keywords or identifying entities; contract listing default"
	}

	if hasRangeOperator(entities) {
		d.ActionType = ActionContractsByDateRange
		d.Reason = "date range filter present"
	}

	return d
}

// contractNumberAction refines the by-number action when the query also asks
// for a specific facet of the contract.
func contractNumberAction(text string) string {
	switch {
	case strings.Contains(text, "effective") || strings.Contains(text, "expir"):
		return ActionContractsByNumberDates
	case strings.Contains(text, "price") || strings.Contains(text, "pricing") || strings.Contains(text, "amount"):
		return ActionContractsByNumberPricing
	case strings.Contains(text, "customer"):
		return ActionContractsByNumberCustomer
	default:
		return ActionContractsByNumber
	}
}

func hasEntity(entities map[string]extract.Entity, attr string) bool {
	_, ok := entities[attr]
	return ok
}

// hasRangeOperator reports whether the extractor found a date-range filter;
// such queries become date-range listings regardless of which sub-action
// would otherwise apply. A BETWEEN on a non-date attribute (a price band)
// is an ordinary filter, not a date range.
func hasRangeOperator(entities map[string]extract.Entity) bool {
	for _, e := range entities {
		switch e.Operator {
		case extract.OpThisMonth, extract.OpThisYear, extract.OpTillDate:
			return true
		case extract.OpBetween:
			if isDateAttribute(e.Attribute) {
				return true
			}
		}
	}
	return false
}

func isDateAttribute(attr string) bool {
	switch attr {
	case extract.AttrEffectiveDate, extract.AttrExpirationDate, extract.AttrCreatedDate, extract.AttrDate:
		return true
	}
	return false
}
