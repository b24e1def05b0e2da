package query

import (
	"strings"

	"github.com/contract-portal/backend/internal/classify"
	"github.com/contract-portal/backend/internal/extract"
	"github.com/contract-portal/backend/internal/lexicon"
)

// Default display columns per domain; attribute keywords found in the query
// overlay additional columns in lexicon table order.
var domainDisplayDefaults = map[string][]string{
	classify.DomainContract: {"Contract Number", "Customer Name", "Status"},
	classify.DomainParts:    {"Part Number", "Description", "Quantity"},
	classify.DomainHelp:     nil,
}

const partsCreateRemediation = "Parts cannot be created through the portal; they are loaded in bulk from the item master. " +
	"Try searching for parts on an existing contract instead, e.g. \"show parts for contract 123456\"."

// assemble packages one query's outputs into the response the portal
// renders. It never fails; validity problems become entries in Errors.
func assemble(lex *lexicon.Lexicon, original, corrected string, changed bool, decision classify.Decision, entities map[string]extract.Entity) *QueryResponse {
	resp := &QueryResponse{
		Metadata: Metadata{
			OriginalQuery:         original,
			CorrectedQuery:        corrected,
			HasSpellCorrections:   changed,
			QueryType:             decision.Domain,
			ActionType:            decision.ActionType,
			Reason:                decision.Reason,
			BusinessRuleViolation: decision.BusinessRuleViolation,
		},
		Entities:        make([]Filter, 0, len(entities)),
		DisplayEntities: displayFields(lex, decision.Domain, strings.ToLower(corrected)),
		Errors:          []ResponseError{},
	}

	resp.Header = Header{
		ContractNumber: entityValue(entities, extract.AttrContractNumber),
		PartNumber:     entityValue(entities, extract.AttrPartNumber),
		CustomerNumber: entityValue(entities, extract.AttrCustomerNumber),
		CustomerName:   entityValue(entities, extract.AttrCustomerName),
		CreatedBy:      entityValue(entities, extract.AttrCreatedBy),
	}

	// Entities are emitted in canonical attribute order, not map order.
	for _, attr := range extract.AttributeOrder {
		if e, ok := entities[attr]; ok {
			resp.Entities = append(resp.Entities, Filter{
				Attribute: e.Attribute,
				Operator:  e.Operator,
				Value:     e.Value,
			})
		}
	}

	if decision.BusinessRuleViolation {
		resp.Errors = append(resp.Errors, ResponseError{
			Code:    ErrCodePartsCreate,
			Message: partsCreateRemediation,
		})
	}

	// Help queries are complete without identifying entities; everything
	// else needs at least one identifier or filter to be actionable.
	if decision.Domain != classify.DomainHelp && resp.Header.Empty() && len(resp.Entities) == 0 {
		resp.Errors = append(resp.Errors, ResponseError{
			Code:    ErrCodeInvalidQuery,
			Message: "no identifying entity or filter found in query",
		})
	}

	return resp
}

// displayFields starts from the domain defaults and appends the column for
// every display keyword present in the corrected text, preserving the
// lexicon table's order and dropping duplicates.
func displayFields(lex *lexicon.Lexicon, domain, text string) []string {
	fields := make([]string, 0, 6)
	seen := make(map[string]bool)

	for _, col := range domainDisplayDefaults[domain] {
		if !seen[col] {
			fields = append(fields, col)
			seen[col] = true
		}
	}

	for _, dc := range lex.DisplayColumns {
		if seen[dc.Column] {
			continue
		}
		if strings.Contains(text, dc.Keyword) {
			fields = append(fields, dc.Column)
			seen[dc.Column] = true
		}
	}

	return fields
}

func entityValue(entities map[string]extract.Entity, attr string) *string {
	e, ok := entities[attr]
	if !ok || e.Value == "" {
		return nil
	}
	v := e.Value
	return &v
}
