package extract

import "regexp"

// Patterns are tried in declaration order; within one attribute the first
// match wins and later patterns are skipped.
var (
	reContractExplicit = regexp.MustCompile(`(?i)\b(?:contracts?|agreements?|deals?)\s*(?:number|no\.?|#)?\s*[:#]?\s*([a-z]{2,3}-\d{3,6}|\d{4,8})\b`)
	reContractDigits   = regexp.MustCompile(`\b(\d{4,8})\b`)
	reContractCode     = regexp.MustCompile(`(?i)\b([a-z]{2,3}-\d{3,6})\b`)

	rePartExplicit   = regexp.MustCompile(`(?i)\b(?:parts?|components?)\s+(?:number|no\.?|#)?\s*[:#]?\s*([a-z]{1,3}-?\d{2,6}|\d{2,8})\b`)
	rePartStandalone = regexp.MustCompile(`(?i)\b([a-z]{1,3}\d{3,6}|[a-z]{2,3}-\d{3,6})\b`)

	reAccountNumber  = regexp.MustCompile(`(?i)\baccounts?\s*(?:number|no\.?|#)?\s*[:#]?\s*(\d{4,12})\b`)
	reCustomerNumber = regexp.MustCompile(`(?i)\b(?:customers?|clients?)\s*(?:number|no\.?|#)?\s*[:#]?\s*(\d{4,12})\b`)

	// Name captures admit interior punctuation ("acme inc.", "o'brien") so
	// the tokenizer sees the span as typed; normalizeName cleans it up.
	reCreatedBy    = regexp.MustCompile(`(?i)\b(?:created|made|signed)\s+by\s+([a-z][a-z.'-]*(?:\s+[a-z.'-]+)?)`)
	reCustomerName = regexp.MustCompile(`(?i)\b(?:customer|client)\s+(?:name\s+)?([a-z][a-z.'&-]*(?:\s+[a-z.'&-]+){0,2})`)

	reDateISO     = regexp.MustCompile(`\b(\d{4}-\d{1,2}-\d{1,2})\b`)
	reDateNumeric = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	reDateMonth   = regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4})\b`)

	reBetween = regexp.MustCompile(`(?i)\bbetween\s+(\S+)\s+and\s+(\S+)`)

	reStatusValue = regexp.MustCompile(`(?i)\bstatus\s+(?:is\s+|=\s*)?([a-z]+)\b`)
	rePriceValue  = regexp.MustCompile(`(?i)\b(?:price|pricing|amount)\s*(?:is\s+|of\s+|=\s*)?(\d+(?:\.\d+)?)\b`)
)

// Words that disqualify a digit run from being read as a contract number
// when they appear just before it.
var contractDigitGuards = []string{"account", "customer", "client", "part", "component", "price", "amount"}

// Words that disqualify an alphanumeric code from being read as a part
// number when they appear just before it.
var partCodeGuards = []string{"contract", "agreement", "deal", "account", "customer", "client"}

// Common domain nouns that are never person or company names.
var nameStopwords = map[string]bool{
	"contract":  true,
	"contracts": true,
	"agreement": true,
	"customer":  true,
	"client":    true,
	"part":      true,
	"parts":     true,
	"number":    true,
	"no":        true,
	"name":      true,
	"status":    true,
	"date":      true,
	"account":   true,
	"price":     true,
	"details":   true,
	"info":      true,
	"list":      true,
	"all":       true,
	"the":       true,
	"a":         true,
	"an":        true,
	"for":       true,
	"of":        true,
	"with":      true,
	"and":       true,
	"id":        true,
}
