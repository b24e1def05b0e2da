package extract

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

const operatorWindow = 20

type Extractor struct {
	nameTokenLimit int
}

func New(nameTokenLimit int) *Extractor {
	if nameTokenLimit <= 0 {
		nameTokenLimit = 3
	}
	return &Extractor{nameTokenLimit: nameTokenLimit}
}

// Extract runs every attribute's patterns against the corrected text and
// returns the entities that matched. Attributes are evaluated in a fixed
// order so overlapping captures resolve the same way every time: identifiers
// first, then created-by before customer name, then dates and attribute
// keywords. Name patterns run against the text as given, so captured spans
// keep their casing and punctuation for tokenization; everything else
// matches on a lower-cased view.
func (e *Extractor) Extract(text string) map[string]Entity {
	entities := make(map[string]Entity)
	if strings.TrimSpace(text) == "" {
		return entities
	}

	lower := strings.ToLower(text)
	rangeSpan := reBetween.FindStringSubmatchIndex(lower)

	e.extractContractNumber(lower, entities, rangeSpan)
	e.extractPartNumber(lower, entities)
	e.extractAccountNumber(lower, entities)
	e.extractCustomerNumber(lower, entities)
	createdBySpan := e.extractCreatedBy(text, entities)
	e.extractCustomerName(text, entities, createdBySpan)
	e.extractDates(lower, entities, rangeSpan)
	e.extractAttributeKeywords(lower, entities)

	return entities
}

func (e *Extractor) extractContractNumber(text string, entities map[string]Entity, rangeSpan []int) {
	if m := reContractExplicit.FindStringSubmatch(text); m != nil {
		entities[AttrContractNumber] = Entity{AttrContractNumber, OpEquals, strings.ToUpper(m[1])}
		return
	}

	for _, loc := range reContractDigits.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if partOfDate(text, start, end) {
			continue
		}
		// Bounds of a "between X and Y" range are range operands, never
		// contract numbers.
		if insideSpan(start, end, rangeSpan) {
			continue
		}
		if windowContains(text[:start], operatorWindow, contractDigitGuards) {
			continue
		}
		entities[AttrContractNumber] = Entity{AttrContractNumber, OpEquals, strings.ToUpper(text[start:end])}
		return
	}

	for _, loc := range reContractCode.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if windowContains(text[:start], operatorWindow, []string{"part", "component"}) {
			continue
		}
		entities[AttrContractNumber] = Entity{AttrContractNumber, OpEquals, strings.ToUpper(text[start:end])}
		return
	}
}

func (e *Extractor) extractPartNumber(text string, entities map[string]Entity) {
	if m := rePartExplicit.FindStringSubmatch(text); m != nil {
		entities[AttrPartNumber] = Entity{AttrPartNumber, OpEquals, strings.ToUpper(m[1])}
		return
	}

	claimed := ""
	if contract, ok := entities[AttrContractNumber]; ok {
		claimed = contract.Value
	}

	for _, loc := range rePartStandalone.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		value := strings.ToUpper(text[start:end])
		if value == claimed {
			continue
		}
		if windowContains(text[:start], operatorWindow, partCodeGuards) {
			continue
		}
		entities[AttrPartNumber] = Entity{AttrPartNumber, OpEquals, value}
		return
	}
}

func (e *Extractor) extractAccountNumber(text string, entities map[string]Entity) {
	if m := reAccountNumber.FindStringSubmatch(text); m != nil {
		entities[AttrAccountNumber] = Entity{AttrAccountNumber, OpEquals, strings.ToUpper(m[1])}
	}
}

func (e *Extractor) extractCustomerNumber(text string, entities map[string]Entity) {
	if m := reCustomerNumber.FindStringSubmatch(text); m != nil {
		entities[AttrCustomerNumber] = Entity{AttrCustomerNumber, OpEquals, strings.ToUpper(m[1])}
	}
}

// extractCreatedBy returns the matched capture span so the customer-name rule
// can refuse spans already consumed here. Created-by is evaluated first when
// both phrasings overlap ("by john for customer john").
func (e *Extractor) extractCreatedBy(text string, entities map[string]Entity) []int {
	loc := reCreatedBy.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}

	name := e.normalizeName(text[loc[2]:loc[3]])
	if name == "" {
		return nil
	}

	entities[AttrCreatedBy] = Entity{AttrCreatedBy, OpEquals, name}
	return []int{loc[2], loc[3]}
}

func (e *Extractor) extractCustomerName(text string, entities map[string]Entity, claimed []int) {
	for _, loc := range reCustomerName.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if claimed != nil && start < claimed[1] && end > claimed[0] {
			continue
		}

		name := e.normalizeName(text[start:end])
		if name == "" {
			continue
		}

		entities[AttrCustomerName] = Entity{AttrCustomerName, OpEquals, name}
		return
	}
}

func (e *Extractor) extractDates(text string, entities map[string]Entity, rangeSpan []int) {
	if rangeSpan != nil {
		from := text[rangeSpan[2]:rangeSpan[3]]
		to := text[rangeSpan[4]:rangeSpan[5]]
		if containsDigit(from) && containsDigit(to) {
			attr := rangeAttribute(window(text, rangeSpan[0], rangeSpan[1], 30))
			entities[attr] = Entity{attr, OpBetween, fmt.Sprintf("%s TO %s", from, to)}
			return
		}
	}

	for _, re := range []interface{ FindStringSubmatchIndex(string) []int }{reDateISO, reDateNumeric, reDateMonth} {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		ctx := window(text, loc[2], loc[3], 30)
		attr := dateAttribute(ctx)
		if _, exists := entities[attr]; exists {
			return
		}
		entities[attr] = Entity{attr, detectOperator(ctx), text[loc[2]:loc[3]]}
		return
	}
}

// extractAttributeKeywords detects status/price/effective/expiration purely
// by keyword containment. The entity's operator comes from trigger words in
// a small window around the keyword; the value may be empty when the query
// names the attribute without a literal ("contracts effective this month").
func (e *Extractor) extractAttributeKeywords(text string, entities map[string]Entity) {
	if _, ok := entities[AttrStatus]; !ok && strings.Contains(text, "status") {
		value := ""
		if m := reStatusValue.FindStringSubmatch(text); m != nil && !fillerWord(m[1]) {
			value = m[1]
		}
		idx := strings.Index(text, "status")
		entities[AttrStatus] = Entity{AttrStatus, detectOperator(window(text, idx, idx+len("status"), operatorWindow)), value}
	}

	for _, trigger := range []string{"price", "pricing", "amount"} {
		if _, ok := entities[AttrPrice]; ok {
			break
		}
		idx := strings.Index(text, trigger)
		if idx < 0 {
			continue
		}
		value := ""
		if m := rePriceValue.FindStringSubmatch(text); m != nil {
			value = m[1]
		}
		entities[AttrPrice] = Entity{AttrPrice, detectOperator(window(text, idx, idx+len(trigger), operatorWindow)), value}
	}

	if _, ok := entities[AttrEffectiveDate]; !ok {
		if idx := strings.Index(text, "effective"); idx >= 0 {
			entities[AttrEffectiveDate] = Entity{AttrEffectiveDate, detectOperator(window(text, idx, idx+len("effective"), operatorWindow)), ""}
		}
	}

	if _, ok := entities[AttrExpirationDate]; !ok {
		for _, trigger := range []string{"expiration", "expire", "expired", "expiring"} {
			idx := strings.Index(text, trigger)
			if idx < 0 {
				continue
			}
			entities[AttrExpirationDate] = Entity{AttrExpirationDate, detectOperator(window(text, idx, idx+len(trigger), operatorWindow)), ""}
			break
		}
	}
}

// normalizeName tokenizes a captured span, drops domain nouns and filler,
// caps the token count, and title-cases what is left. An empty result means
// the capture was a false positive.
func (e *Extractor) normalizeName(span string) string {
	words := tokenizeWords(span)

	kept := make([]string, 0, e.nameTokenLimit)
	for _, w := range words {
		core := trimNonLetters(w)
		if core == "" {
			continue
		}
		lower := strings.ToLower(core)
		if nameStopwords[lower] {
			continue
		}
		if !nameWord(lower) {
			continue
		}
		kept = append(kept, titleCase(lower))
		if len(kept) == e.nameTokenLimit {
			break
		}
	}

	return strings.Join(kept, " ")
}

// tokenizeWords splits a name candidate into word tokens via the prose
// tokenizer, falling back to whitespace fields if tokenization fails. The
// span arrives with its original casing and punctuation; the tokenizer
// separates trailing punctuation ("inc." -> "inc", ".") that a plain
// whitespace split would leave glued to the word.
func tokenizeWords(span string) []string {
	doc, err := prose.NewDocument(span,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return strings.Fields(span)
	}

	tokens := doc.Tokens()
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}
	return words
}

func detectOperator(ctx string) string {
	switch {
	case strings.Contains(ctx, "between"):
		return OpBetween
	case strings.Contains(ctx, "this month"):
		return OpThisMonth
	case strings.Contains(ctx, "this year"):
		return OpThisYear
	case strings.Contains(ctx, "till date") || strings.Contains(ctx, "to date"):
		return OpTillDate
	case strings.Contains(ctx, "after") || strings.Contains(ctx, "greater than") || strings.Contains(ctx, "more than") || strings.Contains(ctx, "above"):
		return OpGreaterThan
	case strings.Contains(ctx, "before") || strings.Contains(ctx, "less than") || strings.Contains(ctx, "under") || strings.Contains(ctx, "below"):
		return OpLessThan
	case strings.Contains(ctx, "contain") || strings.Contains(ctx, "like"):
		return OpContains
	default:
		return OpEquals
	}
}

func dateAttribute(ctx string) string {
	switch {
	case strings.Contains(ctx, "effective"):
		return AttrEffectiveDate
	case strings.Contains(ctx, "expir"):
		return AttrExpirationDate
	case strings.Contains(ctx, "creat") || strings.Contains(ctx, "signed"):
		return AttrCreatedDate
	default:
		return AttrDate
	}
}

// rangeAttribute binds a "between X and Y" range to the attribute named
// near it. A numeric range next to a price word is a price filter, not a
// date filter.
func rangeAttribute(ctx string) string {
	switch {
	case strings.Contains(ctx, "price") || strings.Contains(ctx, "pricing") || strings.Contains(ctx, "amount"):
		return AttrPrice
	default:
		return dateAttribute(ctx)
	}
}

func insideSpan(start, end int, span []int) bool {
	return span != nil && start >= span[0] && end <= span[1]
}

// partOfDate reports whether a digit run is a fragment of a larger date
// literal, e.g. the year inside "15/01/2024".
func partOfDate(text string, start, end int) bool {
	if start > 0 && (text[start-1] == '/' || text[start-1] == '-') {
		return true
	}
	if end < len(text) && (text[end] == '/' || text[end] == '-') {
		return true
	}
	return false
}

func windowContains(before string, radius int, words []string) bool {
	if len(before) > radius {
		before = before[len(before)-radius:]
	}
	before = strings.ToLower(before)
	for _, w := range words {
		if strings.Contains(before, w) {
			return true
		}
	}
	return false
}

func window(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return strings.ToLower(text[lo:hi])
}

func fillerWord(w string) bool {
	switch w {
	case "of", "for", "is", "and", "on", "report", "query", "the":
		return true
	}
	return false
}

// trimNonLetters strips leading and trailing punctuation from a token.
func trimNonLetters(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// nameWord accepts letter runs with interior apostrophes or hyphens
// ("o'brien", "smith-jones") and rejects anything with digits or other
// symbols.
func nameWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' {
			return false
		}
	}
	return true
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func titleCase(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(w)
	return string(unicode.ToUpper(runes[0])) + string(runes[1:])
}
