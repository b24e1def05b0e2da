package lexicon

// Defaults returns the built-in lexicon used when no external keyword or
// correction files are configured, or when loading them fails. Query
// processing must keep working without any configuration on disk.
func Defaults() *Lexicon {
	return &Lexicon{
		PartsKeywords: []string{
			"parts",
			"part number",
			"part no",
			"part #",
			"spare",
			"components",
			"component list",
			"line items",
		},
		CreateKeywords: []string{
			"create",
			"creation",
			"creating",
			"how to",
			"set up",
			"setup",
			"generate",
			"make a",
		},
		ContractKeywords: []string{
			"contract",
			"agreement",
			"deal",
		},
		HelpKeywords: []string{
			"help",
			"guide",
			"steps",
			"workflow",
			"approval",
		},
		Corrections: map[string]string{
			"contrct":    "contract",
			"contarct":   "contract",
			"conract":    "contract",
			"cntract":    "contract",
			"contracs":   "contracts",
			"agrement":   "agreement",
			"agreemnt":   "agreement",
			"partz":      "parts",
			"prats":      "parts",
			"parst":      "parts",
			"creat":      "create",
			"craete":     "create",
			"creete":     "create",
			"custmer":    "customer",
			"custommer":  "customer",
			"cusotmer":   "customer",
			"customr":    "customer",
			"acount":     "account",
			"accont":     "account",
			"numbr":      "number",
			"nmber":      "number",
			"shw":        "show",
			"sho":        "show",
			"dispaly":    "display",
			"serach":     "search",
			"qurey":      "query",
			"statuss":    "status",
			"staus":      "status",
			"effectuve":  "effective",
			"efective":   "effective",
			"effectve":   "effective",
			"expiry":     "expiration",
			"exipration": "expiration",
			"expiraton":  "expiration",
			"expred":     "expired",
			"dat":        "date",
			"pricng":     "pricing",
			"prce":       "price",
		},
		DisplayColumns: []DisplayColumn{
			{Keyword: "effective", Column: "Effective Date"},
			{Keyword: "expiration", Column: "Expiration Date"},
			{Keyword: "expire", Column: "Expiration Date"},
			{Keyword: "price", Column: "Price"},
			{Keyword: "pricing", Column: "Price"},
			{Keyword: "amount", Column: "Price"},
			{Keyword: "status", Column: "Status"},
			{Keyword: "customer", Column: "Customer Name"},
			{Keyword: "account", Column: "Account Number"},
			{Keyword: "created by", Column: "Created By"},
			{Keyword: "quantity", Column: "Quantity"},
			{Keyword: "description", Column: "Description"},
		},
	}
}
