package classify

// Query domains.
const (
	DomainContract = "CONTRACT"
	DomainParts    = "PARTS"
	DomainHelp     = "HELP"
)

// Action types. The portal dispatches on these labels, so they are part of
// the wire contract.
const (
	ActionPartsCreateError = "parts_create_not_supported"

	ActionPartsByPartNumber = "parts_by_partNumber"
	ActionPartsByContract   = "parts_by_contract"
	ActionPartsByUser       = "parts_by_user"
	ActionPartsByCustomer   = "parts_by_customer"
	ActionPartsList         = "parts_list"
	ActionPartsByDateRange  = "parts_by_dateRange"

	ActionHelpContractCreation = "help_contract_creation"
	ActionHelpWorkflow         = "help_workflow"
	ActionHelpGeneral          = "help_general"

	ActionContractsByNumber         = "contracts_by_contractNumber"
	ActionContractsByNumberDates    = "contracts_by_contractNumber_dates"
	ActionContractsByNumberPricing  = "contracts_by_contractNumber_pricing"
	ActionContractsByNumberCustomer = "contracts_by_contractNumber_customer"
	ActionContractsByCustomerName   = "contracts_by_customerName"
	ActionContractsByAccountNumber  = "contracts_by_accountNumber"
	ActionContractsByUser           = "contracts_by_user"
	ActionContractsByParts          = "contracts_by_parts"
	ActionContractsList             = "contracts_list"
	ActionContractsByDateRange      = "contracts_by_dateRange"
)
