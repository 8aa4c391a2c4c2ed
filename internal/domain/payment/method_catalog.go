package payment

// MethodInfo is static reference data shown next to the payment form.
type MethodInfo struct {
	Method        Method `json:"method"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Details       string `json:"details"`
	AccountNumber string `json:"account_number,omitempty"`
}

// MethodCatalog returns the static payment-method reference data. The GCash
// account number is deployment configuration.
func MethodCatalog(gcashAccountNumber string) []MethodInfo {
	return []MethodInfo{
		{
			Method:      MethodCash,
			Name:        "Cash",
			Description: "Pay in cash at the venue",
			Details:     "Settled on the spot; no reference number needed.",
		},
		{
			Method:        MethodGCash,
			Name:          "GCash",
			Description:   "Send via GCash and submit the reference number",
			Details:       "Include your reservation name in the notes. Verified manually within one business day.",
			AccountNumber: gcashAccountNumber,
		},
		{
			Method:      MethodBankTransfer,
			Name:        "Bank Transfer",
			Description: "Transfer to our bank account and submit the reference number",
			Details:     "Verified manually within one business day.",
		},
	}
}
