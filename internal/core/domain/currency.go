package domain

// Currency represents an ISO 4217 currency known to the catalog.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Number       string `json:"number"`       // ISO numeric code (e.g., "840")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int    `json:"precision"`    // minor unit digits, 2 for USD, 0 for JPY
	AuditFields
}
