package dto

// UpdateStationRequest body for PUT /api/station. Counters are not editable
// over the API; they only move through numbering.
type UpdateStationRequest struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountName   *string `json:"account_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	LogoURL       *string `json:"logo_url,omitempty"`
	InvoicePrefix *string `json:"invoice_prefix,omitempty"`
	ReceiptPrefix *string `json:"receipt_prefix,omitempty"`
}

// StationResponse station settings in responses.
type StationResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	BankName       string `json:"bank_name,omitempty"`
	AccountName    string `json:"account_name,omitempty"`
	AccountNumber  string `json:"account_number,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	InvoicePrefix  string `json:"invoice_prefix"`
	InvoiceCounter int    `json:"invoice_counter"`
	ReceiptPrefix  string `json:"receipt_prefix"`
	ReceiptCounter int    `json:"receipt_counter"`
}
