package types

// BankDetails are the optional remittance fields printed below the payment
// instructions on invoices.
type BankDetails struct {
	BankName      string `json:"bankName,omitempty"`
	SortCode      string `json:"sortCode,omitempty"`
	AccountNo     string `json:"accountNo,omitempty"`
	AccountHolder string `json:"accountHolder,omitempty"`
	SWIFT         string `json:"swift,omitempty"`
	IBAN          string `json:"iban,omitempty"`
}

// CompanyInfo is the seller identity shared by every document. It is a
// per-session singleton and is always replaced wholesale.
type CompanyInfo struct {
	Name                string       `json:"name"`
	Contact             string       `json:"contact"`
	Address             []string     `json:"address"`
	RegNo               string       `json:"regNo"`
	Email               string       `json:"email"`
	Website             string       `json:"website"`
	Terms               string       `json:"terms"`
	PaymentInstructions string       `json:"paymentInstructions"`
	LogoURL             string       `json:"logoUrl,omitempty"`
	Bank                *BankDetails `json:"bank,omitempty"`
}
