// internal/model/commercial.go
package model

import "github.com/shopspring/decimal"

type Contract struct {
	OrgID            string          `csv:"org_id"`
	ContractID       string          `csv:"contract_id"`
	AppID            string          `csv:"app_id"`
	AppKey           string          `csv:"app_key"`
	StartDate        Date            `csv:"start_date"`
	EndDate          Date            `csv:"end_date"`
	TermMonths       int             `csv:"term_months"`
	PricePerSeat     decimal.Decimal `csv:"price_per_seat"`
	MinSeats         int             `csv:"min_seats"`
	BillingFrequency string          `csv:"billing_frequency"`
	Currency         string          `csv:"currency"`
}

type Invoice struct {
	OrgID       string          `csv:"org_id"`
	InvoiceID   string          `csv:"invoice_id"`
	ContractID  string          `csv:"contract_id"`
	AppID       string          `csv:"app_id"`
	InvoiceDate Date            `csv:"invoice_date"`
	SeatsBilled int             `csv:"seats_billed"`
	TotalAmount decimal.Decimal `csv:"total_amount"`
	Currency    string          `csv:"currency"`
}
