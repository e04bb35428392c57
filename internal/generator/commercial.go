// internal/generator/commercial.go
package generator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dangerclosesec/orgsim/internal/model"
	"github.com/dangerclosesec/orgsim/internal/synth"
)

const (
	contractTermMonths = 12
	largeOrgThreshold  = 1000
	largeOrgDiscount   = 0.9
	billingFrequency   = "monthly"
	billingCurrency    = "USD"
)

// commercial derives one contract per app with at least one assigned seat,
// and one invoice per contract per trailing calendar month. Invoice months
// are true first-of-month dates stepped back from the run clock.
func (g *Generator) commercial(
	ctx *synth.Context,
	org model.Organization,
	apps []model.Application,
	seats map[string]int,
) ([]model.Contract, []model.Invoice) {
	var (
		contracts []model.Contract
		invoices  []model.Invoice
	)

	monthFirst := time.Date(g.now.Year(), g.now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for _, app := range apps {
		assignedSeats := seats[app.AppID]
		if assignedSeats == 0 {
			continue
		}

		startDate := g.daysAgo(ctx.IntBetween(365, 365*2))
		endDate := startDate.AddDate(0, contractTermMonths, 0)

		sizeDiscount := 1.0
		if org.EmployeeCount >= largeOrgThreshold {
			sizeDiscount = largeOrgDiscount
		}
		pricePerSeat := decimal.NewFromFloat(app.BasePrice * ctx.Uniform(0.85, 1.15) * sizeDiscount).Round(2)

		buffer := int(float64(assignedSeats) * ctx.Uniform(0.05, 0.25))
		if buffer < 1 {
			buffer = 1
		}
		minSeats := assignedSeats + buffer

		contractID := fmt.Sprintf("%s_%s_contract", org.OrgID, app.AppID)
		contracts = append(contracts, model.Contract{
			OrgID:            org.OrgID,
			ContractID:       contractID,
			AppID:            app.AppID,
			AppKey:           app.AppKey,
			StartDate:        model.NewDate(startDate),
			EndDate:          model.NewDate(endDate),
			TermMonths:       contractTermMonths,
			PricePerSeat:     pricePerSeat,
			MinSeats:         minSeats,
			BillingFrequency: billingFrequency,
			Currency:         billingCurrency,
		})

		for m := 0; m < g.params.Months; m++ {
			invoiceDate := monthFirst.AddDate(0, -m, 0)
			seatsBilled := int(float64(assignedSeats) * ctx.Uniform(0.95, 1.10))
			if seatsBilled < minSeats {
				seatsBilled = minSeats
			}
			invoices = append(invoices, model.Invoice{
				OrgID:       org.OrgID,
				InvoiceID:   fmt.Sprintf("%s_%s_%s", org.OrgID, app.AppID, invoiceDate.Format("2006-01-02")),
				ContractID:  contractID,
				AppID:       app.AppID,
				InvoiceDate: model.NewDate(invoiceDate),
				SeatsBilled: seatsBilled,
				TotalAmount: pricePerSeat.Mul(decimal.NewFromInt(int64(seatsBilled))).Round(2),
				Currency:    billingCurrency,
			})
		}
	}
	return contracts, invoices
}
