package view

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"speseview/internal/core"
)

// NoValue is shown for statistics that are undefined on an empty record set.
const NoValue = "-"

// TotalExpenses sums every amount. Invalid amounts count as zero.
func TotalExpenses(records []core.Expense) core.Amount {
	return core.Amount(totalDecimal(records).InexactFloat64())
}

func totalDecimal(records []core.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range records {
		total = total.Add(e.Amount.Decimal())
	}
	return total
}

// UniqueDays counts distinct record dates, never less than 1.
func UniqueDays(records []core.Expense) int {
	seen := make(map[string]struct{}, len(records))
	for _, e := range records {
		seen[e.Date.String()] = struct{}{}
	}
	return max(len(seen), 1)
}

// AvgDaily is the total spend divided by the number of distinct days.
func AvgDaily(records []core.Expense) core.Amount {
	days := decimal.NewFromInt(int64(UniqueDays(records)))
	return core.Amount(totalDecimal(records).Div(days).InexactFloat64())
}

// CategoryTotals sums amounts per category, ordered by first occurrence.
func CategoryTotals(records []core.Expense) []core.CategoryAmount {
	index := make(map[core.Category]int)
	sums := make([]decimal.Decimal, 0)
	order := make([]core.Category, 0)
	for _, e := range records {
		i, ok := index[e.Category]
		if !ok {
			i = len(order)
			index[e.Category] = i
			order = append(order, e.Category)
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(e.Amount.Decimal())
	}

	out := make([]core.CategoryAmount, len(order))
	for i, c := range order {
		out[i] = core.CategoryAmount{Category: c, Amount: core.Amount(sums[i].InexactFloat64())}
	}
	return out
}

// TopCategory returns the label of the category with the highest total.
// A later category must be strictly greater to win, so ties go to the one
// seen first.
func TopCategory(records []core.Expense) string {
	if len(records) == 0 {
		return NoValue
	}
	totals := CategoryTotals(records)
	top := totals[0]
	for _, ca := range totals[1:] {
		if ca.Amount > top.Amount {
			top = ca
		}
	}
	return top.Category.Label()
}

// PaymentRatio formats the share of cash and card transactions as
// "<cash>% : <card>%". Anything that is not cash counts as card.
func PaymentRatio(records []core.Expense) string {
	if len(records) == 0 {
		return NoValue
	}
	cash := 0
	for _, e := range records {
		if e.PaymentMethod.IsCash() {
			cash++
		}
	}
	card := len(records) - cash
	if cash == 0 {
		return "0% : 100%"
	}
	if card == 0 {
		return "100% : 0%"
	}
	cashPercent := int(math.Round(float64(cash) / float64(len(records)) * 100))
	return fmt.Sprintf("%d%% : %d%%", cashPercent, 100-cashPercent)
}

// Summarize computes every summary statistic over the unfiltered records.
func Summarize(records []core.Expense) core.Summary {
	return core.Summary{
		TotalExpenses: TotalExpenses(records),
		AvgDaily:      AvgDaily(records),
		TopCategory:   TopCategory(records),
		PaymentRatio:  PaymentRatio(records),
		ExpenseCount:  len(records),
	}
}
