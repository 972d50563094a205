package donation

import (
	"fmt"
	"time"
)

// Record is an immutable snapshot of a submitted donation.
type Record struct {
	ID        string
	DonorName string
	Caption   string
	Amount    int
	CreatedAt time.Time
}

// Headline renders the list entry text, e.g. "Sponge Bob donated $234".
func (r Record) Headline(currency string) string {
	return fmt.Sprintf("%s donated %s", r.DonorName, FormatAmount(currency, r.Amount))
}

// FormatAmount renders an amount with its currency symbol, e.g. "$5".
func FormatAmount(currency string, amount int) string {
	return fmt.Sprintf("%s%d", currency, amount)
}
