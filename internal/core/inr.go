// Indian number and date formatting. Display-only helpers; calculations
// always stay in paise.
package core

import (
	"fmt"
	"strconv"
	"time"
)

// FormatIndianNumber renders a Money value with Indian digit grouping
// (1,50,000.00 rather than 150,000.00) and the rupee symbol.
func FormatIndianNumber(m Money) string {
	paise := m.Paise
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	rupees := paise / 100
	frac := paise % 100

	digits := strconv.FormatInt(rupees, 10)
	grouped := digits
	if len(digits) > 3 {
		// Last 3 digits, then the rest in pairs (Indian system)
		grouped = digits[len(digits)-3:]
		rest := digits[:len(digits)-3]
		for len(rest) > 0 {
			cut := len(rest) - 2
			if cut < 0 {
				cut = 0
			}
			grouped = rest[cut:] + "," + grouped
			rest = rest[:cut]
		}
	}
	return fmt.Sprintf("%s₹%s.%02d", sign, grouped, frac)
}

// FormatRupee is an alias for FormatIndianNumber.
func FormatRupee(m Money) string {
	return FormatIndianNumber(m)
}

// FormatLakhsCrores abbreviates large amounts as Lakhs/Crores.
func FormatLakhsCrores(m Money) string {
	paise := m.Paise
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	rupees := float64(paise) / 100.0
	switch {
	case rupees >= 1e7:
		return fmt.Sprintf("%s₹%.2f Cr", sign, rupees/1e7)
	case rupees >= 1e5:
		return fmt.Sprintf("%s₹%.2f L", sign, rupees/1e5)
	case rupees >= 1e3:
		return fmt.Sprintf("%s₹%.2fK", sign, rupees/1e3)
	}
	return sign + FormatIndianNumber(Money{Paise: paise})
}

// FormatIndianDate renders DD/MM/YYYY.
func FormatIndianDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatShortIndianDate renders "2 Jan".
func FormatShortIndianDate(t time.Time) string {
	return t.Format("2 Jan")
}
