package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseMoney reads a sale amount as entered on a form: optional currency
// sign, thousand separators and spaces are tolerated.
func ParseMoney(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// FormatPesos renders an amount the way the contracts print it: dollar
// sign, comma thousand separators, two decimals.
func FormatPesos(v float64) string {
	neg := v < 0
	v = math.Abs(v)
	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), cents)
}

// AmountInWords spells an amount in Spanish for the contract's "valor en
// letras" line, e.g. "cuarenta y cinco millones de pesos colombianos".
// Supported up to the hundreds of billions; anything beyond falls back
// to the numeric form.
func AmountInWords(v float64) string {
	if v < 0 || v >= 1e12 {
		return FormatPesos(v)
	}

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	var words string
	switch {
	case whole == 0:
		words = "cero pesos colombianos"
	case whole == 1:
		words = "un peso colombiano"
	case whole%1_000_000 == 0:
		// "millones de pesos", not "millones pesos"
		words = spellInt(whole, true) + " de pesos colombianos"
	default:
		// apocope before the noun: "treinta y un pesos"
		words = spellInt(whole, true) + " pesos colombianos"
	}

	if cents > 0 {
		words += fmt.Sprintf(" con %02d/100", cents)
	}
	return words
}

var smallNumbers = [...]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro",
	"veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var tensNumbers = [...]string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

var hundredsNumbers = [...]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

// spellInt spells 0..999_999_999_999. apocope requests "un"/"veintiún"
// before a masculine noun (mil, millón).
func spellInt(n int64, apocope bool) string {
	switch {
	case n >= 1_000_000:
		millions := n / 1_000_000
		rest := n % 1_000_000
		var head string
		if millions == 1 {
			head = "un millón"
		} else {
			head = spellInt(millions, true) + " millones"
		}
		if rest == 0 {
			return head
		}
		return head + " " + spellInt(rest, apocope)
	case n >= 1000:
		thousands := n / 1000
		rest := n % 1000
		var head string
		if thousands == 1 {
			head = "mil"
		} else {
			head = spellInt(thousands, true) + " mil"
		}
		if rest == 0 {
			return head
		}
		return head + " " + spellInt(rest, apocope)
	case n >= 100:
		hundreds := n / 100
		rest := n % 100
		if hundreds == 1 && rest == 0 {
			return "cien"
		}
		head := hundredsNumbers[hundreds]
		if rest == 0 {
			return head
		}
		return head + " " + spellInt(rest, apocope)
	case n >= 30:
		tens := n / 10
		rest := n % 10
		if rest == 0 {
			return tensNumbers[tens]
		}
		return tensNumbers[tens] + " y " + spellInt(rest, apocope)
	default:
		if apocope {
			if n == 1 {
				return "un"
			}
			if n == 21 {
				return "veintiún"
			}
		}
		return smallNumbers[n]
	}
}
