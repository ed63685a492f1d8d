package pets

import (
	"fmt"
	"math"
	"strconv"
)

const ageNotSpecified = "Not specified"

// AgeLabel convierte años decimales en texto:
// < 1 se muestra en meses redondeados, >= 1 en años (un decimal como máximo).
func AgeLabel(age *float64) string {
	if age == nil || *age <= 0 || math.IsNaN(*age) || math.IsInf(*age, 0) {
		return ageNotSpecified
	}

	a := *age
	if a < 1 {
		months := int(math.Round(a * 12))
		if months < 1 {
			months = 1
		}
		return plural(strconv.Itoa(months), months == 1, "month")
	}

	years := math.Round(a*10) / 10
	s := strconv.FormatFloat(years, 'f', -1, 64)
	return plural(s, years == 1, "year")
}

func plural(n string, one bool, noun string) string {
	if one {
		return fmt.Sprintf("%s %s", n, noun)
	}
	return fmt.Sprintf("%s %ss", n, noun)
}
