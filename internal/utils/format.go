package utils

import "fmt"

// FormatRank renders a corpus rank for CLI output. Integral ranks
// drop the fraction so frequency-count corpora stay readable.
func FormatRank(rank float64) string {
	if rank == float64(int64(rank)) {
		return FormatWithCommas(int(rank))
	}
	return fmt.Sprintf("%.3f", rank)
}

// FormatWithCommas formats an integer with comma separators.
func FormatWithCommas(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	str := fmt.Sprintf("%d", n)
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
