package domain

import "strconv"

// seatsPerRow is the number of seats assigned to a row label before the next
// row starts.
const seatsPerRow = 10

// SeatCodes generates capacity seat codes in row-major order: ten seats per
// row, numbered 1..10, with row labels A..Z. Capacities above 260 extend the
// labels spreadsheet-style (AA, AB, ...) rather than wrapping or truncating,
// so the generated set is complete and pairwise distinct for any capacity.
func SeatCodes(capacity int) []string {
	codes := make([]string, 0, max(capacity, 0))
	for i := 0; i < capacity; i++ {
		codes = append(codes, rowLabel(i/seatsPerRow)+strconv.Itoa(i%seatsPerRow+1))
	}
	return codes
}

func rowLabel(n int) string {
	label := ""
	for {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
		if n < 0 {
			return label
		}
	}
}
