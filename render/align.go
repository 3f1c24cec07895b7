package render

// Align reconciles independently-lengthed raw value lists into positional
// rows. The output has max-length rows; at each index an empty list
// contributes "", a singleton list broadcasts its only value, and any other
// list contributes its positional value or "" past its end. Returns nil
// when every list is empty, so callers can collapse the whole collection to
// absent rather than emitting an empty one.
//
// Generated projects ship a runtime helper implementing the same policy;
// the sample synthesizer uses this function directly.
func Align(lists [][]string) [][]string {
	max := 0

	for _, l := range lists {
		if len(l) > max {
			max = len(l)
		}
	}

	if max == 0 {
		return nil
	}

	rows := make([][]string, max)

	for i := range rows {
		row := make([]string, len(lists))

		for j, l := range lists {
			switch {
			case len(l) == 1:
				row[j] = l[0]
			case i < len(l):
				row[j] = l[i]
			}
		}

		rows[i] = row
	}

	return rows
}
