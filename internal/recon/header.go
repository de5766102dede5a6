package recon

import "strings"

// headerScanRows bounds the header search window. Title banners and filing
// metadata above the table never run longer than this in practice.
const headerScanRows = 15

// LocateHeader scans the first rows of a raw sheet for the row where the
// table actually begins: the first row carrying at least one GSTIN alias and
// at least one invoice-number alias. It returns the row index and the
// trimmed header cells. Rows above the hit are titles or blanks and never
// become data.
func LocateHeader(rows [][]string, cfg AliasConfig) (int, []string, error) {
	if len(rows) == 0 {
		return 0, nil, ErrEmptySheet
	}

	limit := headerScanRows
	if limit > len(rows) {
		limit = len(rows)
	}

	required := [][]string{cfg[FieldGSTIN], cfg[FieldBillNo]}

	for i := 0; i < limit; i++ {
		cells := make([]string, len(rows[i]))
		for j, c := range rows[i] {
			cells[j] = strings.TrimSpace(c)
		}

		hits := 0
		for _, aliases := range required {
			if rowContainsAlias(cells, aliases) {
				hits++
			}
		}
		if hits >= len(required) {
			return i, cells, nil
		}
	}

	return 0, nil, ErrHeaderNotFound
}

func rowContainsAlias(cells []string, aliases []string) bool {
	for _, c := range cells {
		if c == "" {
			continue
		}
		for _, a := range aliases {
			if strings.EqualFold(c, strings.TrimSpace(a)) {
				return true
			}
		}
	}
	return false
}
