/*
participation.go - Who receives which complement

PURPOSE:
  The registro retributivo asks not only how much each gender is paid but
  who gets access to each complement at all. This table counts, per
  component code, the current-period recipients (amount > 0) by gender and
  each gender's share of those recipients.

RULES:
  - Current rows only; rows without a usable gender tag are invisible.
  - Codes nobody receives are omitted.
  - Rows come out in catalog order (numeric-aware code sort).
  - The privacy rule is caller-selectable: the company-wide distribution
    table traditionally runs unsuppressed, per-attribute breakdowns
    suppress groups of one.

SEE ALSO:
  - aggregate.go: the statistic engine sharing the fatal-input rules
*/
package paygap

import "github.com/warp/parity-engine/compensation"

// ComponentUsage is one row of the participation table.
type ComponentUsage struct {
	Code       compensation.ComponentCode `json:"code"`
	Name       string                     `json:"name"`
	Category   compensation.Category      `json:"category"`
	Women      int                        `json:"women"`
	Men        int                        `json:"men"`
	Total      int                        `json:"total"`
	WomenShare float64                    `json:"women_share"`
	MenShare   float64                    `json:"men_share"`
}

// ParticipationTable lists component recipient counts by gender.
type ParticipationTable struct {
	Rows       []ComponentUsage `json:"rows"`
	Suppressed []string         `json:"suppressed,omitempty"`
}

// Participation builds the recipient table over enriched rows. When suppress
// is true, codes where either gender has exactly one recipient are dropped
// and listed instead.
func Participation(records []compensation.Record, catalog *compensation.Catalog, suppress bool) (*ParticipationTable, error) {
	if len(records) == 0 {
		return nil, compensation.ErrEmptyInput
	}
	if !anyGendered(records) {
		return nil, &compensation.BatchIntegrityError{Column: "gender", Rows: len(records)}
	}

	type counts struct{ women, men int }
	usage := make(map[compensation.ComponentCode]*counts)
	var codes []compensation.ComponentCode

	for i := range records {
		rec := &records[i]
		if rec.Status != compensation.StatusCurrent {
			continue
		}
		if rec.Gender != compensation.Women && rec.Gender != compensation.Men {
			continue
		}
		for code, amount := range rec.Components {
			if !amount.IsPositive() {
				continue
			}
			c := usage[code]
			if c == nil {
				c = &counts{}
				usage[code] = c
				codes = append(codes, code)
			}
			if rec.Gender == compensation.Women {
				c.women++
			} else {
				c.men++
			}
		}
	}

	compensation.SortCodes(codes)

	table := &ParticipationTable{}
	for _, code := range codes {
		c := usage[code]
		total := c.women + c.men
		if total == 0 {
			continue
		}
		if suppress && (c.women == 1 || c.men == 1) {
			table.Suppressed = append(table.Suppressed, string(code))
			continue
		}

		row := ComponentUsage{
			Code:       code,
			Name:       string(code),
			Category:   catalog.Resolve(code).Category,
			Women:      c.women,
			Men:        c.men,
			Total:      total,
			WomenShare: float64(c.women) / float64(total) * 100,
			MenShare:   float64(c.men) / float64(total) * 100,
		}
		if comp, ok := catalog.Component(code); ok {
			row.Name = comp.Name
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
