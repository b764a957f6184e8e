package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

var Header = []string{"Date", "Exercise", "Category", "Set#", "Weight(kg)", "Reps"}

// FileName is the download name of the export made on the given day.
func FileName(today pkg.Date) string {
	return fmt.Sprintf("fitness-export-%s.csv", today)
}

// WriteCSV writes one row per set, entries in store order. Entries without a
// category get the one resolved from the catalog.
func WriteCSV(w io.Writer, entries []workouts.Entry, cat catalog.Catalog) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = cat.CategoryOrFallback(e.Exercise)
		}
		for i, set := range e.Sets {
			row := []string{
				e.Date.String(),
				e.Exercise,
				category,
				strconv.Itoa(i + 1),
				strconv.FormatFloat(set.Weight, 'f', -1, 64),
				strconv.Itoa(set.Reps),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("write csv row for entry %d: %w", e.ID, err)
			}
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
