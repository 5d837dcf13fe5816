package report

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Renderer turns a weekly report into an alternative representation.
type Renderer interface {
	RenderWeeks(weeks []WeekSlice) (string, error)
}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

// RenderWeeks writes one block per week: a week header row, a column header
// listing the week's in-month dates, and one row per project. Day columns can
// differ between weeks because boundary weeks only carry in-month dates.
func (t *CsvRendererImpl) RenderWeeks(weeks []WeekSlice) (string, error) {
	data := make([][]string, 0, len(weeks)*8)
	for _, week := range weeks {
		dates := weekDates(week)

		weekHeader := []string{
			"Week " + strconv.Itoa(week.WeekIndex),
			week.StartDate.Format(dateLayout),
			week.EndDate.Format(dateLayout),
		}

		columns := make([]string, 0, len(dates)+4)
		columns = append(columns, "Project")
		columns = append(columns, dates...)
		columns = append(columns, "Total", "Allotted", "Remaining")

		data = append(data, weekHeader, columns)
		for _, row := range week.Rows {
			line := make([]string, 0, len(dates)+4)
			line = append(line, row.ProjectCode)
			for _, date := range dates {
				line = append(line, hoursToString(row.Days[date]))
			}
			line = append(line, hoursToString(row.Total), hoursToString(row.Allotted), hoursToString(row.Remaining))
			data = append(data, line)
		}
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

// weekDates collects the in-month dates of the week in calendar order. All
// rows of one week share the same day map keys, so the first row suffices.
func weekDates(week WeekSlice) []string {
	if len(week.Rows) == 0 {
		return nil
	}
	dates := make([]string, 0, len(week.Rows[0].Days))
	for date := range week.Rows[0].Days {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func hoursToString(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
