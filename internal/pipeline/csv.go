package pipeline

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/kmchale1974/raec-rooms-board-sub000/internal/models"
)

// The reservation system's export is not a stable contract: the delimiter
// changes with the operator's locale settings and the column headings get
// renamed between software updates. Columns are therefore located by
// case-insensitive substring match against known synonym sets, and the
// delimiter is detected by trial parse of the header line.

// logical fields, in the order they are resolved
var headerSynonyms = []struct {
	field    string
	synonyms []string
}{
	{field: "location", synonyms: []string{"location", "building", "site", "venue"}},
	{field: "reservedTime", synonyms: []string{"reserved time", "reservation time", "booked time", "time"}},
	{field: "facility", synonyms: []string{"facility", "resource", "space", "room"}},
	{field: "reservee", synonyms: []string{"reservee", "reserved by", "customer", "renter", "booked by"}},
	{field: "purpose", synonyms: []string{"purpose", "event type", "event", "activity", "description"}},
}

var delimiterCandidates = []rune{',', ';', '\t'}

// ReadExport parses the raw CSV export. It returns the resolved rows and the
// list of logical columns the header failed to provide. A non-empty missing
// list is not an error: the caller degrades to a scaffold board. Only an
// unreadable or structureless file returns an error.
func ReadExport(r io.Reader) ([]models.RawRow, []string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read export: %w", err)
	}
	data = trimBOM(data)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, fmt.Errorf("export file is empty")
	}

	delimiter := detectDelimiter(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse export CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("export contains no records")
	}

	columns, missing := resolveHeader(records[0])
	if len(missing) > 0 {
		return nil, missing, nil
	}

	rows := make([]models.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, models.RawRow{
			Location:     fieldAt(record, columns["location"]),
			Facility:     fieldAt(record, columns["facility"]),
			ReservedTime: fieldAt(record, columns["reservedTime"]),
			Reservee:     fieldAt(record, columns["reservee"]),
			Purpose:      fieldAt(record, columns["purpose"]),
		})
	}

	return rows, nil, nil
}

// detectDelimiter trial-parses the header line with each candidate and keeps
// the one producing the most fields. Comma wins ties by candidate order.
func detectDelimiter(data []byte) rune {
	headerLine := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		headerLine = data[:idx]
	}

	best := ','
	bestFields := 1
	for _, candidate := range delimiterCandidates {
		reader := csv.NewReader(bytes.NewReader(headerLine))
		reader.Comma = candidate
		reader.LazyQuotes = true
		record, err := reader.Read()
		if err != nil {
			continue
		}
		if len(record) > bestFields {
			best = candidate
			bestFields = len(record)
		}
	}
	return best
}

// resolveHeader maps each logical field to a column index. A column claimed
// by one field is skipped by the rest, so "Reserved Time" cannot double as
// the reservee column.
func resolveHeader(header []string) (map[string]int, []string) {
	columns := make(map[string]int)
	claimed := make(map[int]bool)
	var missing []string

	for _, entry := range headerSynonyms {
		found := -1
	search:
		for _, synonym := range entry.synonyms {
			for i, heading := range header {
				if claimed[i] {
					continue
				}
				if strings.Contains(strings.ToLower(strings.TrimSpace(heading)), synonym) {
					found = i
					break search
				}
			}
		}
		if found < 0 {
			missing = append(missing, entry.field)
			continue
		}
		columns[entry.field] = found
		claimed[found] = true
	}

	return columns, missing
}

func fieldAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// trimBOM strips a UTF-8 byte-order mark; the export writes one when the
// vendor software runs on Windows.
func trimBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
