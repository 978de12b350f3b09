package roster

import "strings"

// Sentinels substituted for missing fields at display time.
const (
	NoProfile      = "#"
	DefaultPicture = "https://via.placeholder.com/150"
	UnknownName    = "Unknown"
)

// Record is one row of the published sheet.
type Record struct {
	Name       string
	ProfileURL string
	Role       string
	PictureURL string
}

// DisplayName is the name shown on the card and used as its identity for
// search filtering.
func (r Record) DisplayName() string {
	if r.Name == "" {
		return UnknownName
	}
	return r.Name
}

// Profile returns the profile URL or the NoProfile sentinel.
func (r Record) Profile() string {
	if r.ProfileURL == "" {
		return NoProfile
	}
	return r.ProfileURL
}

// Picture returns the picture URL, falling back to placeholder (or
// DefaultPicture when placeholder is empty).
func (r Record) Picture(placeholder string) string {
	if r.PictureURL != "" {
		return r.PictureURL
	}
	if strings.TrimSpace(placeholder) == "" {
		return DefaultPicture
	}
	return placeholder
}

// Column positions within a row.
const (
	colName = iota
	colProfile
	colRole
	colPicture
)

// Parse converts sheet text into records. The first row is a header and is
// discarded. Rows are split on newlines and fields on commas only; quoting is
// not understood, so an embedded comma shifts the remaining fields. Missing
// fields become empty strings and rows whose name trims to empty are dropped.
// Parse never fails.
func Parse(text string) []Record {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	rows := strings.Split(trimmed, "\n")
	if len(rows) < 2 {
		return nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := strings.Split(strings.TrimSuffix(row, "\r"), ",")
		rec := Record{
			Name:       field(fields, colName),
			ProfileURL: field(fields, colProfile),
			Role:       field(fields, colRole),
			PictureURL: field(fields, colPicture),
		}
		if rec.Name == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func field(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
