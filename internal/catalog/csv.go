package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column headers expected in the exported skill table. Matching is
// case-insensitive and ignores surrounding whitespace.
const (
	colName           = "skill name"
	colPath           = "path"
	colDescription    = "description"
	colTier           = "tier"
	colLimitations    = "limitations"
	colPhysRep        = "phys rep"
	colPrerequisite   = "prerequisite"
	colUsesBase       = "uses base per day"
	colUsesPerTier    = "uses per extra tier"
	colUsesScaleStart = "uses scale start tier"
	colPeriodicity    = "periodicity"
	colPerMilestone1  = "per milestone 1"
	colPerMilestone2  = "per milestone 2"
)

// LoadCSV reads the skill table from r and builds a catalog.
// Rows missing a skill name or path are dropped; numeric fields that fail to
// parse default to 0. The data source is an uncontrolled spreadsheet export,
// so per-cell problems never fail the load.
func LoadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows tolerated

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols[colName]; !ok {
		return nil, fmt.Errorf("catalog header missing %q column", colName)
	}
	if _, ok := cols[colPath]; !ok {
		return nil, fmt.Errorf("catalog header missing %q column", colPath)
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var skills []Skill
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		name := cell(row, colName)
		path := cell(row, colPath)
		if name == "" || path == "" {
			continue
		}

		skills = append(skills, Skill{
			Path:         path,
			Name:         name,
			Tier:         parseInt(cell(row, colTier)),
			Description:  cell(row, colDescription),
			Limitations:  cell(row, colLimitations),
			PhysRep:      cell(row, colPhysRep),
			Prerequisite: cell(row, colPrerequisite),
			Uses: UsageParams{
				BasePerDay:     parseFloat(cell(row, colUsesBase)),
				PerExtraTier:   parseFloat(cell(row, colUsesPerTier)),
				ScaleStartTier: parseInt(cell(row, colUsesScaleStart)),
				Periodicity:    cell(row, colPeriodicity),
				PerMilestone1:  parseYesNo(cell(row, colPerMilestone1)),
				PerMilestone2:  parseYesNo(cell(row, colPerMilestone2)),
			},
		})
	}

	return New(skills)
}

// LoadCSVFile loads a catalog from the file at path.
func LoadCSVFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
