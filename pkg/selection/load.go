package selection

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// PeriodSet is a reporting-period collection loaded from disk, the
// input a `periodctl select` run operates on.
type PeriodSet struct {
	DocumentDate time.Time
	Entity       EntityInfo
	Periods      []ReportingPeriod
}

// periodSetFile is the on-disk schema. Dates are YYYY-MM-DD strings;
// YAML and JSON documents both parse (JSON is a YAML subset).
type periodSetFile struct {
	DocumentDate string         `yaml:"document_date"`
	Entity       entityRecord   `yaml:"entity"`
	Periods      []periodRecord `yaml:"periods"`
}

type entityRecord struct {
	FiscalPeriod       string `yaml:"fiscal_period"`
	FiscalYearEndMonth int    `yaml:"fiscal_year_end_month"`
	FiscalYearEndDay   int    `yaml:"fiscal_year_end_day"`
}

type periodRecord struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Kind  string `yaml:"kind"`
	Date  string `yaml:"date"`
	Start string `yaml:"start_date"`
	End   string `yaml:"end_date"`
}

// LoadPeriodSet reads a YAML or JSON reporting-period file.
func LoadPeriodSet(path string) (*PeriodSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read period file %s: %w", path, err)
	}

	set, err := ParsePeriodSet(data)
	if err != nil {
		return nil, fmt.Errorf("parse period file %s: %w", path, err)
	}
	return set, nil
}

// ParsePeriodSet parses raw period-set data.
func ParsePeriodSet(data []byte) (*PeriodSet, error) {
	var file periodSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal period set: %w", err)
	}
	if len(file.Periods) == 0 {
		return nil, fmt.Errorf("no periods defined")
	}

	set := &PeriodSet{
		Entity: EntityInfo{
			FiscalPeriod:       file.Entity.FiscalPeriod,
			FiscalYearEndMonth: time.Month(file.Entity.FiscalYearEndMonth),
			FiscalYearEndDay:   file.Entity.FiscalYearEndDay,
		},
	}

	if file.DocumentDate != "" {
		d, err := time.Parse(dateLayout, file.DocumentDate)
		if err != nil {
			return nil, fmt.Errorf("parse document_date %q: %w", file.DocumentDate, err)
		}
		set.DocumentDate = d
	}

	for i, rec := range file.Periods {
		p, err := rec.toPeriod()
		if err != nil {
			return nil, fmt.Errorf("period %d: %w", i, err)
		}
		set.Periods = append(set.Periods, p)
	}

	return set, nil
}

func (rec periodRecord) toPeriod() (ReportingPeriod, error) {
	if rec.Key == "" {
		return ReportingPeriod{}, fmt.Errorf("missing key")
	}

	p := ReportingPeriod{
		Key:   rec.Key,
		Label: rec.Label,
		Kind:  PeriodKind(rec.Kind),
	}

	switch p.Kind {
	case KindInstant:
		if rec.Date == "" {
			return ReportingPeriod{}, fmt.Errorf("instant period %q: missing date", rec.Key)
		}
		d, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			return ReportingPeriod{}, fmt.Errorf("instant period %q: parse date %q: %w", rec.Key, rec.Date, err)
		}
		p.Date = d

	case KindDuration:
		if rec.Start == "" || rec.End == "" {
			return ReportingPeriod{}, fmt.Errorf("duration period %q: missing start_date or end_date", rec.Key)
		}
		start, err := time.Parse(dateLayout, rec.Start)
		if err != nil {
			return ReportingPeriod{}, fmt.Errorf("duration period %q: parse start_date %q: %w", rec.Key, rec.Start, err)
		}
		end, err := time.Parse(dateLayout, rec.End)
		if err != nil {
			return ReportingPeriod{}, fmt.Errorf("duration period %q: parse end_date %q: %w", rec.Key, rec.End, err)
		}
		if !end.After(start) {
			return ReportingPeriod{}, fmt.Errorf("duration period %q: end_date %s is not after start_date %s", rec.Key, rec.End, rec.Start)
		}
		p.Start = start
		p.End = end

	default:
		return ReportingPeriod{}, fmt.Errorf("period %q: unknown kind %q (valid kinds: %s, %s)", rec.Key, rec.Kind, KindInstant, KindDuration)
	}

	return p, nil
}
