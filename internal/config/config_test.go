package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("Output.Format = %q, expected pretty", conf.Output.Format)
	}
	if len(conf.Calculations) != 3 {
		t.Fatalf("len(Calculations) = %d, expected 3", len(conf.Calculations))
	}

	irr := conf.Calculations[0]
	if irr.Name != "project-a" || irr.Operation != "irr" {
		t.Errorf("first calculation = %s/%s, expected project-a/irr", irr.Name, irr.Operation)
	}
	if irr.Depth != 10000 {
		t.Errorf("Depth = %d, expected 10000", irr.Depth)
	}
	if len(irr.CashFlow) != 4 || irr.CashFlow[0] != -500000 {
		t.Errorf("CashFlow = %v, expected 4 flows starting with -500000", irr.CashFlow)
	}

	xirr := conf.Calculations[1]
	if len(xirr.Dates) != 2 || xirr.Guess != 0.1 {
		t.Errorf("xirr calculation = %+v, expected 2 dates and guess 0.1", xirr)
	}

	pv := conf.Calculations[2]
	if pv.Rate != 5 || pv.Amount != 100 || pv.Periods != 1 {
		t.Errorf("pv calculation = %+v, expected rate 5, amount 100, periods 1", pv)
	}
}

func TestParseDateLists(t *testing.T) {
	conf := Configuration{
		Calculations: []Calculation{
			{
				Name:      "dated",
				Operation: "xirr",
				Dates:     []string{"2023-01-01", "2024-01-01"},
			},
			{
				Name:      "undated",
				Operation: "pv",
			},
		},
	}

	if err := conf.ParseDateLists(); err != nil {
		t.Fatalf("ParseDateLists() error = %v", err)
	}

	dated := conf.Calculations[0]
	if len(dated.DateList) != 2 {
		t.Fatalf("len(DateList) = %d, expected 2", len(dated.DateList))
	}
	want := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !dated.DateList[0].Equal(want) {
		t.Errorf("DateList[0] = %v, expected %v", dated.DateList[0], want)
	}

	if conf.Calculations[1].DateList != nil {
		t.Errorf("undated calculation grew a DateList: %v", conf.Calculations[1].DateList)
	}
}

func TestParseDateListsBadDate(t *testing.T) {
	conf := Configuration{
		Calculations: []Calculation{
			{Name: "bad", Operation: "xirr", Dates: []string{"01/01/2023"}},
		},
	}
	if err := conf.ParseDateLists(); err == nil {
		t.Error("ParseDateLists() expected error for malformed date, got nil")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		config           Configuration
		expectedWarnings int
	}{
		{
			name: "Clean configuration",
			config: Configuration{
				Calculations: []Calculation{
					{Name: "a", Operation: "irr", Depth: 100, CashFlow: []float64{-1, 2}},
				},
			},
			expectedWarnings: 0,
		},
		{
			name: "Missing name and operation",
			config: Configuration{
				Calculations: []Calculation{{}},
			},
			expectedWarnings: 2,
		},
		{
			name: "IRR without depth",
			config: Configuration{
				Calculations: []Calculation{
					{Name: "a", Operation: "irr", CashFlow: []float64{-1, 2}},
				},
			},
			expectedWarnings: 1,
		},
		{
			name: "XIRR with mismatched dates",
			config: Configuration{
				Calculations: []Calculation{
					{Name: "a", Operation: "xirr", CashFlow: []float64{-1, 2}, Dates: []string{"2023-01-01"}},
				},
			},
			expectedWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.ValidateConfiguration()
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("ValidateConfiguration() returned %d warnings (%v), expected %d",
					len(warnings), warnings, tt.expectedWarnings)
			}
		})
	}
}
