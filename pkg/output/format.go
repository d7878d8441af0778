// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"strings"

	"github.com/finwerk/fincalc/internal/calc"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []calc.Result) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Name                 | Operation | Result\n")
	fmt.Printf("____                 | _________ | ______\n")
	for _, result := range results {
		_, _ = p.Printf("%-20s | %-9s | %s\n", result.Name, result.Operation, renderValue(result))
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []calc.Result) {
	fmt.Printf("\"name\",\"operation\",\"result\",\"error\"\n")
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("\"%s\",\"%s\",\"\",\"%s\"\n", result.Name, result.Operation, result.Err)
			continue
		}
		fmt.Printf("\"%s\",\"%s\",\"%s\",\"\"\n", result.Name, result.Operation, plainValue(result))
	}
}

func renderValue(result calc.Result) string {
	if result.Err != nil {
		return fmt.Sprintf("error: %s", result.Err)
	}
	return plainValue(result)
}

func plainValue(result calc.Result) string {
	if result.Values != nil {
		rendered := make([]string, len(result.Values))
		for i, value := range result.Values {
			rendered[i] = fmt.Sprintf("%.2f", value)
		}
		return strings.Join(rendered, " ")
	}
	return fmt.Sprintf("%.2f", result.Value)
}
