package confounds

import (
	"fmt"
	"strings"

	"github.com/neurokit/confounds/table"
)

// checkColumns verifies every expected column exists in the raw table,
// returning ErrMissingColumn (wrapped with the category and the first
// offending name) otherwise. It always inspects the raw table, never a
// partially built result.
func checkColumns(raw *table.Table, names []string, c Category) error {
	for _, name := range names {
		if !raw.Has(name) {
			return fmt.Errorf("%s: %q: %w", c, name, ErrMissingColumn)
		}
	}

	return nil
}

// findByKeyword collects, per keyword, every raw column whose name
// contains the keyword as a substring, preserving raw-table column
// order within each keyword and keyword input order across them.
// A keyword with zero matches yields ErrNoMatchingColumn.
func findByKeyword(raw *table.Table, keywords []string) ([]string, error) {
	var found []string
	for _, key := range keywords {
		matched := false
		for _, name := range raw.Names() {
			if strings.Contains(name, key) {
				found = append(found, name)
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("%q: %w", key, ErrNoMatchingColumn)
		}
	}

	return found, nil
}

// labelCompCor enumerates the indexed component columns
// <prefix>_comp_cor_NN for NN = 0..n (zero-padded to two digits) and
// returns those present in the raw table. Absent indices are reported
// as diagnostics, not errors.
func labelCompCor(raw *table.Table, prefix string, n int) ([]string, []Diagnostic) {
	var cols []string
	var diags []Diagnostic
	for nn := 0; nn <= n; nn++ {
		name := fmt.Sprintf("%s_comp_cor_%02d", prefix, nn)
		if !raw.Has(name) {
			diags = append(diags, Diagnostic{Category: CompCor, Column: name})

			continue
		}
		cols = append(cols, name)
	}

	return cols, diags
}
