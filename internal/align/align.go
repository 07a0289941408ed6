// Package align filters several datasets down to the countries they share,
// after canonicalizing each dataset's country column.
package align

import (
	"fmt"
	"sort"

	"github.com/demopanel/countrystd/internal/countries"
	"github.com/demopanel/countrystd/internal/tabular"
)

// Result contains the output of KeepCommon.
type Result struct {
	// Datasets holds the filtered datasets, same order as the input.
	Datasets []*tabular.Dataset
	// Common is the set of canonical names present in every dataset.
	Common map[string]struct{}
	// Dropped maps dataset name to the sorted distinct resolved names that
	// were present in that dataset but not in Common.
	Dropped map[string][]string
}

// KeepCommon canonicalizes the named column of each dataset, computes the
// intersection of their distinct non-null values, and filters each dataset to
// the rows whose country is in that intersection. Row order and all other
// columns are untouched; the input datasets are never modified.
//
// A dataset missing the requested column is a fatal configuration error.
func KeepCommon(r *countries.Resolver, column string, datasets []*tabular.Dataset) (*Result, error) {
	res := &Result{
		Common:  make(map[string]struct{}),
		Dropped: make(map[string][]string),
	}
	if len(datasets) == 0 {
		return res, nil
	}

	// 1. Standardize every country column, copy-on-write.
	standardized := make([]*tabular.Dataset, len(datasets))
	indexes := make([]int, len(datasets))
	for i, ds := range datasets {
		idx, ok := ds.ColumnIndex(column)
		if !ok {
			return nil, fmt.Errorf("dataset %d (%s): column %q not found", i, ds.Name, column)
		}
		clone := ds.Clone()
		for _, row := range clone.Rows {
			row[idx] = r.Resolve(row[idx])
		}
		standardized[i] = clone
		indexes[i] = idx
	}

	// 2. Intersect the distinct non-null resolved values.
	sets := make([]map[string]struct{}, len(standardized))
	for i, ds := range standardized {
		sets[i] = distinct(ds, indexes[i])
	}
	for name := range sets[0] {
		res.Common[name] = struct{}{}
	}
	for _, set := range sets[1:] {
		for name := range res.Common {
			if _, ok := set[name]; !ok {
				delete(res.Common, name)
			}
		}
	}

	// 3. Filter each dataset to the common set and report what fell out.
	res.Datasets = make([]*tabular.Dataset, len(standardized))
	for i, ds := range standardized {
		idx := indexes[i]
		kept := make([][]*string, 0, len(ds.Rows))
		for _, row := range ds.Rows {
			if row[idx] == nil {
				continue
			}
			if _, ok := res.Common[*row[idx]]; ok {
				kept = append(kept, row)
			}
		}
		res.Datasets[i] = &tabular.Dataset{Name: ds.Name, Columns: ds.Columns, Rows: kept}

		var dropped []string
		for name := range sets[i] {
			if _, ok := res.Common[name]; !ok {
				dropped = append(dropped, name)
			}
		}
		sort.Strings(dropped)
		res.Dropped[ds.Name] = dropped
	}

	return res, nil
}

func distinct(d *tabular.Dataset, idx int) map[string]struct{} {
	set := make(map[string]struct{})
	for _, row := range d.Rows {
		if row[idx] != nil {
			set[*row[idx]] = struct{}{}
		}
	}
	return set
}
