// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"
	"strconv"
)

// SortIds sorts ids numerically when both are numbers and lexically otherwise
func SortIds(ids []string) {
	sortIds(ids)
}

func sortIds(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, ea := strconv.ParseFloat(ids[i], 64)
		b, eb := strconv.ParseFloat(ids[j], 64)
		if ea == nil && eb == nil {
			if a != b {
				return a < b
			}
		}
		return ids[i] < ids[j]
	})
}
