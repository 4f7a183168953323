package crud

import (
	"strconv"
	"strings"
)

// IDListSeparator joins id lists in spreadsheet cells, e.g. "12_7_19".
const IDListSeparator = "_"

// ParseIDList splits an underscore-joined id list. Tokens that are not
// positive integers are discarded and duplicates keep their first position.
func ParseIDList(s string) []int64 {
	ids := []int64{}
	seen := map[int64]struct{}{}
	for _, tok := range strings.Split(s, IDListSeparator) {
		id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// JoinIDList is the inverse of ParseIDList.
func JoinIDList(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, IDListSeparator)
}

// Resolve picks the records referenced by ids out of a batch fetch, in the
// order of ids. Ids without a record are omitted.
func Resolve[T Record](items []T, ids []int64) []T {
	byID := make(map[int64]T, len(items))
	for _, it := range items {
		byID[it.RecordID()] = it
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

// UniqueIDs flattens several id lists into one de-duplicated list.
func UniqueIDs(lists ...[]int64) []int64 {
	seen := map[int64]struct{}{}
	out := []int64{}
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
