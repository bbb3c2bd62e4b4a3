package store

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
)

// AttemptTotals is an aggregate over question_attempts.
type AttemptTotals struct {
	Answered int
	Correct  int
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// maxParams keeps IN lists below SQLite's host-parameter limit.
const maxParams = 500

// chunkIDs splits ids into slices of at most maxParams.
func chunkIDs(ids []int64) [][]int64 {
	var out [][]int64
	for len(ids) > maxParams {
		out = append(out, ids[:maxParams])
		ids = ids[maxParams:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}
	return out
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
