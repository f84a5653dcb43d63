package magicsquare

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// Keys the MATLAB API has been observed to use for the square payload.
// Probed in order before falling back to a generic scan, so the parser
// stays resilient to schema changes on the remote side.
var preferredSquareKeys = []string{
	"magic_square",
	"magicSquare",
	"square",
	"result",
	"data",
	"output",
}

var sizeKeys = []string{"size", "n", "order"}

var debugKeys = []string{"debug", "logs", "diagnostics", "metadata"}

// parsePayload extracts the magic square from an arbitrary JSON body and
// cross-checks its order against requestedSize. All failures wrap
// ErrMalformed.
func parsePayload(body []byte, requestedSize int) (Result, error) {
	if !gjson.ValidBytes(body) {
		return Result{}, fmt.Errorf("%w: body is not valid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(body)

	matrix, ok := extractSquare(root)
	if !ok {
		return Result{}, fmt.Errorf("%w: no square matrix found in response", ErrMalformed)
	}
	if len(matrix) != len(matrix[0]) {
		return Result{}, fmt.Errorf("%w: matrix is %dx%d, not square",
			ErrMalformed, len(matrix), len(matrix[0]))
	}

	size := requestedSize
	if size == 0 {
		if reported := extractSize(root); reported > 0 {
			size = reported
		} else {
			size = len(matrix)
		}
	}
	if size != len(matrix) {
		return Result{}, fmt.Errorf("%w: requested size %d but service returned a %dx%d matrix",
			ErrMalformed, size, len(matrix), len(matrix))
	}

	return Result{Size: size, Square: matrix}, nil
}

// extractSquare walks the payload looking for a rectangular integer matrix,
// probing preferred keys before scanning every value in document order.
func extractSquare(value gjson.Result) ([][]int, bool) {
	switch {
	case value.IsObject():
		for _, key := range preferredSquareKeys {
			if child := value.Get(key); child.Exists() {
				if matrix, ok := extractSquare(child); ok {
					return matrix, true
				}
			}
		}
		return scanChildren(value)
	case value.IsArray():
		if matrix, ok := asMatrix(value); ok {
			return matrix, true
		}
		return scanChildren(value)
	}
	return nil, false
}

func scanChildren(value gjson.Result) ([][]int, bool) {
	var found [][]int
	value.ForEach(func(_, child gjson.Result) bool {
		if matrix, ok := extractSquare(child); ok {
			found = matrix
			return false
		}
		return true
	})
	return found, found != nil
}

// asMatrix accepts a non-empty array of equal-length numeric rows. Cells must
// round cleanly to integers; the MATLAB service reports them as floats.
func asMatrix(value gjson.Result) ([][]int, bool) {
	rows := value.Array()
	if len(rows) == 0 {
		return nil, false
	}
	width := -1
	matrix := make([][]int, 0, len(rows))
	for _, row := range rows {
		if !row.IsArray() {
			return nil, false
		}
		cells := row.Array()
		if width == -1 {
			width = len(cells)
		}
		if len(cells) != width || width == 0 {
			return nil, false
		}
		ints := make([]int, 0, len(cells))
		for _, cell := range cells {
			if cell.Type != gjson.Number {
				return nil, false
			}
			rounded := math.Round(cell.Num)
			if math.Abs(cell.Num-rounded) > 1e-9 {
				return nil, false
			}
			ints = append(ints, int(rounded))
		}
		matrix = append(matrix, ints)
	}
	return matrix, true
}

// extractSize looks for an order reported by the service, accepting numbers
// and digit strings under the usual keys at any object depth.
func extractSize(value gjson.Result) int {
	if !value.IsObject() {
		return 0
	}
	for _, key := range sizeKeys {
		child := value.Get(key)
		switch child.Type {
		case gjson.Number:
			if n := int(child.Num); n > 0 && child.Num == math.Trunc(child.Num) {
				return n
			}
		case gjson.String:
			if n, err := strconv.Atoi(child.Str); err == nil && n > 0 {
				return n
			}
		}
	}
	var found int
	value.ForEach(func(_, child gjson.Result) bool {
		if child.IsObject() {
			if n := extractSize(child); n > 0 {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// extractDebug locates debug-style information nested in the payload.
func extractDebug(value gjson.Result) (gjson.Result, bool) {
	if !value.IsObject() {
		return gjson.Result{}, false
	}
	for _, key := range debugKeys {
		if child := value.Get(key); child.Exists() {
			return child, true
		}
	}
	var found gjson.Result
	ok := false
	value.ForEach(func(_, child gjson.Result) bool {
		if child.IsObject() {
			if dbg, childOK := extractDebug(child); childOK {
				found, ok = dbg, true
				return false
			}
		}
		return true
	})
	return found, ok
}

// buildMetadata returns the full parsed body for debug passthrough, surfacing
// nested debug info under a top-level "debug" key when one is not already
// present.
func buildMetadata(body []byte) map[string]any {
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return map[string]any{"response": root.Value()}
	}
	meta, _ := root.Value().(map[string]any)
	if meta == nil {
		return map[string]any{"response": root.Value()}
	}
	if _, exists := meta["debug"]; !exists {
		if dbg, ok := extractDebug(root); ok {
			meta["debug"] = dbg.Value()
		}
	}
	return meta
}
