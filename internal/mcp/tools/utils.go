package tools

import (
	"encoding/json"
	"fmt"
	"math"
)

func parseSizeArgument(value any) (int, error) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("size must be an integer")
		}
		if v <= 0 {
			return 0, fmt.Errorf("size must be a positive integer")
		}
		return int(v), nil
	case int:
		if v <= 0 {
			return 0, fmt.Errorf("size must be a positive integer")
		}
		return v, nil
	case nil:
		return 0, fmt.Errorf("size parameter is required")
	default:
		return 0, fmt.Errorf("size must be a number")
	}
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
