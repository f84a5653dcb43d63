package types

type MagicSquareResult struct {
	Size     int            `json:"size"`
	Square   [][]int        `json:"square"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
