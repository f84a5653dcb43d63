package tools

import "testing"

func TestParseSizeArgument(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{name: "json number", value: float64(3), want: 3},
		{name: "int", value: 7, want: 7},
		{name: "fractional", value: 2.5, wantErr: true},
		{name: "zero", value: float64(0), wantErr: true},
		{name: "negative", value: float64(-4), wantErr: true},
		{name: "missing", value: nil, wantErr: true},
		{name: "string", value: "3", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseSizeArgument(tc.value)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got %d", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
