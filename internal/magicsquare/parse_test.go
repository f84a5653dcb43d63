package magicsquare

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePayload_SquareKey(t *testing.T) {
	body := []byte(`{"square": [[8,1,6],[3,5,7],[4,9,2]]}`)
	result, err := parsePayload(body, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]int{{8, 1, 6}, {3, 5, 7}, {4, 9, 2}}
	if !reflect.DeepEqual(result.Square, want) {
		t.Fatalf("unexpected square %v", result.Square)
	}
	if result.Size != 3 {
		t.Fatalf("expected size 3, got %d", result.Size)
	}
	if result.Metadata != nil {
		t.Fatalf("metadata should not be set by parsing")
	}
}

func TestParsePayload_PreferredKeyOrder(t *testing.T) {
	body := []byte(`{"data": [[9]], "magic_square": [[1]]}`)
	result, err := parsePayload(body, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Square[0][0] != 1 {
		t.Fatalf("expected magic_square to win over data, got %v", result.Square)
	}
}

func TestParsePayload_NestedSquare(t *testing.T) {
	body := []byte(`{"status": "ok", "payload": {"values": [[2,7,6],[9,5,1],[4,3,8]]}}`)
	result, err := parsePayload(body, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Square) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(result.Square))
	}
}

func TestParsePayload_FloatCells(t *testing.T) {
	body := []byte(`{"square": [[8.0,1.0],[1.0,8.0]]}`)
	result, err := parsePayload(body, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Square[0][0] != 8 {
		t.Fatalf("expected normalized integer, got %v", result.Square[0][0])
	}
}

func TestParsePayload_FractionalCells(t *testing.T) {
	body := []byte(`{"square": [[1.5,2],[3,4]]}`)
	_, err := parsePayload(body, 2)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParsePayload_NotSquareMatrix(t *testing.T) {
	body := []byte(`{"square": [[1,2,3],[4,5,6]]}`)
	_, err := parsePayload(body, 2)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParsePayload_SizeMismatch(t *testing.T) {
	body := []byte(`{"square": [[8,1,6],[3,5,7],[4,9,2]]}`)
	_, err := parsePayload(body, 4)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParsePayload_ReportedSizeFallback(t *testing.T) {
	body := []byte(`{"n": "3", "square": [[8,1,6],[3,5,7],[4,9,2]]}`)
	result, err := parsePayload(body, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Size != 3 {
		t.Fatalf("expected reported size 3, got %d", result.Size)
	}
}

func TestParsePayload_InvalidJSON(t *testing.T) {
	_, err := parsePayload([]byte("not json"), 3)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParsePayload_MissingSquare(t *testing.T) {
	_, err := parsePayload([]byte(`{"status": "ok"}`), 3)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestBuildMetadata_SurfacesNestedDebug(t *testing.T) {
	body := []byte(`{"result": {"square": [[1]], "diagnostics": {"elapsed_ms": 5}}}`)
	meta := buildMetadata(body)
	dbg, ok := meta["debug"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested diagnostics under debug, got %v", meta["debug"])
	}
	if dbg["elapsed_ms"] != float64(5) {
		t.Fatalf("unexpected debug payload %v", dbg)
	}
	if _, ok := meta["result"]; !ok {
		t.Fatalf("full body should be preserved in metadata")
	}
}

func TestBuildMetadata_KeepsExistingDebugKey(t *testing.T) {
	body := []byte(`{"debug": "trace", "logs": ["x"]}`)
	meta := buildMetadata(body)
	if meta["debug"] != "trace" {
		t.Fatalf("existing debug key must not be overwritten, got %v", meta["debug"])
	}
}

func TestBuildMetadata_NonObjectBody(t *testing.T) {
	meta := buildMetadata([]byte(`[[1]]`))
	if _, ok := meta["response"]; !ok {
		t.Fatalf("non-object bodies should be wrapped under response, got %v", meta)
	}
}
