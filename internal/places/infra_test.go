package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleResponse = `{
	"status": "OK",
	"results": [
		{"name": "Social Hauz Khas", "formatted_address": "9-A & 12, Hauz Khas Village, New Delhi", "rating": 4.2},
		{"name": "Deer Park", "formatted_address": "Hauz Khas, New Delhi", "rating": 4.5},
		{"name": "Coast Cafe", "formatted_address": "H-2, Hauz Khas Village, New Delhi", "rating": 4.3},
		{"name": "Fourth Place", "formatted_address": "Somewhere, New Delhi", "rating": 4.0}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *GoogleClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &GoogleClient{
		apiKey:  "test-key",
		baseURL: srv.URL,
		client:  srv.Client(),
	}
}

func TestTextSearch_ParsesResults(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(sampleResponse))
	})

	recs, err := c.TextSearch(context.Background(), "cafes in hauz khas")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 4 {
		t.Fatalf("got %d results", len(recs))
	}
	if recs[0].Name != "Social Hauz Khas" || recs[0].Rating != 4.2 {
		t.Fatalf("first result: %+v", recs[0])
	}
	if !strings.HasSuffix(gotQuery, " in Delhi") {
		t.Fatalf("query without Delhi bias: %q", gotQuery)
	}
}

func TestTextSearch_ZeroResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	recs, err := c.TextSearch(context.Background(), "nothing here")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Fatalf("got %d results, want 0", len(recs))
	}
}

func TestTextSearch_ErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	})

	if _, err := c.TextSearch(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on REQUEST_DENIED")
	}
}

func TestTextSearch_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := c.TextSearch(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestFormatForPrompt_TopThree(t *testing.T) {
	recs := []Recommendation{
		{Name: "A", Address: "addr A", Rating: 4.2},
		{Name: "B", Address: "addr B", Rating: 4.5},
		{Name: "C", Address: "addr C", Rating: 4.3},
		{Name: "D", Address: "addr D", Rating: 4.0},
	}

	out := FormatForPrompt(recs)
	if strings.Count(out, "- Name:") != 3 {
		t.Fatalf("prompt block must keep 3 lines:\n%s", out)
	}
	if strings.Contains(out, "addr D") {
		t.Fatalf("fourth place leaked into prompt:\n%s", out)
	}
}

func TestFormatForPrompt_Empty(t *testing.T) {
	if got := FormatForPrompt(nil); got != "No relevant places found." {
		t.Fatalf("got %q", got)
	}
}

func TestFormatForPrompt_MissingFields(t *testing.T) {
	out := FormatForPrompt([]Recommendation{{Name: "Unrated"}})
	if !strings.Contains(out, "Rating: N/A") || !strings.Contains(out, "Address: N/A") {
		t.Fatalf("missing fields not defaulted:\n%s", out)
	}
}
