package tips

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTmpTips(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tips.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewFileRepo_LoadsValidTable(t *testing.T) {
	path := writeTmpTips(t, `{
		"Lodhi Garden": {"vibe": "calm", "universal_tip": "enter from gate 1"},
		"Dilli Haat": {"vibe": "crafts", "universal_tip": "eat at the stalls", "warning": "fixed-ish prices"}
	}`)

	repo, err := NewFileRepo(path)
	if err != nil {
		t.Fatal(err)
	}

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d entries, want 2", len(all))
	}
	// порядок стабильный, по имени
	if all[0].Landmark != "Dilli Haat" || all[1].Landmark != "Lodhi Garden" {
		t.Fatalf("unexpected order: %q, %q", all[0].Landmark, all[1].Landmark)
	}
	if all[0].Warning != "fixed-ish prices" {
		t.Fatalf("warning lost: %+v", all[0])
	}
}

func TestNewFileRepo_MissingFieldFailsWholeLoad(t *testing.T) {
	path := writeTmpTips(t, `{
		"Lodhi Garden": {"vibe": "calm", "universal_tip": "enter from gate 1"},
		"Broken Place": {"vibe": "whatever"}
	}`)

	if _, err := NewFileRepo(path); err == nil {
		t.Fatal("expected load failure on entry without universal_tip")
	}
}

func TestNewFileRepo_MalformedJSON(t *testing.T) {
	path := writeTmpTips(t, `{not json`)

	if _, err := NewFileRepo(path); err == nil {
		t.Fatal("expected load failure on malformed json")
	}
}

func TestNewFileRepo_MissingFile(t *testing.T) {
	if _, err := NewFileRepo(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected load failure on missing file")
	}
}

func TestNewFileRepo_EmptyTable(t *testing.T) {
	path := writeTmpTips(t, `{}`)

	if _, err := NewFileRepo(path); err == nil {
		t.Fatal("expected load failure on empty table")
	}
}

// Таблица из репозитория должна грузиться и отвечать на пример из README-сценария.
func TestShippedTable_HauzKhasVillage(t *testing.T) {
	repo, err := NewFileRepo(filepath.Join("..", "..", "delhi_secrets.json"))
	if err != nil {
		t.Fatal(err)
	}

	var want Tip
	all, _ := repo.All(context.Background())
	for _, tip := range all {
		if tip.Landmark == "Hauz Khas Village" {
			want = tip
		}
	}
	if want.Landmark == "" {
		t.Fatal("shipped table has no Hauz Khas Village entry")
	}
	if want.Vibe != "artsy, bohemian, a bit pricey" {
		t.Fatalf("vibe = %q", want.Vibe)
	}

	got, err := NewService(repo).Lookup(context.Background(), "best tip for Hauz Khas Village")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("no match for Hauz Khas Village")
	}
	if got.UniversalTip != want.UniversalTip {
		t.Fatalf("universal_tip mismatch: %q != %q", got.UniversalTip, want.UniversalTip)
	}
}
