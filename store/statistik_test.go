package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"sidomulyo/models"

	"github.com/google/go-cmp/cmp"
)

var (
	_ StatistikRepository = (*StatistikStore)(nil)
	_ StatistikRepository = (*MemoryStatistik)(nil)
)

func sampleStatistik() []models.Statistik {
	return []models.Statistik{
		{ID: 1, Kategori: "Penduduk", Label: "Laki-laki", Value: 1200, Color: "#1e88e5"},
		{ID: 2, Kategori: "Penduduk", Label: "Perempuan", Value: 1250},
		{ID: 5, Kategori: "Pendidikan", Label: "SD", Value: 0, Color: "#fff"},
	}
}

func TestStatistikStore_RoundTrip(t *testing.T) {
	s := NewStatistikStore(filepath.Join(t.TempDir(), "statistik.json"))
	want := sampleStatistik()

	if err := s.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(s.TempPath()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file should be gone after write, stat err=%v", err)
	}
}

func TestStatistikStore_ReadMissingFile(t *testing.T) {
	s := NewStatistikStore(filepath.Join(t.TempDir(), "statistik.json"))

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty collection, got %#v", got)
	}
}

func TestStatistikStore_ReadPropagatesParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statistik.json")
	if err := os.WriteFile(path, []byte(`[{"id": 1,`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewStatistikStore(path).Read(); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestStatistikStore_ReadAcceptsHandEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statistik.json")
	content := `[
  // edited on the server
  {"id": 3, "kategori": "Penduduk", "label": "KK", "value": 800,},
]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewStatistikStore(path).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []models.Statistik{{ID: 3, Kategori: "Penduduk", Label: "KK", Value: 800}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStatistikStore_InterruptedWriteKeepsCanonicalFile(t *testing.T) {
	s := NewStatistikStore(filepath.Join(t.TempDir(), "statistik.json"))
	before := sampleStatistik()
	if err := s.Write(before); err != nil {
		t.Fatalf("Write: %v", err)
	}
	canonical, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}

	// Stop after the temp file is written, before the rename.
	if err := s.writeTemp([]models.Statistik{{ID: 9, Kategori: "X", Label: "Y", Value: 1}}); err != nil {
		t.Fatalf("writeTemp: %v", err)
	}

	after, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(canonical) {
		t.Fatalf("canonical file changed:\n%s", after)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(before, got); diff != "" {
		t.Fatalf("collection changed (-want +got):\n%s", diff)
	}
}

func TestStatistikStore_TempPath(t *testing.T) {
	tests := map[string]string{
		"data/statistik.json": "data/statistik.tmp.json",
		"statistik":           "statistik.tmp.json",
	}
	for path, want := range tests {
		if got := NewStatistikStore(path).TempPath(); got != want {
			t.Errorf("TempPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Fatalf("NextID(empty) = %d, want 1", got)
	}
	items := []models.Statistik{{ID: 1}, {ID: 5}, {ID: 3}}
	if got := NextID(items); got != 6 {
		t.Fatalf("NextID = %d, want 6", got)
	}
}

func TestStatistikStore_UpdateSerialisesWriters(t *testing.T) {
	s := NewStatistikStore(filepath.Join(t.TempDir(), "statistik.json"))

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Update(func(items []models.Statistik) ([]models.Statistik, error) {
				return append(items, models.Statistik{
					ID:       s.NextID(items),
					Kategori: "Test",
					Label:    string(rune('A' + i)),
					Value:    i,
				}), nil
			})
			if err != nil {
				t.Errorf("Update: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != writers {
		t.Fatalf("expected %d records, got %d", writers, len(got))
	}
	seen := map[int]bool{}
	for _, it := range got {
		if seen[it.ID] {
			t.Fatalf("duplicate id %d", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestStatistikStore_UpdateErrorLeavesFileUntouched(t *testing.T) {
	s := NewStatistikStore(filepath.Join(t.TempDir(), "statistik.json"))
	if err := s.Write(sampleStatistik()); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := s.Update(func(items []models.Statistik) ([]models.Statistik, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, _ := s.Read()
	if diff := cmp.Diff(sampleStatistik(), got); diff != "" {
		t.Fatalf("collection changed (-want +got):\n%s", diff)
	}
}
