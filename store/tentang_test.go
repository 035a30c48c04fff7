package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sidomulyo/models"

	"github.com/google/go-cmp/cmp"
)

var (
	_ TentangRepository = (*TentangStore)(nil)
	_ TentangRepository = (*MemoryTentang)(nil)
)

func newTestTentangStore(t *testing.T) (*TentangStore, *time.Time) {
	t.Helper()
	clock := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	s := NewTentangStore(filepath.Join(t.TempDir(), "tentang.json"))
	s.now = func() time.Time { return clock }
	return s, &clock
}

func TestTentangStore_ReadSeedsDefaults(t *testing.T) {
	s, _ := newTestTentangStore(t)

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != len(models.TentangSections) {
		t.Fatalf("expected %d sections, got %d", len(models.TentangSections), len(got))
	}
	for _, key := range models.TentangSections {
		sec, ok := got[key]
		if !ok {
			t.Fatalf("missing section %s", key)
		}
		if sec.Judul() == "" || sec.UpdatedAt() != "2024-05-01T08:00:00.000Z" {
			t.Fatalf("section %s: judul=%q updatedAt=%q", key, sec.Judul(), sec.UpdatedAt())
		}
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	var onDisk models.Tentang
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("file does not parse: %v", err)
	}
	if diff := cmp.Diff(got, onDisk); diff != "" {
		t.Fatalf("returned value differs from file (-read +file):\n%s", diff)
	}
}

func TestTentangStore_EnsureInitializedKeepsExistingFile(t *testing.T) {
	s, _ := newTestTentangStore(t)
	custom := `{"sejarah": {"id": 3, "judul": "Riwayat", "updatedAt": "x"}}`
	if err := os.WriteFile(s.Path(), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized: %v", err)
	}
	data, _ := os.ReadFile(s.Path())
	if string(data) != custom {
		t.Fatalf("existing file was rewritten: %s", data)
	}
}

func TestTentangStore_EnsureInitializedCreatesFile(t *testing.T) {
	s, _ := newTestTentangStore(t)

	if err := s.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Fatalf("expected file: %v", err)
	}
}

func TestTentangStore_UpdateSectionLeavesOtherSections(t *testing.T) {
	s, clock := newTestTentangStore(t)
	before, err := s.Read()
	if err != nil {
		t.Fatal(err)
	}
	snapshot := map[string]string{}
	for k, v := range before {
		b, _ := json.Marshal(v)
		snapshot[k] = string(b)
	}

	*clock = clock.Add(time.Hour)
	updated, err := s.UpdateSection(models.SectionSejarah, "", func(cur models.TentangSection) (models.TentangSection, error) {
		cur["konten"] = "Sejarah baru"
		return cur, nil
	})
	if err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}
	if updated["konten"] != "Sejarah baru" || updated.UpdatedAt() != "2024-05-01T09:00:00.000Z" {
		t.Fatalf("unexpected section: %#v", updated)
	}

	after, err := s.Read()
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range after {
		if k == models.SectionSejarah {
			continue
		}
		b, _ := json.Marshal(v)
		if string(b) != snapshot[k] {
			t.Errorf("section %s changed:\nbefore %s\nafter  %s", k, snapshot[k], b)
		}
	}
	if after[models.SectionSejarah]["id"] != float64(3) {
		t.Fatalf("section id not preserved: %v", after[models.SectionSejarah]["id"])
	}
}

func TestTentangStore_UpdateSectionRejectsStaleStamp(t *testing.T) {
	s, clock := newTestTentangStore(t)
	seen, err := s.Read()
	if err != nil {
		t.Fatal(err)
	}
	stamp := seen[models.SectionVisiMisi].UpdatedAt()

	*clock = clock.Add(time.Minute)
	if _, err := s.UpdateSection(models.SectionVisiMisi, stamp, func(cur models.TentangSection) (models.TentangSection, error) {
		cur["visi"] = "pertama"
		return cur, nil
	}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	_, err = s.UpdateSection(models.SectionVisiMisi, stamp, func(cur models.TentangSection) (models.TentangSection, error) {
		cur["visi"] = "kedua"
		return cur, nil
	})
	if !errors.Is(err, ErrStaleSection) {
		t.Fatalf("expected ErrStaleSection, got %v", err)
	}
	got, _ := s.Read()
	if got[models.SectionVisiMisi]["visi"] != "pertama" {
		t.Fatalf("stale write was applied: %v", got[models.SectionVisiMisi]["visi"])
	}
}

func TestTentangStore_UpdateSectionAdvancesStampOnFrozenClock(t *testing.T) {
	s, _ := newTestTentangStore(t)
	seen, err := s.Read()
	if err != nil {
		t.Fatal(err)
	}
	stamp := seen[models.SectionSejarah].UpdatedAt()

	var stamps []string
	expected := stamp
	for i := 0; i < 3; i++ {
		next, err := s.UpdateSection(models.SectionSejarah, expected, func(cur models.TentangSection) (models.TentangSection, error) {
			cur["konten"] = fmt.Sprintf("versi %d", i)
			return cur, nil
		})
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		expected = next.UpdatedAt()
		stamps = append(stamps, expected)
	}
	want := []string{"2024-05-01T08:00:00.001Z", "2024-05-01T08:00:00.002Z", "2024-05-01T08:00:00.003Z"}
	if diff := cmp.Diff(want, stamps); diff != "" {
		t.Fatalf("stamps mismatch (-want +got):\n%s", diff)
	}

	_, err = s.UpdateSection(models.SectionSejarah, stamp, func(cur models.TentangSection) (models.TentangSection, error) {
		cur["konten"] = "basi"
		return cur, nil
	})
	if !errors.Is(err, ErrStaleSection) {
		t.Fatalf("expected ErrStaleSection, got %v", err)
	}
}

func TestAdvanceStamp(t *testing.T) {
	cases := []struct{ prev, stamp, want string }{
		{"2024-05-01T08:00:00.000Z", "2024-05-01T09:00:00.000Z", "2024-05-01T09:00:00.000Z"},
		{"2024-05-01T08:00:00.000Z", "2024-05-01T08:00:00.000Z", "2024-05-01T08:00:00.001Z"},
		{"2024-05-01T08:00:00.500Z", "2024-05-01T08:00:00.100Z", "2024-05-01T08:00:00.501Z"},
		{"x", "2024-05-01T08:00:00.000Z", "2024-05-01T08:00:00.000Z"},
	}
	for _, c := range cases {
		if got := advanceStamp(c.prev, c.stamp); got != c.want {
			t.Errorf("advanceStamp(%q, %q) = %q, want %q", c.prev, c.stamp, got, c.want)
		}
	}
}

func TestTentangStore_UpdateSectionUnknownKey(t *testing.T) {
	s, _ := newTestTentangStore(t)
	_, err := s.UpdateSection("kontak", "", func(cur models.TentangSection) (models.TentangSection, error) {
		return cur, nil
	})
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
	if _, err := os.Stat(s.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unknown section should not touch the file, stat err=%v", err)
	}
}

func TestMemoryTentang_MatchesFileShapes(t *testing.T) {
	fileStore, _ := newTestTentangStore(t)
	mem := NewMemoryTentang()
	mem.Now = fileStore.now

	fromFile, err := fileStore.Read()
	if err != nil {
		t.Fatal(err)
	}
	fromMem, err := mem.Read()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(fromFile, fromMem); diff != "" {
		t.Fatalf("memory store differs (-file +mem):\n%s", diff)
	}
}
