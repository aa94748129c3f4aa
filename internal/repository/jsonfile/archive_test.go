package jsonfile

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shark/internal/domain"
	"shark/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRepo_AppendAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	repo := NewArchiveRepo(path, testutil.NewTestLogger())

	first := domain.WordSet{}
	second := domain.WordSet{{Word: "cat", Translation: "кот"}}
	third := domain.WordSet{{Word: "dog", Translation: "пёс"}, {Word: "dog", Translation: "пёс"}}

	require.NoError(t, repo.Append(first))
	require.NoError(t, repo.Append(second))
	require.NoError(t, repo.Append(third))

	snaps := repo.List(0)
	require.Len(t, snaps, 3)
	assert.Equal(t, third, snaps[0].Words)
	assert.Equal(t, second, snaps[1].Words)
	assert.Equal(t, domain.WordSet{}, snaps[2].Words)

	for _, s := range snaps {
		assert.NotEmpty(t, s.ID)
		assert.False(t, s.ArchivedAt.IsZero())
	}
	assert.NotEqual(t, snaps[0].ID, snaps[1].ID)
}

func TestArchiveRepo_Append_NilSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	repo := NewArchiveRepo(path, testutil.NewTestLogger())

	require.NoError(t, repo.Append(nil))

	snaps := repo.List(0)
	require.Len(t, snaps, 1)
	assert.Empty(t, snaps[0].Words)
}

func TestArchiveRepo_EveryLineIsADocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	repo := NewArchiveRepo(path, testutil.NewTestLogger())
	repo.now = func() time.Time { return time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC) }

	require.NoError(t, repo.Append(domain.WordSet{{Word: "cat", Translation: "кот"}}))
	require.NoError(t, repo.Append(domain.WordSet{{Word: "dog", Translation: "пёс"}}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		assert.Equal(t, "2024-06-15T09:30:00Z", rec["archived_at"])
		assert.Contains(t, rec, "words")
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 2, lines)
}

func TestArchiveRepo_List_Limit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	repo := NewArchiveRepo(path, testutil.NewTestLogger())

	for _, w := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Append(domain.WordSet{{Word: w, Translation: w}}))
	}

	snaps := repo.List(2)
	require.Len(t, snaps, 2)
	assert.Equal(t, "c", snaps[0].Words[0].Word)
	assert.Equal(t, "b", snaps[1].Words[0].Word)
}

func TestArchiveRepo_List_MissingFile(t *testing.T) {
	repo := NewArchiveRepo(filepath.Join(t.TempDir(), "archive.json"), testutil.NewTestLogger())
	assert.Empty(t, repo.List(0))
}

func TestArchiveRepo_List_LegacyConcatenatedDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	legacy := `{"words":[]}{"words":[{"word":"cat","translation":"кот"}]}{"words":["dog"]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	repo := NewArchiveRepo(path, testutil.NewTestLogger())
	require.NoError(t, repo.Append(domain.WordSet{{Word: "bird", Translation: "птица"}}))

	snaps := repo.List(0)
	require.Len(t, snaps, 4)
	assert.Equal(t, domain.WordSet{{Word: "bird", Translation: "птица"}}, snaps[0].Words)
	assert.False(t, snaps[0].Legacy())
	assert.Equal(t, domain.WordSet{{Word: "dog"}}, snaps[1].Words)
	assert.True(t, snaps[1].Legacy())
	assert.Equal(t, domain.WordSet{{Word: "cat", Translation: "кот"}}, snaps[2].Words)
	assert.Empty(t, snaps[3].Words)
}

func TestArchiveRepo_List_SkipsBadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	content := `{"words":[{"word":"cat","translation":"кот"}]}
[1,2,3]
{"id":"x","archived_at":"not a time","words":["dog"]}
{"words":[{"word":"bro`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo := NewArchiveRepo(path, testutil.NewTestLogger())
	snaps := repo.List(0)

	require.Len(t, snaps, 2)
	assert.Equal(t, "x", snaps[0].ID)
	assert.True(t, snaps[0].ArchivedAt.IsZero())
	assert.Equal(t, domain.WordSet{{Word: "dog"}}, snaps[0].Words)
	assert.Equal(t, domain.WordSet{{Word: "cat", Translation: "кот"}}, snaps[1].Words)
}

func TestArchiveRepo_List_TornRecordInTheMiddle(t *testing.T) {
	tests := []struct {
		name string
		torn string
	}{
		{name: "torn line with newline", torn: `{"id":"x","words":[{"wo` + "\n"},
		{name: "torn line without newline", torn: `{"id":"x","words":[{"wo`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "archive.json")
			repo := NewArchiveRepo(path, testutil.NewTestLogger())

			require.NoError(t, repo.Append(testutil.NewTestWords("old", "1")))

			f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
			require.NoError(t, err)
			_, err = f.WriteString(tt.torn)
			require.NoError(t, err)
			require.NoError(t, f.Close())

			require.NoError(t, repo.Append(testutil.NewTestWords("new1", "2")))
			require.NoError(t, repo.Append(testutil.NewTestWords("new2", "3")))

			snaps := repo.List(0)

			require.Len(t, snaps, 3)
			assert.Equal(t, testutil.NewTestWords("new2", "3"), snaps[0].Words)
			assert.Equal(t, testutil.NewTestWords("new1", "2"), snaps[1].Words)
			assert.Equal(t, testutil.NewTestWords("old", "1"), snaps[2].Words)
		})
	}
}

func TestEachRecord(t *testing.T) {
	input := "{\"a\":1}{\"b\":2}\n\n[1,\n{\"c\":3}\n"

	var values []string
	var errs int
	err := EachRecord(strings.NewReader(input), func(raw json.RawMessage, err error) {
		if err != nil {
			errs++
			return
		}
		values = append(values, string(raw))
	})

	require.NoError(t, err)
	assert.Equal(t, []string{`{"a":1}`, `{"b":2}`, `{"c":3}`}, values)
	assert.Equal(t, 1, errs)
}

func TestArchiveRepo_Append_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	repo := NewArchiveRepo(filepath.Join(blocker, "archive.json"), testutil.NewTestLogger())
	assert.Error(t, repo.Append(domain.WordSet{}))
}

func TestArchiveRepo_Append_PathIsDirectory(t *testing.T) {
	repo := NewArchiveRepo(t.TempDir(), testutil.NewTestLogger())
	assert.Error(t, repo.Append(domain.WordSet{}))
}
