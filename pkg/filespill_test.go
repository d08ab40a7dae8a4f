package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSpill[T any](t *testing.T) FileSpill[T] {
	t.Helper()

	spill, err := NewFileSpill[T](filepath.Join(t.TempDir(), "nested", "spill.gob"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = spill.Close() })

	return spill
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "spill.gob")

		spill, err := NewFileSpill[int](path)
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, path, spill.Path())
		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill := newTestSpill[string](t)

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val1, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, "first", val1)

		val2, err := spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "second", val2)

		val3, err := spill.Get(3)
		require.Error(t, err)
		require.Equal(t, "", val3)
	})

	t.Run("Len and AppendBatch", func(t *testing.T) {
		spill := newTestSpill[int](t)
		require.Equal(t, uint64(0), spill.Len())

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range iterates all items in order", func(t *testing.T) {
		spill := newTestSpill[int](t)
		require.NoError(t, spill.AppendBatch([]int{10, 20, 30}))

		var got []int
		err := spill.Range(func(_ uint64, item int) error {
			got = append(got, item)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []int{10, 20, 30}, got)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill := newTestSpill[int](t)
		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop")
		calls := 0
		err := spill.Range(func(index uint64, _ int) error {
			calls++
			if index == 1 {
				return stop
			}
			return nil
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 2, calls)
	})

	t.Run("struct items with maps survive a round trip", func(t *testing.T) {
		type record struct {
			Name  string
			Files map[string][]byte
		}

		spill := newTestSpill[record](t)
		require.NoError(t, spill.Append(record{Name: "a", Files: map[string][]byte{"x.txt": []byte("x")}}))
		require.NoError(t, spill.Append(record{Name: "b"}))

		second, err := spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "b", second.Name)
		require.Nil(t, second.Files)
	})

	t.Run("Close prevents further appends", func(t *testing.T) {
		spill := newTestSpill[int](t)
		require.NoError(t, spill.Close())
		require.ErrorIs(t, spill.Append(1), ErrReadOnly)
		require.NoError(t, spill.Close())
	})
}

func TestOpenFileSpill(t *testing.T) {
	t.Run("reads records written by a previous spill", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "spill.gob")

		writer, err := NewFileSpill[string](path)
		require.NoError(t, err)
		require.NoError(t, writer.AppendBatch([]string{"a", "b"}))
		require.NoError(t, writer.Close())

		reader, err := OpenFileSpill[string](path)
		require.NoError(t, err)
		defer reader.Close()

		require.Equal(t, uint64(2), reader.Len())

		got, err := reader.Get(1)
		require.NoError(t, err)
		require.Equal(t, "b", got)
		require.ErrorIs(t, reader.Append("c"), ErrReadOnly)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := OpenFileSpill[string](filepath.Join(t.TempDir(), "missing.gob"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "spill.gob")
		require.NoError(t, os.WriteFile(path, []byte("not gob at all"), 0o600))

		_, err := OpenFileSpill[string](path)
		require.Error(t, err)
	})
}
