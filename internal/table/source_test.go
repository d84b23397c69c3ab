package table

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personsCSV = "id,name,surname\n1,Adam,Kowalski\n2,Seth,McFarlane\n"

func TestNewSource(t *testing.T) {
	t.Parallel()

	t.Run("reads header fields in order", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader(personsCSV))
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name", "surname"}, src.Fields())
	})

	t.Run("empty input has nil fields", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader(""))
		require.NoError(t, err)
		assert.Nil(t, src.Fields())

		rows, err := Collect(src)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("header is not trimmed", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader("id, name,surname\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"id", " name", "surname"}, src.Fields())
	})

	t.Run("fields returns a copy", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader(personsCSV))
		require.NoError(t, err)

		f := src.Fields()
		f[0] = "changed"
		assert.Equal(t, "id", src.Fields()[0])
	})

	t.Run("name option", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader(personsCSV), WithName("persons.csv"))
		require.NoError(t, err)
		assert.Equal(t, "persons.csv", src.Name())
	})
}

func TestCSVSourceEach(t *testing.T) {
	t.Parallel()

	t.Run("yields rows keyed by header", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader(personsCSV))
		require.NoError(t, err)

		rows, err := Collect(src)
		require.NoError(t, err)
		assert.Equal(t, []Row{
			{"id": "1", "name": "Adam", "surname": "Kowalski"},
			{"id": "2", "name": "Seth", "surname": "McFarlane"},
		}, rows)
	})

	t.Run("handles CRLF line endings without blank rows", func(t *testing.T) {
		t.Parallel()

		input := "id,name,surname\r\n1,Adam,Kowalski\r\n\r\n2,Seth,McFarlane\r\n"
		src, err := NewSource(strings.NewReader(input))
		require.NoError(t, err)

		rows, err := Collect(src)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Kowalski", rows[0]["surname"])
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader("id,name,surname\n1,Adam,Kowalski"))
		require.NoError(t, err)

		rows, err := Collect(src)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Kowalski", rows[0]["surname"])
	})

	t.Run("quoted cells keep commas and newlines", func(t *testing.T) {
		t.Parallel()

		input := "id,name,surname\n1,\"Adam, Jr.\",\"Kowal\nski\"\n"
		src, err := NewSource(strings.NewReader(input))
		require.NoError(t, err)

		rows, err := Collect(src)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Adam, Jr.", rows[0]["name"])
		assert.Equal(t, "Kowal\nski", rows[0]["surname"])
	})

	t.Run("short rows leave cells absent", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader("id,person_id,site\n1\n"))
		require.NoError(t, err)

		rows, err := Collect(src)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		_, ok := rows[0]["person_id"]
		assert.False(t, ok, "expected person_id to be absent")
		assert.Equal(t, "1", rows[0]["id"])
	})

	t.Run("long rows drop extra cells", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader("id,person_id,site\n1,2,test.pl,extra\n"))
		require.NoError(t, err)

		rows, err := Collect(src)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, Row{"id": "1", "person_id": "2", "site": "test.pl"}, rows[0])
	})

	t.Run("empty cells are present but empty", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader("id,person_id,site\n1,,\n"))
		require.NoError(t, err)

		rows, err := Collect(src)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		v, ok := rows[0]["person_id"]
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("second iteration fails", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader(personsCSV))
		require.NoError(t, err)

		_, err = Collect(src)
		require.NoError(t, err)

		_, err = Collect(src)
		assert.ErrorIs(t, err, ErrSourceConsumed)
	})

	t.Run("callback error stops iteration", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(strings.NewReader(personsCSV))
		require.NoError(t, err)

		stop := errors.New("stop")
		calls := 0
		err = src.Each(func(Row) error {
			calls++
			return stop
		})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 1, calls)
	})

	t.Run("reader errors are wrapped as parse errors", func(t *testing.T) {
		t.Parallel()

		src, err := NewSource(io.MultiReader(
			strings.NewReader("id,name,surname\n1,Adam,Kowalski\n"),
			iotest.ErrReader(errors.New("disk gone")),
		))
		require.NoError(t, err)

		_, err = Collect(src)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, pe.Error(), "disk gone")
	})
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("bare quote")

	assert.Equal(t, "malformed CSV at line 3: bare quote", (&ParseError{Line: 3, Err: cause}).Error())
	assert.Equal(t, "malformed CSV: bare quote", (&ParseError{Err: cause}).Error())
	assert.ErrorIs(t, &ParseError{Err: cause}, cause)
}

func TestWrapParseError(t *testing.T) {
	t.Parallel()

	err := wrapParseError(&csv.ParseError{StartLine: 2, Line: 4, Column: 1, Err: csv.ErrQuote})

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Line)
	assert.ErrorIs(t, err, csv.ErrQuote)
}
