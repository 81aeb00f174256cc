package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New[int](nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New([][]int{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New([][]int{{}, {}, {}})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrNonRectangular)
	var mg *MalformedGridError
	require.True(t, errors.As(err, &mg))
	assert.Equal(t, MalformedGridError{Row: 1, Want: 2, Got: 1}, *mg)

	// An empty first row followed by cells is ragged, not empty.
	_, err = ParseRunes([]string{"", "abc"})
	require.ErrorIs(t, err, ErrNonRectangular)
	assert.NotErrorIs(t, err, ErrEmptyGrid)
	require.True(t, errors.As(err, &mg))
	assert.Equal(t, MalformedGridError{Row: 1, Want: 0, Got: 3}, *mg)
}

func TestConvert(t *testing.T) {
	runes, err := ParseRunes([]string{"#.", ".#"})
	require.NoError(t, err)
	walls, err := Convert(runes, func(_ Pos, r rune) (bool, error) { return r == '#', nil })
	require.NoError(t, err)
	assert.Equal(t, 2, walls.Rows())
	assert.Equal(t, 2, walls.Cols())
	assert.Equal(t, []Pos{{0, 0}, {1, 1}}, walls.FindAll(func(w bool) bool { return w }))

	errWall := errors.New("wall")
	_, err = Convert(runes, func(_ Pos, r rune) (bool, error) {
		if r == '#' {
			return false, errWall
		}
		return true, nil
	})
	require.ErrorIs(t, err, ErrBadCell)
	assert.ErrorIs(t, err, errWall)
	assert.Contains(t, err.Error(), "(0,0)")
}

func TestParse_KeepsDecoderError(t *testing.T) {
	errOdd := errors.New("odd digit")
	_, err := Parse([]string{"24", "83"}, func(r rune, _ Pos) (int, error) {
		if (r-'0')%2 == 1 {
			return 0, errOdd
		}
		return int(r - '0'), nil
	})
	require.ErrorIs(t, err, ErrBadCell)
	assert.ErrorIs(t, err, errOdd)
	assert.Contains(t, err.Error(), "(1,1)")
}

func TestNew_DeepCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := New(src)
	require.NoError(t, err)
	src[0][0] = 99

	v, ok := g.Get(Pos{0, 0})
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

// TestGet_Bounds checks every position inside returns the parsed cell and a
// ring of positions outside returns absent.
func TestGet_Bounds(t *testing.T) {
	lines := []string{"abc", "def"}
	g, err := ParseRunes(lines)
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())

	for y, line := range lines {
		for x, r := range line {
			v, ok := g.Get(Pos{y, x})
			assert.True(t, ok)
			assert.Equal(t, r, v)
		}
	}

	for y := -2; y <= g.Rows()+1; y++ {
		for x := -2; x <= g.Cols()+1; x++ {
			p := Pos{y, x}
			if g.InBounds(p) {
				continue
			}
			v, ok := g.Get(p)
			assert.False(t, ok, "Get(%v) should be absent", p)
			assert.Zero(t, v)
		}
	}
}

func TestParseDigits(t *testing.T) {
	g, err := ParseDigits[int]([]string{"123", "456"})
	require.NoError(t, err)
	v, _ := g.Get(Pos{1, 2})
	assert.Equal(t, 6, v)

	_, err = ParseDigits[int]([]string{"12x"})
	require.ErrorIs(t, err, ErrBadCell)
	assert.Contains(t, err.Error(), "(0,2)")

	_, err = ParseDigits[uint8]([]string{"12", "345"})
	assert.ErrorIs(t, err, ErrNonRectangular)
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := New([][]int{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		p := g.Coordinate(i)
		assert.Equal(t, i, g.Index(p))
		v, _ := g.Get(p)
		assert.Equal(t, i, v)
	}
}

func TestNeighbors(t *testing.T) {
	g, err := New([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	assert.Equal(t, []Pos{{0, 1}, {1, 0}}, g.Neighbors(Pos{0, 0}, Conn4))
	assert.Len(t, g.Neighbors(Pos{1, 1}, Conn4), 4)
	assert.Len(t, g.Neighbors(Pos{1, 1}, Conn8), 8)
	assert.Len(t, g.Neighbors(Pos{0, 0}, Conn8), 3)
	assert.Empty(t, g.Neighbors(Pos{-5, -5}, Conn4))
}

func TestFindAndEdges(t *testing.T) {
	g, err := ParseRunes([]string{"..S", "S.."})
	require.NoError(t, err)

	p, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(t, ok)
	assert.Equal(t, Pos{0, 2}, p)
	assert.Equal(t, []Pos{{0, 2}, {1, 0}}, g.FindAll(func(r rune) bool { return r == 'S' }))

	_, ok = g.Find(func(r rune) bool { return r == '#' })
	assert.False(t, ok)

	edges := g.Edges()
	assert.Len(t, edges, 2*(2+3))
	for _, e := range edges {
		assert.True(t, g.InBounds(e.Pos))
		assert.False(t, g.InBounds(e.Dir.Opposite().Step(e.Pos)), "%v should face inward", e)
	}
}

func TestOverlay_NonDestructive(t *testing.T) {
	g, err := ParseRunes([]string{"ab", "cd"})
	require.NoError(t, err)

	o1 := g.With(Pos{0, 0}, 'X')
	o2 := o1.With(Pos{1, 1}, 'Y')
	o3 := o2.With(Pos{9, 9}, 'Z')

	v, _ := g.Get(Pos{0, 0})
	assert.Equal(t, 'a', v)
	v, _ = o1.Get(Pos{0, 0})
	assert.Equal(t, 'X', v)
	v, _ = o1.Get(Pos{1, 1})
	assert.Equal(t, 'd', v, "earlier overlay must not see later replacements")
	v, _ = o2.Get(Pos{1, 1})
	assert.Equal(t, 'Y', v)

	_, ok := o3.Get(Pos{9, 9})
	assert.False(t, ok, "out-of-bounds replacement is ignored")
	assert.Equal(t, 2, o3.Rows())
	assert.Equal(t, 2, o3.Cols())

	var r Reader[rune] = o2
	_, ok = r.Get(Pos{-1, 0})
	assert.False(t, ok)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"ab", "cd"}, Lines("ab\r\ncd\r\n\n\n"))
	assert.Empty(t, Lines(""))

	got, err := ReadLines(strings.NewReader("x\r\ny\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)
}
