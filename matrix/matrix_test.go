package matrix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Dimensions(t *testing.T) {
	t.Parallel()

	for _, backend := range []Backend{BackendZXing, BackendSkip2} {
		backend := backend
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()

			enc, err := New(backend, DefaultOptions)
			require.NoError(t, err)

			grid, err := enc.Encode("hello world", 300, 300)
			require.NoError(t, err)
			assert.Equal(t, 300, grid.Width())
			assert.Equal(t, 300, grid.Height())

			// margin of two modules keeps the corners light
			assert.False(t, grid.At(0, 0))
			assert.False(t, grid.At(299, 299))

			dark := 0
			for y := 0; y < grid.Height(); y++ {
				for x := 0; x < grid.Width(); x++ {
					if grid.At(x, y) {
						dark++
					}
				}
			}
			assert.Positive(t, dark)
		})
	}
}

func TestEncode_BackendsAgree(t *testing.T) {
	t.Parallel()

	// Both libraries pick version 1 for short text; the quiet zone and scaling
	// must land modules at the same pixel rows for the finder patterns.
	zx, err := New(BackendZXing, DefaultOptions)
	require.NoError(t, err)
	sk, err := New(BackendSkip2, DefaultOptions)
	require.NoError(t, err)

	a, err := zx.Encode("abc", 300, 300)
	require.NoError(t, err)
	b, err := sk.Encode("abc", 300, 300)
	require.NoError(t, err)

	// 21 modules + 2*2 margin = 25, scaled by 12 leaves 24px of padding
	for _, g := range []*Grid{a, b} {
		assert.Equal(t, 300, g.Width())
		assert.False(t, g.At(23, 23))
		assert.True(t, g.At(24, 24))   // finder outer ring
		assert.False(t, g.At(36, 36))  // finder separator ring
		assert.True(t, g.At(60, 60))   // finder center
		assert.True(t, g.At(275, 24))  // top-right finder
		assert.False(t, g.At(276, 24)) // padding
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backend Backend
		opts    Options
		text    string
		width   int
	}{
		{name: "zxing empty", backend: BackendZXing, opts: DefaultOptions, text: "", width: 300},
		{name: "skip2 empty", backend: BackendSkip2, opts: DefaultOptions, text: "", width: 300},
		{name: "negative size", backend: BackendZXing, opts: DefaultOptions, text: "a", width: -1},
		{name: "zxing too long", backend: BackendZXing, opts: Options{CharacterSet: "UTF-8", ErrorCorrection: LevelH, Margin: 2}, text: strings.Repeat("a", 3000), width: 300},
		{name: "skip2 too long", backend: BackendSkip2, opts: Options{CharacterSet: "UTF-8", ErrorCorrection: LevelH, Margin: 2}, text: strings.Repeat("a", 3000), width: 300},
		{name: "skip2 unknown charset", backend: BackendSkip2, opts: Options{CharacterSet: "no-such-charset", ErrorCorrection: LevelM}, text: "a", width: 300},
		{name: "bad level", backend: BackendZXing, opts: Options{CharacterSet: "UTF-8", ErrorCorrection: Level(9)}, text: "a", width: 300},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			enc, err := New(tt.backend, tt.opts)
			require.NoError(t, err)

			grid, err := enc.Encode(tt.text, tt.width, tt.width)
			require.ErrorIs(t, err, ErrEncode)
			assert.Nil(t, grid)
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	_, err := New("qrgen", DefaultOptions)
	require.ErrorIs(t, err, ErrEncode)

	_, err = New(BackendZXing, Options{Margin: -1})
	require.ErrorIs(t, err, ErrEncode)
}

func TestRender(t *testing.T) {
	t.Parallel()

	modules := [][]bool{
		{true, false},
		{false, true},
	}

	t.Run("scaled and centered", func(t *testing.T) {
		t.Parallel()

		// qrWidth = 2 + 2*1 = 4, multiple = 10/4 = 2, padding = (10-4)/2 = 3
		g := render(modules, 10, 10, 1)
		assert.Equal(t, 10, g.Width())
		assert.True(t, g.At(3, 3))
		assert.True(t, g.At(4, 4))
		assert.False(t, g.At(5, 3))
		assert.True(t, g.At(5, 5))
		assert.True(t, g.At(6, 6))
		assert.False(t, g.At(2, 2))
		assert.False(t, g.At(7, 7))
	})

	t.Run("grows to fit", func(t *testing.T) {
		t.Parallel()

		g := render(modules, 0, 0, 2)
		assert.Equal(t, 6, g.Width())
		assert.Equal(t, 6, g.Height())
		assert.True(t, g.At(2, 2))
		assert.True(t, g.At(3, 3))
	})

	t.Run("out of range is light", func(t *testing.T) {
		t.Parallel()

		g := render(modules, 4, 4, 0)
		assert.False(t, g.At(-1, 0))
		assert.False(t, g.At(0, 4))
	})
}

func TestLevel_UnmarshalText(t *testing.T) {
	t.Parallel()

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("q")))
	assert.Equal(t, LevelQ, l)
	require.NoError(t, l.UnmarshalText([]byte("High")))
	assert.Equal(t, LevelH, l)
	assert.Error(t, l.UnmarshalText([]byte("X")))

	text, err := LevelM.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "M", string(text))

	var b Backend
	require.NoError(t, b.UnmarshalText([]byte("SKIP2")))
	assert.Equal(t, BackendSkip2, b)
	assert.Error(t, b.UnmarshalText([]byte("rsc")))
}
