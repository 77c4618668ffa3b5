package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Default(t *testing.T) {
	a, err := Validate(Default)
	require.NoError(t, err)

	assert.Equal(t, 62, a.Len())
	assert.Equal(t, Default, a.String())
	assert.Equal(t, 0, a.FirstLeadingSafe())
	assert.Equal(t, 51, a.LastLeadingSafe())
	assert.Equal(t, "0123456789", a.Disallowed())
	assert.Len(t, a.LeadingSafeChars(), 52)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		chars   string
		wantErr error
	}{
		{name: "empty alphabet", chars: "", wantErr: ErrEmptyAlphabet},
		{name: "only digits", chars: "1234567890", wantErr: ErrNoLeadingSafeCharacter},
		{name: "single digit", chars: "7", wantErr: ErrNoLeadingSafeCharacter},
		{name: "repeated digits", chars: "000111", wantErr: ErrNoLeadingSafeCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Validate(tt.chars)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, a)
		})
	}
}

func TestValidate_Accepted(t *testing.T) {
	tests := []struct {
		name      string
		chars     string
		wantFirst int
		wantLast  int
	}{
		{name: "letters only", chars: "abcd", wantFirst: 0, wantLast: 3},
		{name: "digits trailing", chars: "abcd123", wantFirst: 0, wantLast: 3},
		{name: "digits leading", chars: "123abcd", wantFirst: 3, wantLast: 6},
		{name: "digits interleaved", chars: "a1b2c3d", wantFirst: 0, wantLast: 6},
		{name: "single letter", chars: "z", wantFirst: 0, wantLast: 0},
		{name: "one letter among digits", chars: "012A", wantFirst: 3, wantLast: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Validate(tt.chars)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, a.FirstLeadingSafe())
			assert.Equal(t, tt.wantLast, a.LastLeadingSafe())
		})
	}
}

func TestNew_DropsDuplicates(t *testing.T) {
	a, err := Validate("aabbab")
	require.NoError(t, err)

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "ab", a.String())
	assert.Equal(t, 0, a.Index('a'))
	assert.Equal(t, 1, a.Index('b'))
}

func TestNew_CustomDisallowed(t *testing.T) {
	a, err := New("-abc", "-")
	require.NoError(t, err)

	assert.True(t, a.IsDisallowed('-'))
	assert.False(t, a.IsDisallowed('1'))
	assert.False(t, a.IsLeadingSafe(0))
	assert.True(t, a.IsLeadingSafe(1))
	assert.Equal(t, "abc", a.LeadingSafeChars())

	_, err = New("---", "-")
	assert.ErrorIs(t, err, ErrNoLeadingSafeCharacter)
}

func TestNew_NothingDisallowed(t *testing.T) {
	a, err := New("0123", "")
	require.NoError(t, err)

	assert.Equal(t, 0, a.FirstLeadingSafe())
	assert.Equal(t, 3, a.LastLeadingSafe())
	assert.Empty(t, a.Disallowed())
}

func TestNew_Unicode(t *testing.T) {
	a, err := Validate("äöü")
	require.NoError(t, err)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 'ö', a.Char(1))
	assert.Equal(t, 2, a.Index('ü'))
}

func TestIndex_Missing(t *testing.T) {
	a, err := Validate("abc")
	require.NoError(t, err)

	assert.Equal(t, -1, a.Index('z'))
}

func TestNextLeadingSafe(t *testing.T) {
	a, err := Validate("a1b2c3")
	require.NoError(t, err)

	tests := []struct {
		from int
		want int
	}{
		{from: -5, want: 0},
		{from: 0, want: 0},
		{from: 1, want: 2},
		{from: 2, want: 2},
		{from: 3, want: 4},
		{from: 5, want: -1},
		{from: 6, want: -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, a.NextLeadingSafe(tt.from), "from %d", tt.from)
	}
}

func TestIsLeadingSafe_OutOfRange(t *testing.T) {
	a, err := Validate("ab")
	require.NoError(t, err)

	assert.False(t, a.IsLeadingSafe(-1))
	assert.False(t, a.IsLeadingSafe(2))
}
