package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_UniqueBitsAndCodes(t *testing.T) {
	table := Default()

	bits := make(map[uint64]string)
	codes := make(map[int]string)
	for _, c := range table.Categories {
		for _, f := range c.Flags {
			if prev, dup := bits[f.Bit]; dup {
				t.Fatalf("bit %d shared by %s and %s", f.Bit, prev, f.Name)
			}
			bits[f.Bit] = f.Name
			if prev, dup := codes[f.Code]; dup {
				t.Fatalf("code %d shared by %s and %s", f.Code, prev, f.Name)
			}
			codes[f.Code] = f.Name
		}
	}
	assert.Len(t, bits, 22)
}

func TestDefault_CategoryOrder(t *testing.T) {
	table := Default()
	require.Len(t, table.Categories, 3)
	assert.Equal(t, "format", table.Categories[0].Name)
	assert.Equal(t, "color", table.Categories[1].Name)
	assert.Equal(t, "fill", table.Categories[2].Name)
}

func TestLimit(t *testing.T) {
	assert.Equal(t, WhiteFill<<1, Default().Limit())
	assert.Equal(t, uint64(1), Table{}.Limit())
}

func TestCodify(t *testing.T) {
	table := Default()

	tests := []struct {
		name        string
		combination uint64
		want        string
	}{
		{"empty", 0, ""},
		{"single format", Bold, "1"},
		{"single color", Red, "31"},
		{"single fill", GreenFill, "42"},
		{"format before color before fill", WhiteFill | Red | Underline, "4;31;47"},
		{"declaration order within category", Hidden | Bold, "1;8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Codify(tt.combination))
		})
	}
}

func TestLookup(t *testing.T) {
	table := Default()

	f, ok := table.Lookup("magenta")
	require.True(t, ok)
	assert.Equal(t, Magenta, f.Bit)
	assert.Equal(t, 35, f.Code)

	_, ok = table.Lookup("chartreuse")
	assert.False(t, ok)
}

func TestParseSpec(t *testing.T) {
	table := Default()

	tests := []struct {
		name    string
		spec    string
		want    uint64
		wantErr bool
	}{
		{"single flag", "bold", Bold, false},
		{"combination", "bold+red", Bold | Red, false},
		{"with fill", "underline+blue+white-fill", Underline | Blue | WhiteFill, false},
		{"spaces tolerated", " bold + red ", Bold | Red, false},
		{"unknown flag", "bold+sparkly", 0, true},
		{"empty element", "bold++red", 0, true},
		{"empty spec", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.ParseSpec(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
