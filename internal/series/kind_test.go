package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"semp", KindSemp, false},
		{"pbqff", KindPbqff, false},
		{"", 0, true},
		{"SEMP", 0, true},
		{"mopac", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "semp", KindSemp.String())
	assert.Equal(t, "pbqff", KindPbqff.String())
}

func TestNeedsCompanion(t *testing.T) {
	assert.True(t, KindSemp.NeedsCompanion())
	assert.False(t, KindPbqff.NeedsCompanion())
}

func TestParseUnknownKind(t *testing.T) {
	_, err := Parse(Kind(99), "", "")
	assert.Error(t, err)
}
