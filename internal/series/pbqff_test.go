package series

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePbqff(t *testing.T) {
	primary := `starting points FF with 12 jobs
[iter 1 finished after 10.0 s with 9 jobs remaining]
[iter 2 finished after 10.0 s with 5 jobs remaining]
`

	got, err := Parse(KindPbqff, primary, "")
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "jobs remaining", got[0].Name)
	assert.Equal(t, []Point{{1, 9}, {2, 5}}, got[0].Points)
}

func TestParsePbqffDropStartsNewPhase(t *testing.T) {
	primary := `[iter 1 finished after 10.0 s with 5 jobs remaining]
[iter 2 finished after 10.0 s with 4 jobs remaining]
finished dropping 12 checkpointed jobs
[iter 1 finished after 10.0 s with 9 jobs remaining]
[iter 2 finished after 10.0 s with 8 jobs remaining]
`

	got, err := Parse(KindPbqff, primary, "")
	require.NoError(t, err)

	// Only the points after the drop survive; the first phase is discarded.
	assert.Equal(t, []Point{{1, 9}, {2, 8}}, got[0].Points)
}

func TestParsePbqffDropWithoutFollowingIter(t *testing.T) {
	primary := `[iter 1 finished after 10.0 s with 5 jobs remaining]
finished dropping 12 checkpointed jobs
`

	got, err := Parse(KindPbqff, primary, "")
	require.NoError(t, err)

	// The drop only takes effect on the next iteration line, so the
	// accumulated points are still there.
	assert.Equal(t, []Point{{1, 5}}, got[0].Points)
}

func TestParsePbqffMultipleDrops(t *testing.T) {
	primary := `[iter 1 finished after 10.0 s with 5 jobs remaining]
finished dropping 12 checkpointed jobs
[iter 1 finished after 10.0 s with 20 jobs remaining]
finished dropping 30 checkpointed jobs
[iter 1 finished after 10.0 s with 7 jobs remaining]
[iter 2 finished after 10.0 s with 3 jobs remaining]
`

	got, err := Parse(KindPbqff, primary, "")
	require.NoError(t, err)

	assert.Equal(t, []Point{{1, 7}, {2, 3}}, got[0].Points)
}

func TestParsePbqffErrors(t *testing.T) {
	tests := []struct {
		name    string
		primary string
	}{
		{"short iteration line", "[iter 1 done\n"},
		{"malformed iteration index", "[iter x finished after 10.0 s with 9 jobs remaining]\n"},
		{"malformed remaining count", "[iter 1 finished after 10.0 s with x jobs remaining]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(KindPbqff, tt.primary, "")
			assert.Error(t, err)
		})
	}
}

func TestParsePbqffEmptyInput(t *testing.T) {
	got, err := Parse(KindPbqff, "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Points)
}

func TestParsePbqffRoundTrip(t *testing.T) {
	primary, err := os.ReadFile("testdata/pbqff.log")
	require.NoError(t, err)

	got, err := Parse(KindPbqff, string(primary), "")
	require.NoError(t, err)
	require.Len(t, got, 1)

	// The fixture drops the points phase; only the three harmonic
	// iterations remain.
	require.Len(t, got[0].Points, 3)
	assert.Equal(t, Point{1, 1061}, got[0].Points[0])
	assert.Equal(t, Point{3, 655}, got[0].Points[2])
}
