package cli

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/katalvlaran/ordstat/census"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it wrote to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "ordstat", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)
}

func TestCommandPresence(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"select", "minmax", "networks", "census"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestCensusFlags(t *testing.T) {
	cmd := newRootCmd()
	sub, _, err := cmd.Find([]string{"census"})
	require.NoError(t, err)

	for flag, def := range map[string]string{
		"samples":   strconv.Itoa(census.DefaultSamples),
		"seed":      strconv.FormatInt(census.DefaultSeed, 10),
		"workers":   strconv.Itoa(census.DefaultWorkers),
		"max-range": strconv.Itoa(census.DefaultMaxRange),
		"config":    "",
		"network":   "[]",
	} {
		f := sub.Flags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, def, f.DefValue, flag)
	}
}

func TestNetworksGolden(t *testing.T) {
	out, err := execute(t, "networks")
	require.NoError(t, err)
	assertGolden(t, "networks", out)
}

func TestMinMaxGolden(t *testing.T) {
	out, err := execute(t, "minmax", "3", "6", "2", "1", "4", "5", "6", "2", "3")
	require.NoError(t, err)
	assertGolden(t, "minmax", out)
}

func TestCensusGolden(t *testing.T) {
	out, err := execute(t, "census",
		"--network", "Select0Of2",
		"--network", "Select1Of3",
		"--network", "Select2Of5",
		"--samples", "0",
		"--max-range", "3",
	)
	require.NoError(t, err)
	assertGolden(t, "census", out)
}

var selectLine = regexp.MustCompile(`^rank (\d+) of (\d+): (\S+) \(argument (\d+)\)\ncomparisons: (\d+) \(bound (\d+)\)\n$`)

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		rank  int
		value string
		arg   int
		bound int
	}{
		{"explicit rank", []string{"--rank", "2", "3", "6", "2", "1", "4"}, 2, "3", 0, 6},
		{"lower median default", []string{"4", "1", "3", "2"}, 1, "2", 3, 4},
		{"stable among equals", []string{"0", "0", "1", "1", "1", "1", "1"}, 3, "1", 3, 10},
		{"max of seven", []string{"-k", "6", "5", "9", "9", "1", "0", "2", "3"}, 6, "9", 2, 6},
		{"single value", []string{"2.5"}, 0, "2.5", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"select"}, tt.args...)...)
			require.NoError(t, err)

			m := selectLine.FindStringSubmatch(out)
			require.NotNil(t, m, "unexpected output %q", out)
			assert.Equal(t, strconv.Itoa(tt.rank), m[1])
			assert.Equal(t, tt.value, m[3])
			assert.Equal(t, strconv.Itoa(tt.arg), m[4])
			assert.Equal(t, strconv.Itoa(tt.bound), m[6])

			spent, _ := strconv.Atoi(m[5])
			assert.LessOrEqual(t, spent, tt.bound)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"select too many", []string{"select", "1", "2", "3", "4", "5", "6", "7", "8"}, "accepts between 1 and 7 arg(s)"},
		{"select bad number", []string{"select", "1", "x"}, "argument 1"},
		{"select rank out of range", []string{"select", "--rank", "3", "1", "2", "3"}, "rank"},
		{"minmax no args", []string{"minmax"}, "requires at least 1 arg(s)"},
		{"census unknown network", []string{"census", "--network", "Select9Of9"}, `"Select9Of9"`},
		{"census bad workers", []string{"census", "--workers", "0"}, "workers must be >= 1"},
		{"census bad max range", []string{"census", "--max-range", "11"}, "max_range must be in 0..10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPrintCensusFailures(t *testing.T) {
	nw, err := census.Lookup("Select1Of3")
	require.NoError(t, err)

	res := census.Result{
		Reports: []census.Report{{
			Network: nw[0],
			Cases:   13,
			Worst:   4,
			Mean:    3,
			Failures: []census.Failure{{
				Input: []int{0, 0, 1},
				Got:   census.Probe{Value: 0, Source: 0},
				Want:  census.Probe{Value: 0, Source: 1},
				Count: 3,
			}},
		}},
		Range: census.RangeReport{MaxLen: 2, Cases: 5, Failures: []census.RangeFailure{{
			Op: "MinMaxElement", Input: []int{1, 1}, Got: [2]int{1, 0}, Want: [2]int{0, 1}, Count: 1, Budget: 1,
		}}},
	}
	require.False(t, res.OK())

	var buf bytes.Buffer
	printCensus(&buf, newStyles(&buf), res)
	out := buf.String()

	assert.Contains(t, out, fmt.Sprintf("%-20s %2d %2d %5d %5d", "Select1Of3", 3, 1, 3, 4))
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "range layer: 5 inputs up to length 2: FAIL")
	assert.Contains(t, out, "Select1Of3: input [0 0 1]: got 0 from 0, want 0 from 1 (3 comparisons)")
	assert.Contains(t, out, "MinMaxElement: input [1 1]: got [1 0], want [0 1] (1 comparisons, budget 1)")
	assert.Equal(t, 1, failedReports(res.Reports))
}

func TestPrintCensusRangeSkipped(t *testing.T) {
	var buf bytes.Buffer
	printCensus(&buf, newStyles(&buf), census.Result{})
	assert.Contains(t, buf.String(), "range layer: skipped")
}

func TestVerboseLogsToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"-v", "census", "--network", "Select0Of2", "--samples", "0", "--max-range", "0"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, errOut.String(), "Census settings")
	assert.Contains(t, errOut.String(), "Checked 1 networks")
	assert.NotContains(t, out.String(), "Census settings")
}

func TestCensusCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"census", "--samples", "0"})
	err := cmd.ExecuteContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
