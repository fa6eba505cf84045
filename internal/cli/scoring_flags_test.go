package cli

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/courseplan/internal/app"
)

func parseScoring(t *testing.T, args ...string) *app.ScoringOptions {
	t.Helper()
	var s scoringFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	s.register(fs)
	require.NoError(t, fs.Parse(args))
	return s.options(fs)
}

func TestScoringFlags_NoneSet(t *testing.T) {
	assert.Nil(t, parseScoring(t))
}

func TestScoringFlags_OnlyChangedValues(t *testing.T) {
	opts := parseScoring(t, "--max-nodes", "50", "--weight-days", "0", "--weight-gaps", "0.5")
	require.NotNil(t, opts)

	assert.Nil(t, opts.MaxCandidates)
	require.NotNil(t, opts.MaxNodes)
	assert.Equal(t, 50, *opts.MaxNodes)

	require.NotNil(t, opts.Weights)
	assert.Nil(t, opts.Weights.Credits)
	assert.Nil(t, opts.Weights.Balance)
	require.NotNil(t, opts.Weights.Days)
	assert.Equal(t, 0.0, *opts.Weights.Days)
	require.NotNil(t, opts.Weights.Gaps)
	assert.Equal(t, 0.5, *opts.Weights.Gaps)
}

func TestScoringFlags_CapsWithoutWeights(t *testing.T) {
	opts := parseScoring(t, "--max-candidates", "3")
	require.NotNil(t, opts)
	require.NotNil(t, opts.MaxCandidates)
	assert.Equal(t, 3, *opts.MaxCandidates)
	assert.Nil(t, opts.Weights)
}

func TestSplitCodes(t *testing.T) {
	assert.Equal(t, []string{"CS101", "CS201", "MATH120"}, splitCodes("cs101, CS201", "", " ,math120,"))
	assert.Nil(t, splitCodes())
}

func TestValidateCredits(t *testing.T) {
	assert.NoError(t, validateCredits("0"))
	assert.NoError(t, validateCredits("16"))
	assert.Error(t, validateCredits("-1"))
	assert.Error(t, validateCredits("twelve"))
}

func TestNewPlanForm_CourseOptions(t *testing.T) {
	courses := plannerCourses()
	opts := courseOptions(courses)

	require.Len(t, opts, 3)
	assert.Equal(t, "CS101", opts[0].Value)
	assert.Contains(t, opts[0].Key, "CS101")
	assert.Contains(t, opts[0].Key, "(4 cr)")

	v := planFormValues{MinText: "12", MaxText: "16"}
	assert.NotNil(t, newPlanForm(courses, &v, io.Discard))
}
