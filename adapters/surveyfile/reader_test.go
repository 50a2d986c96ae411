package surveyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netcompare/internal/errors"
)

const sampleCSV = `A1_Top_of_Mind_Brand,A5_Primary_Mobile_Network,A12_Most_Disliked_Feature,A22_Desired_Value_Added_Services,A36A_Experience_overall_experience,A36B_Experience_Customer_Service,A36C_Experience_communication_channels,A36D_Experience_pricing,D1_Age,D3_Location_Botswana,D7_Monthly_Income_Allowance
Mascom,Orange,Expensive data,"Loyalty rewards, Unlimited data",7,6,,8,18-24,Gaborone,P1000-P3000
Orange,Orange,Slow internet,Unlimited data,not sure,7,5,11,25-34,Francistown,Below P1000
BTC,BTC,Network coverage,Loyalty rewards,9,8,8,7,18-24,Gaborone,P1000-P3000
`

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestLoadParsesRecords(t *testing.T) {
	path := writeSample(t, t.TempDir(), "survey.csv")

	ds, err := NewReader(path).Load()
	require.NoError(t, err)

	require.Equal(t, 3, ds.Len())
	records := ds.Records()

	assert.Equal(t, "Orange", records[0].PrimaryNetwork)
	assert.Equal(t, "Expensive data", records[0].MostDisliked)
	assert.Equal(t, "Loyalty rewards, Unlimited data", records[0].DesiredServices)
	assert.Equal(t, "Gaborone", records[0].Location)
}

func TestLoadCoercesScores(t *testing.T) {
	path := writeSample(t, t.TempDir(), "survey.csv")

	ds, err := NewReader(path).Load()
	require.NoError(t, err)
	records := ds.Records()

	// Plain numeric value
	assert.True(t, records[0].Overall.Valid)
	assert.Equal(t, 7.0, records[0].Overall.Float)

	// Blank cell is missing
	assert.False(t, records[0].Communication.Valid)

	// Non-numeric text is missing, not an error
	assert.False(t, records[1].Overall.Valid)

	// Out-of-range score is treated as entry noise
	assert.False(t, records[1].Pricing.Valid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.csv")).Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingInputFile, errors.GetCode(err))
}

func TestLoadHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("A5_Primary_Mobile_Network\n"), 0o644))

	_, err := NewReader(path).Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestLoadFromCandidatesOverrideFirst(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "override.csv")

	ds, err := LoadFromCandidates(path)
	require.NoError(t, err)
	assert.Equal(t, path, ds.Source())
}

func TestLoadFromCandidatesAllMissing(t *testing.T) {
	// Run from an empty directory so the default relative candidates
	// cannot resolve.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(cwd) })

	_, err = LoadFromCandidates("")
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingInputFile, errors.GetCode(err))
}
