package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples holds a minimal construction of each mistake, keyed by rule ID.
var samples = map[int]string{
	1:  "for i := 0; i < 3; i++ {\n\tdefer f()\n}\n",
	2:  "for _, v := range xs {\n\txs = append(xs, v)\n}\n",
	3:  "x := 1\n_ = f()\n",
	4:  "var x int = 1\nx := 2\n",
	5:  "func GetName() string {\n",
	6:  "type Big interface {\n\tA()\n\tB()\n\tC()\n\tD()\n\tE()\n}\n",
	7:  "func Make() interface{} {\n",
	8:  "var v any\n",
	9:  "type ServerConfig struct {\n",
	10: "package utils\n",
	11: "if err != nil {\n",
	12: "panic(\"boom\")\n",
	13: "f, _ := os.Open(\"x\")\n",
	14: "http.Get(url)\n",
	15: "// go test ./...\n",
}

func TestCatalog_OrderAndUniqueIDs(t *testing.T) {
	ids := IDs()
	require.Len(t, ids, 15)
	seen := map[int]bool{}
	for i, id := range ids {
		assert.Equal(t, i+1, id, "catalog must be ordered by id")
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	for _, r := range All() {
		assert.NotEmpty(t, r.Description)
		assert.NotEmpty(t, r.Pattern)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Description = "changed"
	assert.NotEqual(t, "changed", All()[0].Description)
}

func TestEachRuleMatchesItsSample(t *testing.T) {
	for _, r := range All() {
		sample, ok := samples[r.ID]
		require.True(t, ok, "missing sample for rule %d", r.ID)
		starts, err := r.Starts(sample)
		require.NoError(t, err)
		assert.NotEmpty(t, starts, "rule %d (%s) did not match %q", r.ID, r.Description, sample)
	}
}

func TestRaceRule_SuppressedByRaceFlag(t *testing.T) {
	r := All()[14]
	starts, err := r.Starts("// go test -race ./...\n")
	require.NoError(t, err)
	assert.Empty(t, starts)
}

func TestStarts_MultipleNonOverlapping(t *testing.T) {
	r := MustNew(1, "panic", `\bpanic\(`)
	starts, err := r.Starts("panic(1)\npanic(2)\n")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 9}, starts)
}

func TestStarts_RuneOffsets(t *testing.T) {
	r := MustNew(1, "panic", `panic\(`)
	starts, err := r.Starts("é\npanic(1)")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, starts)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(0, "zero", `x`)
	assert.Error(t, err)

	_, err = New(1, "bad", `(`)
	assert.Error(t, err)

	assert.Panics(t, func() { MustNew(1, "bad", `(`) })
}

func TestStarts_Uncompiled(t *testing.T) {
	_, err := Rule{ID: 3}.Starts("x")
	assert.Error(t, err)
}
