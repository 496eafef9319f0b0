package circom

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nope-zk/grom/curve"
	"github.com/nope-zk/grom/rom"
)

func TestGenerateL2(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full l=2 generation in short mode")
	}
	assert := require.New(t)

	b, err := rom.NewBuilder(curve.P256(), 2)
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(Generate(&buf, b))
	out := buf.String()

	assert.True(strings.HasPrefix(out,
		"pragma circom 2.0.0;\n\nfunction GROM2(i, r) {\n\tif(i == 0 && r == 0) {\n\t\treturn [\n"))
	assert.True(strings.HasSuffix(out, "\t} else { return [[0],[0]]; }\n}\n"))

	// 129 window positions, 3 lanes each, first branch is a plain if
	assert.Equal(129*3-1, strings.Count(out, "\t} else if("))
	assert.Equal(1, strings.Count(out, "\tif("))

	// each branch returns 2 rows of 3 base-10 coefficients, monic
	row := regexp.MustCompile(`^\t\t\t\[\d+,\d+,1\],?$`)
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "\t\t\t[") {
			assert.True(row.MatchString(line), "malformed row %q", line)
			rows++
		}
	}
	assert.Equal(129*3*2, rows)

	// branches appear in increasing k, lanes 0..2 within each k
	for _, cond := range []string{
		"(i == 0 && r == 0)", "(i == 0 && r == 1)", "(i == 0 && r == 2)",
		"(i == 1 && r == 0)", "(i == 128 && r == 2)",
	} {
		assert.Equal(1, strings.Count(out, cond))
	}
	assert.Less(strings.Index(out, "(i == 0 && r == 2)"), strings.Index(out, "(i == 1 && r == 0)"))
}

func TestGenerateWindowLayout(t *testing.T) {
	assert := require.New(t)

	b, err := rom.NewBuilder(curve.P256(), 4)
	assert.NoError(err)
	ws, err := b.BuildWindow(0)
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(writeWindow(&buf, ws))
	out := buf.String()

	assert.True(strings.HasPrefix(out, "\tif(i == 0 && r == 0) {\n\t\treturn [\n\t\t\t["))
	// 3 lanes of 4 rows, each row holding 5 coefficients
	assert.Equal(3*4, strings.Count(out, "\t\t\t["))
	assert.Equal(3, strings.Count(out, "\t\t];\n"))
	row := regexp.MustCompile(`\[\d+,\d+,\d+,\d+,1\]`)
	assert.Len(row.FindAllString(out, -1), 12)
}
