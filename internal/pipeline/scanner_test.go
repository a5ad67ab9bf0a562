package pipeline

import (
	"strings"
	"testing"

	"release-gantt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "quoted comma",
			line: `A1,"Smith, John",Major,Open,,,,,Mgr,Auth,App9`,
			want: []string{"A1", `"Smith, John"`, "Major", "Open", "", "", "", "", "Mgr", "Auth", "App9"},
		},
		{
			name: "plain",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "trailing empty fields kept",
			line: "a,,",
			want: []string{"a", "", ""},
		},
		{
			name: "empty line",
			line: "",
			want: []string{""},
		},
		{
			name: "quote mid field",
			line: `x"y,z"w,v`,
			want: []string{`x"y,z"w`, "v"},
		},
		{
			name: "unbalanced quote swallows rest",
			line: `a,"b,c,d`,
			want: []string{"a", `"b,c,d`},
		},
		{
			name: "backslash comma is not special",
			line: `a,"x\,y",b`,
			want: []string{"a", `"x\,y"`, "b"},
		},
		{
			name: "doubled quotes toggle twice",
			line: `"say ""hi"", ok",2`,
			want: []string{`"say ""hi"", ok"`, "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFields(tt.line))
		})
	}
}

// Matches the quote-parity rule: a comma splits only after an even number of
// quotes.
func TestSplitFieldsParity(t *testing.T) {
	lines := []string{
		`a,"b,c",d`,
		`"",",",""`,
		`""",",x`,
		`a"b"c,d`,
	}
	for _, line := range lines {
		var want []string
		quotes := 0
		last := 0
		for i, c := range line {
			if c == '"' {
				quotes++
			}
			if c == ',' && quotes%2 == 0 {
				want = append(want, line[last:i])
				last = i + 1
			}
		}
		want = append(want, line[last:])

		assert.Equal(t, want, SplitFields(line), line)
	}
}

func TestSplitFieldsKeepsNonUTF8Bytes(t *testing.T) {
	line := "A1,Caf\xe9 \xabM\xe0j\xbb,Major,Open,,,,,Mgr,Auth,App9"

	fields := SplitFields(line)
	require.Len(t, fields, models.FieldCount)
	assert.Equal(t, "Caf\xe9 \xabM\xe0j\xbb", fields[1])
	assert.Equal(t, line, strings.Join(fields, ","))
}

func TestParseRecord(t *testing.T) {
	r, err := ParseRecord(`A1,"Smith, John",Major,Open,2023-05-01,,,,Mgr,Auth,App9`)
	require.NoError(t, err)
	assert.Equal(t, `"Smith, John"`, r.Name)
	assert.Equal(t, "2023-05-01", r.OpenDate.String())
	assert.False(t, r.CompletionDate.Valid)

	_, err = ParseRecord("A1,too,few")
	assert.ErrorIs(t, err, models.ErrFieldCount)

	_, err = ParseRecord("A1,a,b,c,d,e,f,g,h,i,j,k")
	assert.ErrorIs(t, err, models.ErrFieldCount)
}
