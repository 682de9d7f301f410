package patterns_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/recast/pkg/domain"
	"github.com/aretw0/recast/pkg/patterns"
)

const sampleFile = `
version: 1
patterns:
  - name: http_access
    regex: '(?P<code>\d{3})\s+(?P<path>\S+)'
    fields:
      - name: code
        type: int
      - name: path
      - name: note
        type: string
        optional: true
  - name: kv
    regex: '(?P<key>\w+)=(?P<value>\S*)'
`

func TestLoad(t *testing.T) {
	f, err := patterns.Load(strings.NewReader(sampleFile))
	require.NoError(t, err)

	assert.Equal(t, []string{"http_access", "kv"}, f.Names())

	desc, err := f.Descriptor("http_access")
	require.NoError(t, err)
	assert.Equal(t, `(?P<code>\d{3})\s+(?P<path>\S+)`, desc.Pattern)
	assert.Equal(t, []domain.FieldSpec{
		{Name: "code", Kind: domain.KindInt},
		{Name: "path", Kind: domain.KindString},
		{Name: "note", Kind: domain.KindString, Optional: true},
	}, desc.Fields)
}

func TestLoad_UntypedDefinition(t *testing.T) {
	f, err := patterns.Load(strings.NewReader(sampleFile))
	require.NoError(t, err)

	// No fields list: every named group becomes an optional string.
	desc, err := f.Descriptor("kv")
	require.NoError(t, err)
	assert.Equal(t, []domain.FieldSpec{
		{Name: "key", Kind: domain.KindString, Optional: true},
		{Name: "value", Kind: domain.KindString, Optional: true},
	}, desc.Fields)
}

func TestLoad_UnknownDescriptor(t *testing.T) {
	f, err := patterns.Load(strings.NewReader(sampleFile))
	require.NoError(t, err)

	_, err = f.Descriptor("nope")
	assert.Error(t, err)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"wrong version": `
version: 2
patterns:
  - name: a
    regex: '(?P<x>\d+)'
`,
		"no patterns": `
version: 1
patterns: []
`,
		"unnamed pattern": `
version: 1
patterns:
  - regex: '(?P<x>\d+)'
`,
		"duplicate name": `
version: 1
patterns:
  - name: a
    regex: '(?P<x>\d+)'
  - name: a
    regex: '(?P<y>\d+)'
`,
		"missing regex": `
version: 1
patterns:
  - name: a
`,
		"unknown type": `
version: 1
patterns:
  - name: a
    regex: '(?P<x>\d+)'
    fields:
      - name: x
        type: decimal
`,
		"unknown key": `
version: 1
patterns:
  - name: a
    regexp: '(?P<x>\d+)'
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := patterns.Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestDefinition_UntypedNeedsNamedGroups(t *testing.T) {
	f, err := patterns.Load(strings.NewReader(`
version: 1
patterns:
  - name: anon
    regex: '(\d+)'
`))
	require.NoError(t, err)

	_, err = f.Descriptor("anon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "named capture groups")
}
