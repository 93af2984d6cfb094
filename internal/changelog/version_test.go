package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releng/relkit/internal/errors"
)

func TestParseVersion(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Version
		wantErr  bool
	}{
		"plain version":        {input: "1.2.3", expected: Version{1, 2, 3}},
		"zeros":                {input: "0.0.0", expected: Version{0, 0, 0}},
		"large components":     {input: "10.42.7", expected: Version{10, 42, 7}},
		"two components":       {input: "1.2", wantErr: true},
		"four components":      {input: "1.2.3.4", wantErr: true},
		"non-numeric":          {input: "1.2.x", wantErr: true},
		"negative component":   {input: "1.-2.3", wantErr: true},
		"empty string":         {input: "", wantErr: true},
		"v prefix not allowed": {input: "v1.2.3", wantErr: true},
		"whitespace component": {input: "1. 2.3", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseVersion(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				cliErr := errors.AsCLIError(err)
				require.NotNil(t, cliErr, "parse errors should be categorized")
				assert.Equal(t, errors.Input, cliErr.Category)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestVersion_PreviousBoundary(t *testing.T) {
	tests := map[string]struct {
		version  string
		expected string
	}{
		"patch release diffs against preceding patch":   {version: "1.2.3", expected: "1.2.2"},
		"minor release diffs against previous minor":    {version: "1.2.0", expected: "1.1.0"},
		"major release diffs against previous major":    {version: "2.0.0", expected: "1.0.0"},
		"patch on a zero-major line":                    {version: "0.4.2", expected: "0.4.1"},
		"minor on a zero-major line":                    {version: "0.4.0", expected: "0.3.0"},
		"patch boundary keeps major above zero":         {version: "3.1.5", expected: "3.1.4"},
		"minor release mid major line":                  {version: "2.3.0", expected: "2.2.0"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := ParseVersion(tc.version)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.PreviousBoundary().String())
		})
	}
}

func TestVersion_Range(t *testing.T) {
	v, err := ParseVersion("0.42.0")
	require.NoError(t, err)
	assert.Equal(t, "0.41.0..HEAD", v.Range())
}
