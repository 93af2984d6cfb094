package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorPlain(t *testing.T) {
	err := NewInputErrorWithUsage(
		"invalid version \"1.2\": expected the format X.Y.Z",
		"relkit changelog --version <X.Y.Z>",
		"Provide major, minor, and patch components",
	)

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Error [Input Error]:")
	assert.Contains(t, out, "invalid version \"1.2\"")
	assert.Contains(t, out, "Usage: relkit changelog --version <X.Y.Z>")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "• Provide major, minor, and patch components")
}

func TestFormatErrorPlain_NoRemediation(t *testing.T) {
	out := FormatErrorPlain(NewRuntimeError("something broke"))
	assert.Contains(t, out, "Error [Runtime Error]: something broke")
	assert.NotContains(t, out, "To fix this:")
	assert.NotContains(t, out, "Usage:")
}

func TestFormatError_Nil(t *testing.T) {
	assert.Empty(t, FormatError(nil))
	assert.Empty(t, FormatErrorPlain(nil))
}

func TestAsCLIError(t *testing.T) {
	cliErr := NewConfigError("no token")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(assert.AnError))
	assert.Nil(t, AsCLIError(nil))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, Runtime))

	wrapped := Wrap(assert.AnError, Configuration, "check the config")
	assert.Equal(t, Configuration, wrapped.Category)
	assert.Equal(t, assert.AnError.Error(), wrapped.Message)
	assert.Equal(t, []string{"check the config"}, wrapped.Remediation)
}
