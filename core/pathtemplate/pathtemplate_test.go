package pathtemplate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/stitch/core/pathtemplate"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	builder, err := pathtemplate.Compile("schemas/{{.Type}}/{{.Name}}.ts")
	require.NoError(t, err)
	assert.Equal(t, "schemas/model/User.ts", builder("model", "User"))
	assert.Equal(t, "schemas/enum/role.ts", builder("enum", "role"))
}

func TestCompileRejectsBadSyntax(t *testing.T) {
	t.Parallel()

	_, err := pathtemplate.Compile("{{.Type")
	assert.Error(t, err)
}

func TestCompileRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := pathtemplate.Compile("{{.Directory}}/{{.Name}}.ts")
	assert.Error(t, err)
}
