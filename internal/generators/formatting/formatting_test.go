package formatting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/solidified/internal/testing/testutil"
)

func TestPrettier(t *testing.T) {
	p := testutil.NewTestProject(t, nil)
	require.NoError(t, Prettier{}.Apply(context.Background(), p.Root, p.Config))

	v, ok := p.Pairs("devDependencies").Get("prettier")
	assert.True(t, ok)
	assert.Equal(t, "^3", v)

	check, _ := p.Pairs("scripts").Get("format:check")
	assert.Equal(t, "prettier --check .", check)

	assert.True(t, p.FileExists(".prettierrc"))
	assert.True(t, p.FileExists(".prettierignore"))
}
