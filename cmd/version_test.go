package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "zipup.dev/pkg/zipup/internal/adapter/mocks"
)

func TestVersionCmd_Output(t *testing.T) {
	mockBundler := adaptermocks.NewMockBundler(t)
	mockBundler.EXPECT().Version().Return("0.25.10").Once()

	original := bundler
	bundler = mockBundler

	defer func() { bundler = original }()

	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "zipup version")
	assert.Contains(t, output, "esbuild version\t 0.25.10")
	assert.Contains(t, output, "go version")
}

func TestVersionCmd_RejectsArguments(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}
