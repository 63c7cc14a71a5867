package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Console{Out: &out, Err: &errOut}, &out, &errOut
}

func TestStreams(t *testing.T) {
	c, out, errOut := newTestConsole()

	c.Success("File created!")
	c.File("File: /tmp/1000.swift")
	c.Tip("Next: kps solve 1000 -b")
	c.Warning("xed not available")
	c.Error("boom")

	assert.Contains(t, out.String(), "File created!")
	assert.Contains(t, out.String(), IconFile+" ")
	assert.Contains(t, out.String(), "kps solve 1000 -b")
	assert.NotContains(t, out.String(), "boom")

	assert.Contains(t, errOut.String(), "xed not available")
	assert.Contains(t, errOut.String(), "boom")
}

func TestInfoDefaultIcon(t *testing.T) {
	c, out, _ := newTestConsole()
	c.Info("Project: kps", "")
	assert.Contains(t, out.String(), IconInfo+" ")
}
