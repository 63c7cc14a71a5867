package problem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New(BOJ, "1000")
	require.NoError(t, err)
	assert.Equal(t, "1000", p.Number)

	_, err = New(None, "1000")
	assert.ErrorIs(t, err, ErrPlatformRequired)

	_, err = New(BOJ, "")
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = New(Programmers, "12a")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestDerivedValues(t *testing.T) {
	boj := Problem{Platform: BOJ, Number: "1000"}
	assert.Equal(t, "https://acmicpc.net/problem/1000", boj.URL())
	assert.Equal(t, "1000.swift", boj.FileName())
	assert.Equal(t, "_1000", boj.FunctionName())
	assert.Equal(t, filepath.Join("Sources", "BOJ", "1000.swift"), boj.RelPath("Sources"))
	assert.Equal(t, "[BOJ] 1000", boj.String())

	prg := Problem{Platform: Programmers, Number: "340207"}
	assert.Equal(t, "https://school.programmers.co.kr/learn/courses/30/lessons/340207", prg.URL())
	assert.Equal(t, filepath.Join("src", "Programmers", "340207.swift"), prg.RelPath("src"))
}

func TestPlatformNone(t *testing.T) {
	assert.False(t, None.Valid())
	assert.Empty(t, None.FolderName())
	assert.Empty(t, None.DisplayName())
	assert.Empty(t, None.ProblemURL("1"))
	assert.Empty(t, None.Flag())
	assert.Equal(t, "-b", BOJ.Flag())
	assert.Equal(t, "-p", Programmers.Flag())
}
