package template

import (
	"testing"
	"time"

	"github.com/kpscli/kps/pkg/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	p := problem.Problem{Platform: problem.BOJ, Number: "1000"}
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)

	out, err := Render(NewData(p, "Algorithms", "Jane", now))
	require.NoError(t, err)

	want := `//
// 1000.swift
// Algorithms
//
// Created by Jane on 2026/3/7.
// https://acmicpc.net/problem/1000
//

import Foundation

func _1000() {
    // Your solution here
}
`
	assert.Equal(t, want, out)
}

func TestRenderProgrammers(t *testing.T) {
	p := problem.Problem{Platform: problem.Programmers, Number: "340207"}
	out, err := Render(NewData(p, "P", "A", time.Now()))
	require.NoError(t, err)
	assert.Contains(t, out, "https://school.programmers.co.kr/learn/courses/30/lessons/340207")
	assert.Contains(t, out, "func _340207() {")
}
