// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerAsciiFolding(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello world"},
		{"  Spaces  ", "spaces"},
		{"ITABORAÍ", "itaborai"},
		{"São João de Meriti", "sao joao de meriti"},
		{"PRAÇA", "praca"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, LowerASCIIFolding(tc.input))
		})
	}
}

func TestStripAccentsKeepsCase(t *testing.T) {
	assert.Equal(t, "Niteroi - RJ", StripAccents("Niterói - RJ"))
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 0, CountDigits("RUA DAS FLORES"))
	assert.Equal(t, 3, CountDigits("RUA DAS FLORES 123"))
	assert.Equal(t, 4, CountDigits("KM 12, LOTE 34"))
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{12, "12"},
		{123, "123"},
		{1234, "1.234"},
		{1234567, "1.234.567"},
		{-1, "-1"},
		{-1234, "-1.234"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatInt(tc.input))
		})
	}
}
