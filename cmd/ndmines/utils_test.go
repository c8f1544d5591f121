package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	m.Run()
}

func TestFields(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"0,3", ",", []string{"0", "3"}},
		{" 1 , 2,3 ", ",", []string{"1", "2", "3"}},
		{"0,0;1,0;;1,1", ";", []string{"0,0", "1,0", "", "1,1"}},
		{"", ";", []string{""}},
	}
	for _, test := range testCases {
		var got []string
		for i, p := range fields(test.input, test.sep) {
			assert.Equal(t, len(got), i)
			got = append(got, p)
		}
		assert.Equal(t, test.array, got, "fields(%q, %q)", test.input, test.sep)
	}
}

func TestFieldsStopEarly(t *testing.T) {
	n := 0
	for range fields("a,b,c", ",") {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
