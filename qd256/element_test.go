package qd256

import (
	"testing"

	"github.com/jacurick19/5-Days-5-Algorithms/assert"
)

func TestDecomposeCompose(t *testing.T) {
	for x := 0; x < 256; x++ {
		e := Element(x)
		k, j := e.Decompose()
		if k < 0 || k > 127 {
			t.Errorf("element %d decomposed to out of range k %d", x, k)
		}
		if j != 0 && j != 1 {
			t.Errorf("element %d decomposed to out of range j %d", x, j)
		}
		if got := Compose(k, j); got != e {
			t.Errorf("Compose(Decompose(%d)) expected %d, actual %d", x, x, got)
		}
	}
}

func TestFromBytes(t *testing.T) {
	testCases := []struct {
		title       string
		input       []byte
		expected    Element
		expectError bool
	}{
		{
			title:    "single_byte",
			input:    []byte{191},
			expected: 191,
		},
		{
			title:    "identity_byte",
			input:    []byte{0},
			expected: Identity,
		},
		{
			title:       "empty_buffer",
			input:       []byte{},
			expectError: true,
		},
		{
			title:       "nil_buffer",
			input:       nil,
			expectError: true,
		},
		{
			title:       "multi_byte_buffer",
			input:       []byte{1, 2},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			e, err := FromBytes(tc.input)
			if !assert.Errors(t, tc.expectError, err, assert.Fields{"input": tc.input}) {
				if err != ErrInvalidInputSize {
					t.Errorf("expected '%v' as error, but received '%v'", ErrInvalidInputSize, err)
				}
				return
			}
			if e != tc.expected {
				t.Errorf("expected element %d, actual %d", tc.expected, e)
			}
			if !assert.BytesEqual(t, tc.input, e.Bytes()) {
				return
			}
		})
	}
}
