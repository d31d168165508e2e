package sink_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazykbest/kbest/sink"
)

func TestSliceSink(t *testing.T) {
	s := sink.NewSliceSink()
	require.NoError(t, s.Deliver("a"))
	require.NoError(t, s.Deliver("b"))
	assert.False(t, s.Finished)
	s.Finish()
	assert.Equal(t, []string{"a", "b"}, s.Lines)
	assert.True(t, s.Finished)
}

func TestLineSink(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewLineSink(&buf, nil)
	require.NoError(t, s.Deliver("0 ||| a"))
	require.NoError(t, s.Deliver("0 ||| b"))
	s.Finish()
	assert.Equal(t, "0 ||| a\n0 ||| b\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestLineSink_WriteError(t *testing.T) {
	s := sink.NewLineSink(failWriter{}, nil)
	err := s.Deliver("x")
	require.Error(t, err)
	s.Finish()
}
