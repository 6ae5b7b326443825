//go:build e2e && unix

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrollInNormalMode(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")
	require.True(t, tf.SeePlain("line 1/10"), "Demo items render ten lines")

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("line 2/10"), "s should scroll down one line")

	require.NoError(t, tf.Up())
	require.True(t, tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.LastIndex(plain, "line 1/10") > strings.LastIndex(plain, "line 2/10")
	}, defaultWait), "w should scroll back up")

	require.NoError(t, tf.Quit())
}

func TestScrollPastEndIsClamped(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	for i := 0; i < 15; i++ {
		require.NoError(t, tf.Down())
	}
	require.True(t, tf.SeePlain("line 10/10"), "Page should stop at the last line")
	require.False(t, tf.OutputContainsPlain("line 11/10", shortWait), "Page must never pass the last line")

	require.NoError(t, tf.Quit())
}

func TestCursorInEditMode(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	require.NoError(t, tf.Edit())
	require.True(t, tf.SeePlain("EDIT"), "Should switch to edit mode")

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("item 2/2"), "s should move to the next item")

	// Cursor saturates at the last item
	require.NoError(t, tf.Down())
	require.False(t, tf.OutputContainsPlain("item 3/2", shortWait))

	// Edit mode moves the cursor, not the page
	require.False(t, tf.OutputContainsPlain("line 2/10", shortWait))

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.Quit())
}
