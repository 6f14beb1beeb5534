package videoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_BareIDIsIdentity(t *testing.T) {
	for _, id := range []string{"abc123", "dQw4w9WgXcQ", "a_b-c_d-e9", "ABCDEF"} {
		got, err := Resolve(id)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestResolve_ShortLink(t *testing.T) {
	got, err := Resolve("https://youtu.be/abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestResolve_ShortLinkTrailingSlash(t *testing.T) {
	got, err := Resolve("https://youtu.be/dQw4w9WgXcQ/")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", got)
}

func TestResolve_WatchURL(t *testing.T) {
	got, err := Resolve("https://www.youtube.com/watch?v=abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestResolve_WatchURLExtraParams(t *testing.T) {
	got, err := Resolve("https://www.youtube.com/watch?t=42&v=dQw4w9WgXcQ&list=PL1")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", got)
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	got, err := Resolve("  dQw4w9WgXcQ \n")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", got)
}

func TestResolve_NotAURL(t *testing.T) {
	_, err := Resolve("not a url")
	assert.ErrorIs(t, err, ErrNoVideoID)
}

func TestResolve_Empty(t *testing.T) {
	_, err := Resolve("")
	assert.ErrorIs(t, err, ErrNoVideoID)
}

func TestResolve_WatchURLWithoutVideoParam(t *testing.T) {
	_, err := Resolve("https://www.youtube.com/feed/subscriptions")
	assert.ErrorIs(t, err, ErrNoVideoID)
}

func TestResolve_ShortIDRejected(t *testing.T) {
	// Below the minimum identifier length and not a URL.
	_, err := Resolve("ab1")
	assert.ErrorIs(t, err, ErrNoVideoID)
}

func TestResolve_OtherHostRejected(t *testing.T) {
	_, err := Resolve("https://vimeo.com/123456789")
	assert.ErrorIs(t, err, ErrNoVideoID)
}
