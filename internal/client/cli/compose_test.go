package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/compose"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func notFirstEntry(ta *testApp) {
	ta.flags.values = map[string]bool{common.FirstEntryFlagKey: false}
}

func TestNewEntry_RequiresLogin(t *testing.T) {
	ta := newTestApp("")
	require.ErrorIs(t, ta.NewEntry(context.Background()), client.ErrNotLoggedIn)
}

func TestNewEntry_SaveNavigatesHome(t *testing.T) {
	ta := newTestApp(strings.Join([]string{
		"title A walk",
		"body",
		"by the lake",
		"",
		"save",
		"show",
	}, "\n") + "\n")
	ta.loggedIn()
	notFirstEntry(ta)

	require.NoError(t, ta.NewEntry(context.Background()))
	ta.screens.Wait()

	require.Len(t, ta.entries.subs, 1)
	sub := ta.entries.subs[0]
	assert.Equal(t, "A walk", sub.Title)
	assert.Equal(t, "by the lake", sub.Body)
	assert.Empty(t, sub.Images)

	out := ta.buf.String()
	assert.Contains(t, out, "Saved e-1")
	assert.Contains(t, out, "Back to index")
	assert.NotContains(t, out, "Date:", "session must end once the screen is left")

	first, err := ta.flags.GetBool(context.Background(), common.FirstEntryFlagKey, true)
	require.NoError(t, err)
	assert.False(t, first)
}

func TestNewEntry_EmptyDraftDiscards(t *testing.T) {
	ta := newTestApp("back\n")
	ta.loggedIn()
	notFirstEntry(ta)

	require.NoError(t, ta.NewEntry(context.Background()))

	assert.Empty(t, ta.entries.subs)
	assert.Contains(t, ta.buf.String(), "Nothing to save, entry discarded")
	assert.NotContains(t, ta.buf.String(), "Back to")
}

func TestNewEntry_ValidationAlertsAndStays(t *testing.T) {
	ta := newTestApp("title Only a title\nsave\n")
	ta.loggedIn()
	notFirstEntry(ta)

	require.NoError(t, ta.NewEntry(context.Background()))

	assert.Empty(t, ta.entries.subs)
	assert.Contains(t, ta.buf.String(), "! "+compose.BodyRequiredMessage)
}

func TestNewEntry_FailureAlerts(t *testing.T) {
	ta := newTestApp("title T\nbody\nB\n\nsave\n")
	ta.loggedIn()
	notFirstEntry(ta)
	ta.entries.receipt.Code = 1

	require.NoError(t, ta.NewEntry(context.Background()))
	ta.screens.Wait()

	assert.Contains(t, ta.buf.String(), "! "+compose.SaveFailedMessage)
	assert.NotContains(t, ta.buf.String(), "Saved")
}

func TestNewEntry_AttachUploadsImages(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "lake.png")
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(img, pngHeader, 0o600))
	require.NoError(t, os.WriteFile(txt, []byte("plain words"), 0o600))

	ta := newTestApp(strings.Join([]string{
		"attach " + img + " " + txt,
		"attach",
		filepath.Join(dir, "missing.png"),
		"",
		"title T",
		"body",
		"B",
		"",
		"save",
	}, "\n") + "\n")
	ta.loggedIn()
	notFirstEntry(ta)

	require.NoError(t, ta.NewEntry(context.Background()))
	ta.screens.Wait()

	out := ta.buf.String()
	assert.Contains(t, out, "attached lake.png")
	assert.Contains(t, out, txt+" is not an image")
	assert.Contains(t, out, "error: stat")

	require.Len(t, ta.media.calls, 1)
	require.Len(t, ta.media.calls[0], 1)
	assert.Equal(t, "image/png", ta.media.calls[0][0].ContentType)
	require.Len(t, ta.entries.subs, 1)
	assert.Len(t, ta.entries.subs[0].Images, 1)
}

func TestSession_RenderPrintsHintOnce(t *testing.T) {
	ta := newTestApp("")
	s := newSession(ta.reader, ta.buf)

	d := compose.Draft{HintVisible: true, HintText: compose.IntroHintText}
	s.render(d)
	s.render(d)
	d.PlaceLabel = "杭州市"
	s.render(d)
	s.render(compose.Draft{PlaceLabel: "杭州市"})

	out := ta.buf.String()
	assert.Equal(t, 1, strings.Count(out, compose.IntroHintText))
	assert.Equal(t, 1, strings.Count(out, "[location] 杭州市"))
}

func TestSession_NavigatorEndsLoop(t *testing.T) {
	s := newSession(nil, nil)
	assert.False(t, s.closed())
	s.Pop()
	assert.True(t, s.closed())

	s = newSession(nil, nil)
	s.Reset(compose.SceneIndex)
	assert.True(t, s.closed())
	assert.Equal(t, compose.SceneIndex, s.scene)
}
