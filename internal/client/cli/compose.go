package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/compose"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/filex"
)

// maxAttachmentSize caps a single attached image.
const maxAttachmentSize = 10 << 20

var readAttachment = func(path string) ([]byte, error) {
	return filex.ReadLimited(path, maxAttachmentSize)
}

// NewEntry opens a compose session and blocks until the screen is left.
func (a *App) NewEntry(ctx context.Context) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}

	s := newSession(a.reader, a.out)
	s.screen = compose.NewScreen(compose.ScreenDeps{
		Deps: compose.Deps{
			Media:     a.media,
			Entries:   a.entryService,
			Profiles:  a.profiles,
			Navigator: s,
			Prompter:  s,
		},
		Flags:    a.flags,
		Position: a.position,
		Geocoder: a.geocoder,
	}, a.composeConfig(), a.log)

	err := s.run(ctx)

	a.screens.Add(1)
	go func() {
		defer a.screens.Done()
		s.screen.Wait()
	}()
	return err
}

// session renders one compose screen on the terminal. It is the screen's
// Navigator and Prompter: leaving the screen ends the sub-REPL.
type session struct {
	reader *bufio.Reader
	out    io.Writer
	screen *compose.Screen

	mu       sync.Mutex
	left     bool
	scene    compose.Scene
	hintOpen bool
	label    string
}

func newSession(reader *bufio.Reader, out io.Writer) *session {
	return &session{reader: reader, out: out}
}

func (s *session) Pop() {
	s.leave("")
}

func (s *session) Reset(scene compose.Scene) {
	s.leave(scene)
}

func (s *session) leave(scene compose.Scene) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.left = true
	s.scene = scene
}

func (s *session) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.left
}

func (s *session) Alert(_ context.Context, message string) {
	s.printf("! %s\n", message)
}

func (s *session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

// render is the draft subscriber. It prints the hint when it opens and the
// place label once it is known.
func (s *session) render(d compose.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.HintVisible && !s.hintOpen {
		fmt.Fprintf(s.out, "[hint] %s (type 'ok')\n", d.HintText)
	}
	s.hintOpen = d.HintVisible

	if d.PlaceLabel != "" && d.PlaceLabel != s.label {
		fmt.Fprintf(s.out, "[location] %s\n", d.PlaceLabel)
		s.label = d.PlaceLabel
	}
}

func (s *session) run(ctx context.Context) error {
	cancel := s.screen.Store().Subscribe(s.render)
	defer cancel()

	s.screen.Activate(ctx)
	defer func() {
		_ = s.screen.Teardown(ctx)
	}()

	started := s.screen.Store().Snapshot().StartedAt
	s.printf("New entry for %s. Type 'help' for commands.\n", started.Format("2006-01-02"))

	for !s.closed() {
		s.printf("note> ")
		line, err := s.reader.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "":
		case "help":
			s.printf("Commands: title <text>, body, attach [path...], show, save, ok, back\n")
		case "title":
			s.screen.Store().SetTitle(rest)
		case "body":
			body, err := GetMultiline(s.reader, "Write your entry", s.out)
			if err != nil {
				return err
			}
			s.screen.Store().SetBody(body)
		case "attach":
			s.attach(rest)
		case "show":
			s.show()
		case "save", "back", "cancel":
			s.save(ctx)
		case "ok":
			s.screen.AcknowledgeHint()
		default:
			s.printf("Unknown command: %s\n", cmd)
		}
	}

	s.mu.Lock()
	scene := s.scene
	s.mu.Unlock()
	if scene != "" {
		s.printf("Back to %s\n", scene)
	}
	return nil
}

func (s *session) attach(rest string) {
	paths := strings.Fields(rest)
	if len(paths) == 0 {
		var err error
		paths, err = GetLines(s.reader, "Image paths", s.out)
		if err != nil {
			s.printf("error: %v\n", err)
			return
		}
	}

	for _, p := range paths {
		data, err := readAttachment(p)
		if err != nil {
			s.printf("error: %v\n", err)
			continue
		}
		m := models.Media{Name: filepath.Base(p), ContentType: http.DetectContentType(data), Data: data}
		if !m.IsImage() {
			s.printf("%s is not an image (%s)\n", p, m.ContentType)
			continue
		}
		s.screen.Store().AppendMedia(m)
		s.printf("attached %s\n", m.Name)
	}
}

func (s *session) show() {
	d := s.screen.Store().Snapshot()
	place := d.PlaceLabel
	if place == "" {
		place = "-"
	}
	s.printf("Date:     %s\nLocation: %s\nTitle:    %s\nImages:   %d\n%s\n",
		d.StartedAt.Format("2006-01-02"), place, d.Title, len(d.Media), d.Body)
}

func (s *session) save(ctx context.Context) {
	res, err := s.screen.Save(ctx)
	if err != nil {
		// the prompter has already shown the failure
		return
	}
	switch res.Outcome {
	case compose.OutcomeIgnored:
		s.printf("Save already in progress\n")
	case compose.OutcomeDiscard:
		s.printf("Nothing to save, entry discarded\n")
	case compose.OutcomeShowHint, compose.OutcomeNavigateHome:
		s.printf("Saved %s\n", res.EntryID)
	}
}
