package screens

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tinytelemetry/tradeadvance/internal/apperr"
	"github.com/tinytelemetry/tradeadvance/internal/journal"
	"github.com/tinytelemetry/tradeadvance/internal/locale"
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/platform"
	"github.com/tinytelemetry/tradeadvance/internal/savedata"
	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

const saveDir = "/saves"

type harness struct {
	env   *Env
	rec   *platform.Recorder
	fs    *platform.MemFS
	sleep *platform.NoSleep
}

func newHarness(t *testing.T, keys ...platform.Key) *harness {
	t.Helper()
	text, err := locale.New("en")
	if err != nil {
		t.Fatalf("locale.New: %v", err)
	}
	h := &harness{
		rec:   platform.NewRecorder(),
		fs:    platform.NewMemFS(),
		sleep: &platform.NoSleep{},
	}
	h.env = &Env{
		Console: h.rec,
		Input:   platform.NewScriptInput(keys...),
		Sleep:   h.sleep,
		Keys:    platform.DefaultKeyMap(),
		Store: &savedata.Store{
			FS:    h.fs,
			Codec: savedata.YAMLCodec{},
			Dir:   saveDir,
			Ext:   ".sav",
		},
		Text:           text,
		Theme:          DefaultTheme(),
		Version:        "1.2.3",
		SkipAnimations: true,
	}
	return h
}

func (h *harness) seed(t *testing.T, stem, trainer string, species ...string) {
	t.Helper()
	party := make([]savedata.Member, len(species))
	for i, s := range species {
		party[i] = savedata.Member{Species: s, Level: 5}
	}
	data, err := savedata.NewYAMLSave(trainer, party...).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	h.fs.Files[filepath.Join(saveDir, stem+".sav")] = data
}

func (h *harness) party(t *testing.T, stem string) []string {
	t.Helper()
	save, err := h.env.Store.Load(stem)
	if err != nil {
		t.Fatalf("Load(%s): %v", stem, err)
	}
	return savedata.PartyNames(save)
}

func (h *harness) run(t *testing.T, root nav.Screen) error {
	t.Helper()
	err := nav.New(root, h.env.NavOptions()).Run()
	for i, f := range h.rec.Frames {
		checkFrame(t, i, f)
	}
	return err
}

func (h *harness) anyFrame(sub string) bool {
	return slices.ContainsFunc(h.rec.Frames, func(f string) bool {
		return strings.Contains(f, sub)
	})
}

func checkFrame(t *testing.T, i int, frame string) {
	t.Helper()
	lines := strings.Split(frame, "\n")
	if len(lines) != widget.Rows {
		t.Fatalf("frame %d has %d lines, want %d", i, len(lines), widget.Rows)
	}
	for y, l := range lines {
		if n := utf8.RuneCountInString(l); n != widget.Cols {
			t.Fatalf("frame %d line %d has %d columns, want %d", i, y, n, widget.Cols)
		}
	}
}

func TestSplashMovesToMenu(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	err := h.run(t, NewSplash(h.env))
	if !errors.Is(err, platform.ErrInputClosed) {
		t.Fatalf("Run() = %v, want ErrInputClosed", err)
	}
	if len(h.rec.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(h.rec.Frames))
	}
	if !strings.Contains(h.rec.Frames[0], "save file trading") {
		t.Fatalf("splash frame lacks tagline:\n%s", h.rec.Frames[0])
	}
	if !strings.Contains(h.rec.Last(), "Trade") {
		t.Fatalf("menu frame lacks trade button:\n%s", h.rec.Last())
	}
	if got := h.rec.Colors[len(h.rec.Colors)-1]; got != h.env.Theme.Menu {
		t.Fatalf("menu colour = %d, want %d", got, h.env.Theme.Menu)
	}
}

func TestSplashAnimationSleepsAndFlashes(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.env.SkipAnimations = false
	_ = h.run(t, NewSplash(h.env))

	if h.sleep.Calls != 13 {
		t.Fatalf("sleep calls = %d, want 13", h.sleep.Calls)
	}
	if !slices.Contains(h.rec.Colors, h.env.Theme.SplashFlash) {
		t.Fatalf("colors %v never used the flash colour", h.rec.Colors)
	}
}

func TestMenuNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keys     []platform.Key
		wantErr  error
		wantText string
	}{
		{
			name:     "about and back then exit",
			keys:     []platform.Key{platform.KeyDown, platform.KeyEnter, platform.KeyEscape, platform.KeyDown, platform.KeyDown, platform.KeyEnter},
			wantText: "Special thanks to:",
		},
		{
			name: "escape pops the menu",
			keys: []platform.Key{platform.KeyEscape},
		},
		{
			name:     "selection clamps at the ends",
			keys:     []platform.Key{platform.KeyUp, platform.KeyDown, platform.KeyDown, platform.KeyDown, platform.KeyDown, platform.KeyEnter},
			wantText: "Exit",
		},
		{
			name:    "input closes",
			keys:    []platform.Key{platform.KeyDown},
			wantErr: platform.ErrInputClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, tt.keys...)
			err := h.run(t, NewMenu(h.env))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() = %v, want %v", err, tt.wantErr)
			}
			if tt.wantText != "" && !h.anyFrame(tt.wantText) {
				t.Fatalf("no frame contains %q", tt.wantText)
			}
		})
	}
}

func TestMenuSelectionMoves(t *testing.T) {
	t.Parallel()

	h := newHarness(t, platform.KeyDown, platform.KeyDown, platform.KeyDown, platform.KeyUp)
	m := NewMenu(h.env)
	for range 4 {
		if _, err := m.HandleInput(); err != nil {
			t.Fatalf("HandleInput: %v", err)
		}
	}
	if m.selected != menuAbout {
		t.Fatalf("selected = %d, want %d", m.selected, menuAbout)
	}
}

func TestTradeWithoutSavesShowsError(t *testing.T) {
	t.Parallel()

	h := newHarness(t, platform.KeyEnter)
	n := nav.New(NewMenu(h.env), h.env.NavOptions())
	n.Apply(nav.Push(NewTrade(h.env)))

	if n.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", n.Len())
	}
	es, ok := n.Top().(*Error)
	if !ok {
		t.Fatalf("Top() = %T, want *Error", n.Top())
	}
	if !apperr.IsMissingFiles(es.Err()) {
		t.Fatalf("error = %v, want missing files", es.Err())
	}

	es.Build()
	if err := h.rec.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	frame := h.rec.Last()
	checkFrame(t, 0, frame)
	for _, want := range []string{"ERROR", "OK", "Could not find two"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("error frame lacks %q:\n%s", want, frame)
		}
	}

	act, err := es.HandleInput()
	if err != nil || act.Kind != nav.ActionPop {
		t.Fatalf("HandleInput() = %v, %v, want pop", act.Kind, err)
	}
}

func TestTradeEmptyPartyFailsInit(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t, "a", "RED", "Bulbasaur")
	h.seed(t, "b", "BLUE")

	_, err := NewTrade(h.env).Init()
	if !apperr.IsNotFound(err) {
		t.Fatalf("Init() = %v, want not found", err)
	}
}

func TestTradeSwapsAndWrites(t *testing.T) {
	t.Parallel()

	h := newHarness(t,
		platform.KeyEnter,
		platform.KeyRight, platform.KeyDown, platform.KeyEnter,
		platform.KeyDown, platform.KeyRight, platform.KeyEnter,
		platform.KeyEscape,
	)
	h.seed(t, "a", "RED", "Bulbasaur", "Pikachu")
	h.seed(t, "b", "BLUE", "Eevee", "Jolteon")

	if err := h.run(t, NewTrade(h.env)); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}

	if got, want := h.party(t, "a"), []string{"Pikachu", "Jolteon"}; !slices.Equal(got, want) {
		t.Fatalf("party a = %v, want %v", got, want)
	}
	if got, want := h.party(t, "b"), []string{"Eevee", "Bulbasaur"}; !slices.Equal(got, want) {
		t.Fatalf("party b = %v, want %v", got, want)
	}
	if !h.anyFrame("Trade successful!") {
		t.Fatalf("no frame shows the success message")
	}
	if !h.anyFrame("//////") {
		t.Fatalf("no frame shows the progress bar")
	}
}

func TestTradeAgainRestartsScreen(t *testing.T) {
	t.Parallel()

	h := newHarness(t,
		platform.KeyEnter, platform.KeyRight, platform.KeyEnter,
		platform.KeyDown, platform.KeyRight, platform.KeyEnter,
		platform.KeyEnter, // trade again
	)
	h.seed(t, "a", "RED", "Bulbasaur")
	h.seed(t, "b", "BLUE", "Eevee")

	err := h.run(t, NewTrade(h.env))
	if !errors.Is(err, platform.ErrInputClosed) {
		t.Fatalf("Run() = %v, want ErrInputClosed", err)
	}
	last := h.rec.Last()
	if strings.Contains(last, "Trade successful!") {
		t.Fatalf("restarted screen still shows the success message:\n%s", last)
	}
	if !strings.Contains(last, "Eevee") {
		t.Fatalf("restarted screen lacks the new party:\n%s", last)
	}
	if got := h.party(t, "a"); !slices.Equal(got, []string{"Eevee"}) {
		t.Fatalf("party a = %v, want [Eevee]", got)
	}
}

func TestTradeNeedsBothSelections(t *testing.T) {
	t.Parallel()

	h := newHarness(t, platform.KeyEnter, platform.KeyDown, platform.KeyRight, platform.KeyEnter)
	h.seed(t, "a", "RED", "Bulbasaur")
	h.seed(t, "b", "BLUE", "Eevee")

	err := h.run(t, NewTrade(h.env))
	if !errors.Is(err, platform.ErrInputClosed) {
		t.Fatalf("Run() = %v, want ErrInputClosed", err)
	}
	if !strings.Contains(h.rec.Last(), "Please select a pokemon from each trainer.") {
		t.Fatalf("last frame lacks the hint:\n%s", h.rec.Last())
	}
	if got := h.party(t, "a"); !slices.Equal(got, []string{"Bulbasaur"}) {
		t.Fatalf("party a = %v, want unchanged", got)
	}
}

func TestTradeWriteFailureLeavesSaves(t *testing.T) {
	t.Parallel()

	h := newHarness(t,
		platform.KeyEnter, platform.KeyRight, platform.KeyEnter,
		platform.KeyDown, platform.KeyRight, platform.KeyEnter,
	)
	h.seed(t, "a", "RED", "Bulbasaur")
	h.seed(t, "b", "BLUE", "Eevee")
	h.fs.WriteErr = os.ErrPermission

	err := h.run(t, NewTrade(h.env))
	if !errors.Is(err, platform.ErrInputClosed) {
		t.Fatalf("Run() = %v, want ErrInputClosed", err)
	}
	if !strings.Contains(h.rec.Last(), "ERROR") || !strings.Contains(h.rec.Last(), "Failed to write") {
		t.Fatalf("last frame is not the write error:\n%s", h.rec.Last())
	}
	if got := h.party(t, "a"); !slices.Equal(got, []string{"Bulbasaur"}) {
		t.Fatalf("party a = %v, want unchanged", got)
	}
}

func TestTradeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		keys       []platform.Key
		wantSide   int
		wantCursor int
		wantFocus  tradeFocus
		wantPicked [2]int
		wantPop    bool
	}{
		{
			name:       "down walks the list then reaches back",
			keys:       []platform.Key{platform.KeyDown, platform.KeyDown, platform.KeyDown},
			wantCursor: 2,
			wantFocus:  focusBack,
			wantPicked: [2]int{-1, -1},
		},
		{
			name:       "up leaves the buttons",
			keys:       []platform.Key{platform.KeyDown, platform.KeyDown, platform.KeyDown, platform.KeyUp},
			wantCursor: 2,
			wantFocus:  focusList,
			wantPicked: [2]int{-1, -1},
		},
		{
			name:       "right clamps the cursor to the shorter party",
			keys:       []platform.Key{platform.KeyDown, platform.KeyDown, platform.KeyRight},
			wantSide:   1,
			wantCursor: 0,
			wantPicked: [2]int{-1, -1},
		},
		{
			name:       "enter toggles selection",
			keys:       []platform.Key{platform.KeyDown, platform.KeyEnter, platform.KeyEnter, platform.KeyEnter},
			wantCursor: 1,
			wantPicked: [2]int{1, -1},
		},
		{
			name:       "left from trade goes to back",
			keys:       []platform.Key{platform.KeyRight, platform.KeyDown, platform.KeyRight, platform.KeyLeft},
			wantSide:   1,
			wantFocus:  focusBack,
			wantPicked: [2]int{-1, -1},
		},
		{
			name:       "enter on back pops",
			keys:       []platform.Key{platform.KeyRight, platform.KeyDown, platform.KeyEnter},
			wantSide:   1,
			wantFocus:  focusBack,
			wantPicked: [2]int{-1, -1},
			wantPop:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, tt.keys...)
			h.seed(t, "a", "RED", "Bulbasaur", "Charmander", "Squirtle")
			h.seed(t, "b", "BLUE", "Eevee")

			tr := NewTrade(h.env)
			if _, err := tr.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			var last nav.Action
			for range tt.keys {
				act, err := tr.HandleInput()
				if err != nil {
					t.Fatalf("HandleInput: %v", err)
				}
				last = act
			}
			if tr.side != tt.wantSide || tr.cursor != tt.wantCursor {
				t.Fatalf("side, cursor = %d, %d, want %d, %d", tr.side, tr.cursor, tt.wantSide, tt.wantCursor)
			}
			if tr.focus != tt.wantFocus {
				t.Fatalf("focus = %d, want %d", tr.focus, tt.wantFocus)
			}
			if tr.picked != tt.wantPicked {
				t.Fatalf("picked = %v, want %v", tr.picked, tt.wantPicked)
			}
			if got := last.Kind == nav.ActionPop; got != tt.wantPop {
				t.Fatalf("popped = %v, want %v", got, tt.wantPop)
			}
		})
	}
}

func TestTradeLabel(t *testing.T) {
	t.Parallel()

	tr := NewTrade(nil)
	tr.picked = [2]int{0, -1}

	tests := []struct {
		side, i int
		want    string
	}{
		{side: 0, i: 0, want: " [>Pikachu   <] "},
		{side: 0, i: 1, want: "   Pikachu      "},
		{side: 1, i: 0, want: "   Pikachu      "},
	}
	for _, tt := range tests {
		if got := tr.label(tt.side, tt.i, "Pikachu"); got != tt.want {
			t.Fatalf("label(%d, %d) = %q, want %q", tt.side, tt.i, got, tt.want)
		}
	}

	tr.cursor = 1
	if got, want := tr.label(0, 0, "Pikachu"), "  >Pikachu   <  "; got != want {
		t.Fatalf("label = %q, want %q", got, want)
	}
	if got, want := tr.label(0, 1, "Pikachu"), " [ Pikachu    ] "; got != want {
		t.Fatalf("label = %q, want %q", got, want)
	}
}

func TestTradeAnimateFrames(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.env.SkipAnimations = false
	h.env.FPS = 10
	h.seed(t, "a", "RED", "Bulbasaur")
	h.seed(t, "b", "BLUE", "Eevee")

	tr := NewTrade(h.env)
	if _, err := tr.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	tr.animate(0, 0.5)

	if h.sleep.Calls != 7 {
		t.Fatalf("sleep calls = %d, want 7", h.sleep.Calls)
	}
	if len(h.rec.Frames) != 8 {
		t.Fatalf("frames = %d, want 8", len(h.rec.Frames))
	}
	if got := tr.progress.Load(); got != 0.5 {
		t.Fatalf("progress = %v, want 0.5", got)
	}
}

func TestAboutShowsVersionAndPops(t *testing.T) {
	t.Parallel()

	h := newHarness(t, platform.KeyEnter)
	if err := h.run(t, NewAbout(h.env)); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	frame := h.rec.Last()
	for _, want := range []string{"version 1.2.3", "< esc", "Special thanks to:"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("about frame lacks %q:\n%s", want, frame)
		}
	}
}

func TestErrorScreenDescribesCustom(t *testing.T) {
	t.Parallel()

	h := newHarness(t, platform.KeyDown, platform.KeyEnter)
	if err := h.run(t, NewError(h.env, apperr.Custom("cartridge unplugged"))); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if len(h.rec.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(h.rec.Frames))
	}
	if !strings.Contains(h.rec.Frames[0], "cartridge unplugged") {
		t.Fatalf("error frame lacks message:\n%s", h.rec.Frames[0])
	}
}

func TestExitPlaysAndPops(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.env.SkipAnimations = false
	if err := h.run(t, NewExit(h.env)); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if !h.anyFrame("See you next time!") {
		t.Fatalf("no frame shows the goodbye")
	}
	if !slices.Contains(h.rec.Colors, h.env.Theme.ExitFlash) {
		t.Fatalf("colors %v never used the flash colour", h.rec.Colors)
	}
}

type fakeBackup struct {
	paths []string
	err   error
}

func (f *fakeBackup) Snapshot(path string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.paths = append(f.paths, path)
	return path + ".bak", nil
}

func TestTradeBacksUpBeforeWriting(t *testing.T) {
	t.Parallel()

	tradeKeys := []platform.Key{
		platform.KeyEnter, platform.KeyRight, platform.KeyEnter,
		platform.KeyDown, platform.KeyRight, platform.KeyEnter,
		platform.KeyEscape,
	}

	t.Run("copies both saves", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, tradeKeys...)
		h.seed(t, "a", "RED", "Bulbasaur")
		h.seed(t, "b", "BLUE", "Eevee")
		b := &fakeBackup{}
		h.env.Backup = b

		if err := h.run(t, NewTrade(h.env)); err != nil {
			t.Fatalf("Run() = %v, want nil", err)
		}
		want := []string{filepath.Join(saveDir, "a.sav"), filepath.Join(saveDir, "b.sav")}
		if !slices.Equal(b.paths, want) {
			t.Fatalf("backed up %v, want %v", b.paths, want)
		}
	})

	t.Run("failure stops the write", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, tradeKeys...)
		h.seed(t, "a", "RED", "Bulbasaur")
		h.seed(t, "b", "BLUE", "Eevee")
		h.env.Backup = &fakeBackup{err: os.ErrPermission}

		_ = h.run(t, NewTrade(h.env))
		if !h.anyFrame("Could not back up") {
			t.Fatalf("no frame shows the backup error")
		}
		if got := h.party(t, "a"); !slices.Equal(got, []string{"Bulbasaur"}) {
			t.Fatalf("party a = %v, want unchanged", got)
		}
	})
}

type fakeHistory struct {
	trades []journal.Trade
}

func (f *fakeHistory) Append(t journal.Trade) (uint64, error) {
	f.trades = append(f.trades, t)
	return uint64(len(f.trades)), nil
}

func TestTradeRecordsHistory(t *testing.T) {
	t.Parallel()

	h := newHarness(t,
		platform.KeyEnter, platform.KeyRight, platform.KeyEnter,
		platform.KeyDown, platform.KeyRight, platform.KeyEnter,
		platform.KeyEscape,
	)
	h.seed(t, "a", "RED", "Bulbasaur")
	h.seed(t, "b", "BLUE", "Eevee")
	hist := &fakeHistory{}
	h.env.History = hist

	if err := h.run(t, NewTrade(h.env)); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if len(hist.trades) != 1 {
		t.Fatalf("recorded %d trades, want 1", len(hist.trades))
	}
	got := hist.trades[0]
	if got.Saves != [2]string{"a", "b"} || got.Trainers != [2]string{"RED", "BLUE"} || got.Species != [2]string{"Bulbasaur", "Eevee"} {
		t.Fatalf("recorded %+v", got)
	}
	if got.Time.IsZero() {
		t.Fatal("recorded trade has no time")
	}
}
