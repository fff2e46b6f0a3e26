package screens

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.uber.org/atomic"

	"github.com/tinytelemetry/tradeadvance/internal/apperr"
	"github.com/tinytelemetry/tradeadvance/internal/journal"
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/platform"
	"github.com/tinytelemetry/tradeadvance/internal/savedata"
	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

type tradeFocus int

const (
	focusList tradeFocus = iota
	focusBack
	focusTrade
)

// Progress checkpoints after load, encode, write and the final step.
var tradeStages = [4]float64{0.32, 0.5, 0.68, 1.0}

const stageDuration = 750 * time.Millisecond

// Trade lets the user pick one party member from each of two saves and
// swaps them.
type Trade struct {
	env *Env

	stems    [2]string
	trainers [2]string
	parties  [2][]string

	side    int
	cursor  int
	picked  [2]int
	focus   tradeFocus
	message string
	hint    string

	progress *atomic.Float64
	showing  *atomic.Bool
}

func NewTrade(env *Env) *Trade {
	return &Trade{
		env:      env,
		picked:   [2]int{-1, -1},
		progress: atomic.NewFloat64(0),
		showing:  atomic.NewBool(false),
	}
}

func (t *Trade) Init() (nav.Action, error) {
	first, second, err := t.env.Store.FindPair()
	if err != nil {
		return nav.None(), err
	}
	t.stems = [2]string{first, second}

	for i, stem := range t.stems {
		save, err := t.env.Store.Load(stem)
		if err != nil {
			return nav.None(), err
		}
		t.trainers[i] = save.TrainerName()
		t.parties[i] = savedata.PartyNames(save)
		if len(t.parties[i]) == 0 {
			return nav.None(), apperr.NotFound(fmt.Sprintf("party of %s", t.trainers[i]))
		}
	}
	t.env.log().Info("saves loaded", "first", first, "second", second)
	return nav.None(), nil
}

func (t *Trade) label(side, i int, name string) string {
	highlighted := t.side == side && t.cursor == i && t.focus == focusList
	selected := t.picked[side] == i
	switch {
	case selected && highlighted:
		return fmt.Sprintf(" [>%-10s<] ", name)
	case selected:
		return fmt.Sprintf("  >%-10s<  ", name)
	case highlighted:
		return fmt.Sprintf(" [ %-10s ] ", name)
	default:
		return fmt.Sprintf("   %-10s   ", name)
	}
}

func (t *Trade) party(side int) widget.Widget {
	names := make([]widget.Widget, len(t.parties[side]))
	for i, name := range t.parties[side] {
		names[i] = widget.NewText(t.label(side, i, name))
	}
	return widget.NewSizedBox(widget.NewColumn(
		widget.NewAlign(widget.NewText(t.trainers[side])),
		widget.NewDivider('-'),
		widget.NewColumn(names...),
	)).Width(16)
}

func (t *Trade) progressBar() widget.Widget {
	if !t.showing.Load() {
		return widget.NewText("")
	}
	th := t.env.Theme
	bar := widget.NewProgressBar(t.progress.Load(), glyph(th.ProgressFill), glyph(th.ProgressTip), glyph(th.ProgressEmpty))
	return widget.NewBorder(bar).WithCorners(widget.CornersRound)
}

func (t *Trade) status() widget.Widget {
	msg := widget.NewText(t.message).MaxWidth(45)
	if t.hint == "" {
		return msg
	}
	return widget.NewColumn(widget.NewAlign(msg), widget.NewText(""), widget.NewAlign(widget.NewText(t.hint)))
}

func (t *Trade) Build() {
	tx := t.env.Text
	ui := widget.NewBorder(widget.NewColumn(
		widget.NewSizedBox(widget.NewAlign(widget.NewText(tx.T("trade_title")))).Height(3),
		widget.NewAlign(widget.NewBorder(widget.NewRow(
			t.party(0),
			widget.NewDivider('|').Vertical(),
			t.party(1),
		)).WithCorners(widget.CornersRound)),
		widget.NewText(""),
		widget.NewAlign(widget.NewRow(
			widget.NewSizedBox(widget.NewButton(tx.T("trade_back")).Selected(t.focus == focusBack)).Width(12),
			widget.NewText("   "),
			widget.NewSizedBox(widget.NewButton(tx.T("trade_button")).Selected(t.focus == focusTrade)).Width(12),
		)),
		widget.NewFlexible(1, widget.NewAlign(t.status())),
		widget.NewPadding(widget.NewBuilder(t.progressBar)).Horizontal(2).Bottom(1),
	))
	t.env.draw(ui)
}

func (t *Trade) last() int { return len(t.parties[t.side]) - 1 }

func (t *Trade) HandleInput() (nav.Action, error) {
	key, err := t.env.Input.WaitInput()
	if err != nil {
		return nav.None(), err
	}
	t.message = ""

	switch key {
	case platform.KeyUp:
		if t.focus != focusList {
			t.focus = focusList
		} else if t.cursor > 0 {
			t.cursor--
		}
	case platform.KeyDown:
		if t.focus == focusList && t.cursor == t.last() {
			t.focus = focusBack
		} else if t.cursor < t.last() {
			t.cursor++
		}
	case platform.KeyLeft:
		if t.focus == focusTrade {
			t.focus = focusBack
		} else {
			t.side = 0
			t.cursor = min(t.cursor, t.last())
			t.focus = focusList
		}
	case platform.KeyRight:
		if t.focus == focusBack {
			t.focus = focusTrade
		} else {
			t.side = 1
			t.cursor = min(t.cursor, t.last())
			t.focus = focusList
		}
	case platform.KeyEnter:
		switch t.focus {
		case focusBack:
			return nav.Pop(), nil
		case focusTrade:
			if t.picked[0] < 0 || t.picked[1] < 0 {
				t.message = t.env.Text.T("trade_select_both")
				return nav.None(), nil
			}
			return t.trade()
		}
		if t.picked[t.side] == t.cursor {
			t.picked[t.side] = -1
		} else {
			t.picked[t.side] = t.cursor
		}
	case platform.KeyEscape:
		return nav.Pop(), nil
	}
	return nav.None(), nil
}

// trade runs the swap with the progress animation between stages. Nothing
// is written until both saves encode cleanly.
func (t *Trade) trade() (nav.Action, error) {
	log := t.env.log().With("first", t.stems[0], "second", t.stems[1])

	t.message = t.env.Text.T("trade_in_progress")
	t.progress.Store(0)
	t.showing.Store(true)
	t.env.redraw(t.Build)

	if err := t.swap(log); err != nil {
		t.showing.Store(false)
		t.message = ""
		log.Error("trade failed", "err", err)
		return nav.None(), err
	}

	t.env.Sleep.Sleep(100 * time.Millisecond)
	t.message = t.env.Text.T("trade_success")
	t.hint = t.env.Text.T("trade_again_hint")
	t.env.redraw(t.Build)

	key, err := t.env.Input.WaitInput()
	if err != nil {
		return nav.None(), err
	}
	if key == platform.KeyEscape {
		return nav.Pop(), nil
	}
	return nav.Go(NewTrade(t.env)), nil
}

func (t *Trade) swap(log *slog.Logger) error {
	if t.stems[0] == "" || t.stems[1] == "" {
		return apperr.Custom(t.env.Text.T("err_saves_gone"))
	}
	t.animate(0, tradeStages[0])

	var saves [2]savedata.Save
	for i, stem := range t.stems {
		save, err := t.env.Store.Load(stem)
		if err != nil {
			return err
		}
		saves[i] = save
	}
	record := journal.Trade{Saves: t.stems}
	for i, save := range saves {
		record.Trainers[i] = save.TrainerName()
		if party := save.Party(); t.picked[i] < len(party) {
			record.Species[i] = party[t.picked[i]].Species
		}
	}
	if err := savedata.Trade(saves[0], saves[1], t.picked[0], t.picked[1]); err != nil {
		return err
	}
	log.Info("party members swapped", "slot1", t.picked[0], "slot2", t.picked[1])
	t.animate(tradeStages[0], tradeStages[1])

	var bufs [2][]byte
	for i, stem := range t.stems {
		data, err := t.env.Store.Encode(stem, saves[i])
		if err != nil {
			return err
		}
		bufs[i] = data
	}
	t.animate(tradeStages[1], tradeStages[2])

	if t.env.Backup != nil {
		for _, stem := range t.stems {
			path := t.env.Store.Path(stem)
			dst, err := t.env.Backup.Snapshot(path)
			if err != nil {
				return &apperr.FSError{Op: "backup", Path: path, Err: err}
			}
			log.Info("save backed up", "stem", stem, "copy", dst)
		}
	}
	for i, stem := range t.stems {
		if err := t.env.Store.Write(stem, bufs[i]); err != nil {
			return err
		}
	}
	log.Info("saves written")
	t.remember(log, record)
	t.animate(tradeStages[2], tradeStages[3])
	return nil
}

// remember appends the trade to the history. The saves are already
// written, so a failure is only logged.
func (t *Trade) remember(log *slog.Logger, record journal.Trade) {
	if t.env.History == nil {
		return
	}
	record.Time = time.Now().UTC()
	seq, err := t.env.History.Append(record)
	if err != nil {
		log.Warn("trade history not written", "err", err)
		return
	}
	log.Debug("trade recorded", "seq", seq)
}

// animate eases the progress bar from one value to another over
// stageDuration with a cubic ease-out, redrawing every frame.
func (t *Trade) animate(from, to float64) {
	frameTime := time.Second / time.Duration(t.env.fps())
	total := 0
	if !t.env.SkipAnimations {
		total = int(stageDuration / frameTime)
	}
	for f := range total {
		p := float64(f) / float64(total)
		ease := 1 - math.Pow(1-p, 3)
		t.progress.Store(from + (to-from)*ease)
		t.env.redraw(t.Build)
		t.env.Sleep.Sleep(frameTime)
	}
	t.progress.Store(to)
	t.env.redraw(t.Build)
}
