package storage

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/economy"
)

// Recorder persists the events and final score of one game run.
// A nil store turns persistence off; events are still logged.
type Recorder struct {
	store  *Store
	logger *log.Logger
	gameID string
	runID  string
	seq    int
	saved  bool
}

// NewRecorder starts a run for gameID with a fresh run ID.
func NewRecorder(store *Store, gameID string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:  store,
		logger: logger,
		gameID: gameID,
		runID:  uuid.NewString(),
	}
}

// RunID returns the run's identifier.
func (r *Recorder) RunID() string {
	return r.runID
}

// Restart begins a new run, as after the player restarts the game.
func (r *Recorder) Restart() {
	r.runID = uuid.NewString()
	r.seq = 0
	r.saved = false
}

// Record logs and stores the events of one step, with amounts rounded to
// pence. Terminal open and close events are logged but not written to the
// ledger.
func (r *Recorder) Record(events []core.Event) {
	if len(events) == 0 {
		return
	}

	entries := make([]LedgerEntry, 0, len(events))
	for _, e := range events {
		r.logEvent(e)
		if e.Kind == core.EventTerminalOpened || e.Kind == core.EventTerminalClosed {
			continue
		}
		r.seq++
		entries = append(entries, LedgerEntry{
			RunID:   r.runID,
			GameID:  r.gameID,
			Kind:    e.Kind.String(),
			Amount:  economy.RoundMoney(e.Amount),
			Current: economy.RoundMoney(e.Current),
			ISA:     economy.RoundMoney(e.ISA),
			Year:    e.Year,
			Seq:     r.seq,
		})
	}

	if r.store == nil {
		return
	}
	if err := r.store.SaveLedger(entries); err != nil {
		r.logger.Warn("ledger write failed", "run", r.runID, "err", err)
	}
}

// Finish saves the final score once per run. Later calls are no-ops.
func (r *Recorder) Finish(score int) error {
	if r.saved {
		return nil
	}
	r.saved = true
	r.logger.Info("run finished", "game", r.gameID, "run", r.runID, "score", score)

	if r.store == nil || score <= 0 {
		return nil
	}
	_, err := r.store.SaveScore(r.gameID, score)
	return err
}

func (r *Recorder) logEvent(e core.Event) {
	switch e.Kind {
	case core.EventYearEnded:
		r.logger.Info("year ended", "year", e.Year,
			"interest", economy.FormatMoney(e.Amount),
			"current", economy.FormatMoney(e.Current),
			"isa", economy.FormatMoney(e.ISA))
	case core.EventDeposit:
		r.logger.Info("deposit", "amount", economy.FormatMoney(e.Amount),
			"current", economy.FormatMoney(e.Current),
			"isa", economy.FormatMoney(e.ISA))
	case core.EventDepositRefused:
		r.logger.Debug("deposit refused", "amount", economy.FormatMoney(e.Amount),
			"current", economy.FormatMoney(e.Current))
	default:
		r.logger.Debug(e.Kind.String(), "year", e.Year)
	}
}
