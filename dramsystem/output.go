package dramsystem

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/tebeka/atexit"

	"github.com/aka-sps/dramsim2/dram/signal"
	"github.com/aka-sps/dramsim2/sim/hooking"
	"github.com/aka-sps/dramsim2/sim/id"
)

// VisWriter writes the channel-by-channel, rank-by-rank energy columns a
// MultiChannelMemorySystem reports each epoch to a ".vis" CSV stream: every
// Finalize call writes one value row, and the first call writes the header
// row ahead of it. The latency histogram is written on a final call, as a
// trailing "!!HISTOGRAM_DATA" block.
type VisWriter struct {
	file       *os.File
	headerDone bool
	numChans   int
	numRanks   int
}

// NewVisWriter creates a VisWriter backed by a freshly created file at
// path, overwriting any file already there.
func NewVisWriter(path string, numChans, numRanks int) *VisWriter {
	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}

	w := &VisWriter{file: file, numChans: numChans, numRanks: numRanks}

	atexit.Register(func() {
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})

	return w
}

// Finalize writes the current epoch's values as one row, writing the
// header first if this is the first call. channelRanks[c] holds channel
// c's per-rank energy counters for the epoch. When final is true, the
// latency histogram is appended after the row.
func (w *VisWriter) Finalize(final bool, channelRanks [][]RankEnergy, bins, counts []int) {
	if !w.headerDone {
		w.writeHeader()
		w.headerDone = true
	}

	w.writeRow(channelRanks)

	if !final {
		return
	}

	fmt.Fprintln(w.file, "!!HISTOGRAM_DATA")

	for i, bin := range bins {
		fmt.Fprintf(w.file, "%d=%d\n", bin, counts[i])
	}
}

// RankEnergy is the per-rank energy snapshot a VisWriter row reports.
type RankEnergy struct {
	Background, Burst, ActPre, Refresh float64
}

func (w *VisWriter) writeHeader() {
	fields := []string{"background", "burst", "actpre", "refresh"}

	first := true

	for c := 0; c < w.numChans; c++ {
		for r := 0; r < w.numRanks; r++ {
			for _, f := range fields {
				if !first {
					fmt.Fprint(w.file, ",")
				}

				first = false

				fmt.Fprintf(w.file, "%s[%d][%d]", f, c, r)
			}
		}
	}

	fmt.Fprintln(w.file)
}

func (w *VisWriter) writeRow(channelRanks [][]RankEnergy) {
	first := true

	for c := 0; c < w.numChans; c++ {
		for r := 0; r < w.numRanks; r++ {
			e := channelRanks[c][r]

			for _, v := range []float64{e.Background, e.Burst, e.ActPre, e.Refresh} {
				if !first {
					fmt.Fprint(w.file, ",")
				}

				first = false

				fmt.Fprintf(w.file, "%.4f", v)
			}
		}
	}

	fmt.Fprintln(w.file)
}

// VerificationRecorder records every command a controller issues to a
// SQLite-backed verification output, queryable after the run instead of
// grepped from a flat log.
type VerificationRecorder struct {
	db        *sql.DB
	stmt      *sql.Stmt
	buffered  []verificationRow
	batchSize int
}

type verificationRow struct {
	cycle      int
	kind       string
	rank, bank int
	row, col   int
}

// NewVerificationRecorder creates a VerificationRecorder backed by a fresh
// SQLite database at path. Attach it to one or more channels with
// MemorySystem.AttachVerificationRecorder before use.
func NewVerificationRecorder(path string) *VerificationRecorder {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		panic(err)
	}

	v := &VerificationRecorder{db: db, batchSize: 1000}
	v.createTable()
	v.prepareStatement()

	atexit.Register(func() { v.Flush() })

	return v
}

func (v *VerificationRecorder) createTable() {
	v.mustExec(`
		create table commands (
			run_id varchar(40) not null,
			cycle int not null,
			kind varchar(20) not null,
			rank int not null,
			bank int not null,
			row int not null,
			col int not null
		);
	`)
}

func (v *VerificationRecorder) prepareStatement() {
	stmt, err := v.db.Prepare(
		`insert into commands (run_id, cycle, kind, rank, bank, row, col) values (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		panic(err)
	}

	v.stmt = stmt
}

func (v *VerificationRecorder) mustExec(query string) {
	if _, err := v.db.Exec(query); err != nil {
		panic(err)
	}
}

// Hook returns a hooking.Hook that records every command a controller
// issues, stamped with the cycle now reports at the time of issue; install
// it with ctrl.AcceptHook.
func (v *VerificationRecorder) Hook(now func() int) hooking.Hook {
	return newFuncHook(func(ctx hooking.HookCtx) {
		cmd, ok := ctx.Item.(*signal.Command)
		if !ok {
			return
		}

		v.record(cmd, now())
	})
}

func (v *VerificationRecorder) record(cmd *signal.Command, cycle int) {
	v.buffered = append(v.buffered, verificationRow{
		cycle: cycle, kind: cmd.Kind.String(), rank: cmd.Rank, bank: cmd.Bank,
		row: cmd.Row, col: cmd.Col,
	})

	if len(v.buffered) >= v.batchSize {
		v.Flush()
	}
}

// Flush writes every buffered command to the database.
func (v *VerificationRecorder) Flush() {
	if len(v.buffered) == 0 {
		return
	}

	runID := id.Generate()

	v.mustExec("BEGIN TRANSACTION")

	for _, r := range v.buffered {
		if _, err := v.stmt.Exec(runID, r.cycle, r.kind, r.rank, r.bank, r.row, r.col); err != nil {
			panic(err)
		}
	}

	v.mustExec("COMMIT TRANSACTION")

	v.buffered = nil
}
