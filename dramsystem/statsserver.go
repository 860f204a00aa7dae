package dramsystem

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/aka-sps/dramsim2/dram"
	"github.com/aka-sps/dramsim2/sim/hooking"
)

// StatsServer exposes a running MultiChannelMemorySystem's status over
// HTTP: per-channel energy counters, the command-issue rate, and the
// simulator process's own CPU/memory footprint, polled by a browser or a
// monitoring script rather than read off stdout.
type StatsServer struct {
	system     *MultiChannelMemorySystem
	portNumber int

	commandsIssued uint64
}

// NewStatsServer creates a StatsServer for system. Call StartServer to
// bring it up; it does nothing on its own until then.
func NewStatsServer(system *MultiChannelMemorySystem) *StatsServer {
	s := &StatsServer{system: system}

	for i := 0; i < system.NumChannels(); i++ {
		system.Channel(i).Channel().AcceptHook(&commandCounter{s: s})
	}

	return s
}

// commandCounter increments StatsServer.commandsIssued on every command a
// channel issues; a struct (rather than a bare func) so AcceptHook's
// duplicate-hook check, which compares hooks with ==, works.
type commandCounter struct {
	s *StatsServer
}

func (c *commandCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != dram.HookPosCommandIssue {
		return
	}

	atomic.AddUint64(&c.s.commandsIssued, 1)
}

// WithPortNumber sets the port StartServer binds to. Ports below 1000 are
// refused in favor of an OS-assigned ephemeral port, since those are
// typically reserved for system services.
func (s *StatsServer) WithPortNumber(portNumber int) *StatsServer {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"port %d is reserved, using a random port instead\n", portNumber)
		portNumber = 0
	}

	s.portNumber = portNumber

	return s
}

// StartServer brings up the HTTP status server in the background and
// returns immediately; it logs the bound address to stderr.
func (s *StatsServer) StartServer() {
	r := mux.NewRouter()
	r.HandleFunc("/api/channels", s.listChannels)
	r.HandleFunc("/api/channel/{index}", s.channelDetail)
	r.HandleFunc("/api/channel/{index}/component", s.channelComponent)
	r.HandleFunc("/api/channel/{index}/field/{field}", s.channelField)
	r.HandleFunc("/api/resource", s.resourceUsage)

	addr := ":0"
	if s.portNumber >= 1000 {
		addr = ":" + strconv.Itoa(s.portNumber)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr,
		"monitoring memory system at http://localhost:%d\n",
		listener.Addr().(*net.TCPAddr).Port)

	go func() {
		if err := http.Serve(listener, r); err != nil {
			panic(err)
		}
	}()
}

type channelSummary struct {
	Index int          `json:"index"`
	Now   int          `json:"now"`
	Ranks []rankSummary `json:"ranks"`
}

type rankSummary struct {
	Background float64 `json:"background"`
	Burst      float64 `json:"burst"`
	ActPre     float64 `json:"actpre"`
	Refresh    float64 `json:"refresh"`
}

func (s *StatsServer) summarize(i int) channelSummary {
	ch := s.system.Channel(i).Channel()

	ranks := make([]rankSummary, 0)
	for _, acc := range ch.EnergyRanks() {
		ranks = append(ranks, rankSummary{
			Background: acc.Background, Burst: acc.Burst,
			ActPre: acc.ActPre, Refresh: acc.Refresh,
		})
	}

	return channelSummary{Index: i, Now: ch.Now(), Ranks: ranks}
}

type channelsRsp struct {
	Channels       []channelSummary `json:"channels"`
	CommandsIssued uint64           `json:"commandsIssued"`
}

func (s *StatsServer) listChannels(w http.ResponseWriter, _ *http.Request) {
	summaries := make([]channelSummary, s.system.NumChannels())
	for i := range summaries {
		summaries[i] = s.summarize(i)
	}

	s.writeJSON(w, channelsRsp{
		Channels:       summaries,
		CommandsIssued: atomic.LoadUint64(&s.commandsIssued),
	})
}

func (s *StatsServer) channelDetail(w http.ResponseWriter, r *http.Request) {
	index, ok := s.channelIndex(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, s.summarize(index))
}

func (s *StatsServer) channelIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 || index >= s.system.NumChannels() {
		http.NotFound(w, r)
		return 0, false
	}

	return index, true
}

// channelComponent reflects the full field tree of a channel's controller
// one level deep, for ad hoc inspection beyond the fixed energy summary
// listChannels/channelDetail report.
func (s *StatsServer) channelComponent(w http.ResponseWriter, r *http.Request) {
	index, ok := s.channelIndex(w, r)
	if !ok {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(s.system.Channel(index).Channel())
	serializer.SetMaxDepth(1)

	if err := serializer.Serialize(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// channelField reflects a single dotted field path off a channel's
// controller, e.g. "config.Timing.CL".
func (s *StatsServer) channelField(w http.ResponseWriter, r *http.Request) {
	index, ok := s.channelIndex(w, r)
	if !ok {
		return
	}

	fields := strings.Split(mux.Vars(r)["field"], ".")

	serializer := goseth.NewSerializer()
	serializer.SetRoot(s.system.Channel(index).Channel())
	serializer.SetMaxDepth(1)

	if err := serializer.SetEntryPoint(fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := serializer.Serialize(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type resourceSummary struct {
	CPUPercent float64 `json:"cpuPercent"`
	MemoryRSS  uint64  `json:"memoryRss"`
}

func (s *StatsServer) resourceUsage(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, resourceSummary{CPUPercent: cpuPercent, MemoryRSS: mem.RSS})
}

func (s *StatsServer) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
