package main

import (
	"bufio"
	"fmt"
	"math/bits"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/aka-sps/dramsim2/dram/config"
	"github.com/aka-sps/dramsim2/dramsystem"
	"github.com/aka-sps/dramsim2/sim/timing"
)

var runFlags struct {
	deviceIni   string
	systemIni   string
	traceFile   string
	sizeMiB     int
	visFile     string
	numChans    int
	cpuClockHz  uint64
	openReport  bool
	cpuProfile  string
	monitorPort int
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a trace against a simulated memory system.",
	Long: "`run --device [device.ini] --system [system.ini] --trace [trace file] " +
		"--size [MiB]` replays a trace against a simulated DRAM memory system.",
	Run: runSimulation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.deviceIni, "device", "", "device configuration file")
	runCmd.Flags().StringVar(&runFlags.systemIni, "system", "", "system configuration file")
	runCmd.Flags().StringVar(&runFlags.traceFile, "trace", "", "trace file to replay")
	runCmd.Flags().IntVar(&runFlags.sizeMiB, "size", 2048, "memory size in MiB, must be a power of two")
	runCmd.Flags().StringVar(&runFlags.visFile, "vis", "", "base name for the .vis output file")
	runCmd.Flags().IntVar(&runFlags.numChans, "chans", 1, "number of channels to shard the trace across")
	runCmd.Flags().Uint64Var(&runFlags.cpuClockHz, "cpu-clock", 0, "host CPU clock in Hz, 0 for 1:1 with the DRAM clock")
	runCmd.Flags().BoolVar(&runFlags.openReport, "open-report", false, "open the finalized .vis report in a browser")
	runCmd.Flags().StringVar(&runFlags.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	runCmd.Flags().IntVar(&runFlags.monitorPort, "monitor-port", 0, "serve live stats over HTTP on this port, 0 to disable")
}

func runSimulation(_ *cobra.Command, _ []string) {
	if runFlags.cpuProfile != "" {
		stop := startCPUProfile(runFlags.cpuProfile)
		defer stop()
	}

	cfg := loadConfig(runFlags.deviceIni, runFlags.systemIni)

	if err := validateSizeMiB(runFlags.sizeMiB); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	engine := timing.NewSerialEngine()

	system := dramsystem.NewMultiChannelMemorySystem(
		engine, timing.Freq(1/cfg.Timing.TCK*1e9), cfg, runFlags.numChans, "Mem")
	system.SetCPUClockSpeed(runFlags.cpuClockHz)

	if runFlags.visFile != "" {
		system.SetVisOutput(runFlags.visFile + ".vis")
	}

	if cfg.Debug.Verify {
		rec := dramsystem.NewVerificationRecorder(visBaseName() + ".verify.db")
		system.AttachVerificationRecorder(rec)
	}

	if runFlags.monitorPort != 0 {
		dramsystem.NewStatsServer(system).WithPortNumber(runFlags.monitorPort).StartServer()
	}

	replayTrace(system, runFlags.traceFile)

	if err := engine.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	system.PrintStats(os.Stdout, true)

	if runFlags.openReport && runFlags.visFile != "" {
		if err := browser.OpenFile(runFlags.visFile + ".vis"); err != nil {
			fmt.Fprintln(os.Stderr, "Error opening report:", err)
		}
	}
}

func visBaseName() string {
	if runFlags.visFile != "" {
		return runFlags.visFile
	}

	return "dramsim2"
}

func startCPUProfile(path string) func() {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}

func validateSizeMiB(sizeMiB int) error {
	if sizeMiB <= 0 || bits.OnesCount(uint(sizeMiB)) != 1 {
		return fmt.Errorf("memory size %d MiB is not a positive power of two", sizeMiB)
	}

	return nil
}

// loadConfig reads device and system configuration files, each a flat
// KEY=VALUE-per-line file (parsing a real INI dialect is out of scope),
// and applies them over the built-in default as overrides, system after
// device so a system file can override a device setting.
func loadConfig(deviceIni, systemIni string) config.Config {
	cfg := config.Default()

	for _, path := range []string{deviceIni, systemIni} {
		if path == "" {
			continue
		}

		cfg = cfg.Override(readKeyValueFile(path))
	}

	return cfg
}

func readKeyValueFile(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer f.Close()

	values := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return values
}

// replayTrace drives system from a trace file, one request per line:
// "<hex address> <R|W>". Lines that don't parse are skipped. Backpressure
// from a full transaction queue is handled by retrying the engine's
// quiescence drain before the next line, since the core has no bounded
// per-cycle stepping primitive to pace against (see
// dramsystem.MemorySystem.Update).
func replayTrace(system *dramsystem.MultiChannelMemorySystem, path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "0x"), 16, 64)
		if err != nil {
			continue
		}

		isWrite := strings.EqualFold(fields[1], "W") || strings.EqualFold(fields[1], "WRITE")

		for !system.AddTransaction(isWrite, addr) {
			system.Update()
		}
	}
}
