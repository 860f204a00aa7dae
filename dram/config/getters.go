package config

// intFields maps every integer-valued INI key this package recognises to
// its current value, mirroring applyTimingOverride/applyTopologyOverride's
// key set.
func (c Config) intFields() map[string]int {
	return map[string]int{
		"CL": c.Timing.CL, "AL": c.Timing.AL, "CWL": c.Timing.CWL, "BL": c.Timing.BL,
		"TRAS": c.Timing.RAS, "TRCD": c.Timing.RCD, "TRRD": c.Timing.RRD, "TRC": c.Timing.RC,
		"TRP": c.Timing.RP, "TCCD": c.Timing.CCD, "TRTP": c.Timing.RTP,
		"TWTR": c.Timing.WTR, "TWR": c.Timing.WR, "TRTRS": c.Timing.RTRS,
		"TRFC": c.Timing.RFC, "TFAW": c.Timing.FAW, "TCKE": c.Timing.CKE, "TXP": c.Timing.XP,
		"TCMD": c.Timing.CMD,

		"REFRESH_PERIOD":     c.Timing.RefreshPeriod,
		"TOTAL_ROW_ACCESSES": c.Timing.TotalRowAccesses,
		"EPOCH_LENGTH":       c.Timing.EpochLength,
		"CMD_QUEUE_DEPTH":    c.Timing.CmdQueueDepth,
		"TRANS_QUEUE_DEPTH":  c.Timing.TransQueueDepth,

		"NUM_CHANS": c.Topology.NumChans, "NUM_RANKS": c.Topology.NumRanks,
		"NUM_BANKS": c.Topology.NumBanks, "NUM_ROWS": c.Topology.NumRows,
		"NUM_COLS": c.Topology.NumCols, "JEDEC_DATA_BUS_BITS": c.Topology.JEDECDataBusBits,
		"NUM_DEVICES": c.Topology.NumDevices, "DEVICE_WIDTH": c.Topology.DeviceWidth,

		"HISTOGRAM_BIN_SIZE": c.HistogramBinSize,
	}
}

func (c Config) floatFields() map[string]float64 {
	return map[string]float64{
		"TCK": c.Timing.TCK,
		"VDD": c.Currents.Vdd,

		"IDD0": c.Currents.IDD0, "IDD2N": c.Currents.IDD2N, "IDD2P": c.Currents.IDD2P,
		"IDD3N": c.Currents.IDD3N, "IDD4R": c.Currents.IDD4R, "IDD4W": c.Currents.IDD4W,
		"IDD5": c.Currents.IDD5,
	}
}

func (c Config) boolFields() map[string]bool {
	return map[string]bool{
		"USE_LOW_POWER": c.Debug.LowPower, "DEBUG_TRANS_Q": c.Debug.TransQ,
		"DEBUG_CMD_Q": c.Debug.CmdQ, "DEBUG_BANKS": c.Debug.Banks,
		"DEBUG_BUS": c.Debug.Bus, "DEBUG_POWER": c.Debug.Power,
		"DEBUG_BANKSTATE": c.Debug.BankState, "DEBUG_ADDR_MAP": c.Debug.AddrMap,
		"VERIFICATION_OUTPUT": c.Debug.Verify, "VIS_FILE_OUTPUT": c.Debug.VisFileOut,
	}
}

// GetIniUint64 looks up an integer-valued INI key.
func (c Config) GetIniUint64(key string) (uint64, bool) {
	v, ok := c.intFields()[key]
	return uint64(v), ok
}

// GetIniUint looks up an integer-valued INI key.
func (c Config) GetIniUint(key string) (uint, bool) {
	v, ok := c.intFields()[key]
	return uint(v), ok
}

// GetIniFloat looks up a floating-point-valued INI key.
func (c Config) GetIniFloat(key string) (float64, bool) {
	v, ok := c.floatFields()[key]
	return v, ok
}

// GetIniBool looks up a boolean-valued INI key.
func (c Config) GetIniBool(key string) (bool, bool) {
	v, ok := c.boolFields()[key]
	return v, ok
}
