package config

import "strconv"

// applyOverride sets a single INI-style key on cfg, parsing v according to
// the key's type. Parse failures and unknown keys are silently ignored: the
// override map is meant for a handful of values a caller sets
// programmatically, not a replacement for full INI validation.
func applyOverride(cfg *Config, key, v string) {
	if applyTimingOverride(&cfg.Timing, key, v) {
		return
	}

	if applyTopologyOverride(&cfg.Topology, key, v) {
		return
	}

	applyPolicyOverride(cfg, key, v)
}

func applyTimingOverride(t *Timing, key, v string) bool {
	intFields := map[string]*int{
		"CL": &t.CL, "AL": &t.AL, "CWL": &t.CWL, "BL": &t.BL,
		"TRAS": &t.RAS, "TRCD": &t.RCD, "TRRD": &t.RRD, "TRC": &t.RC,
		"TRP": &t.RP, "TCCD": &t.CCD, "TRTP": &t.RTP,
		"TWTR": &t.WTR, "TWR": &t.WR, "TRTRS": &t.RTRS,
		"TRFC": &t.RFC, "TFAW": &t.FAW, "TCKE": &t.CKE, "TXP": &t.XP,
		"TCMD": &t.CMD,
		"REFRESH_PERIOD":     &t.RefreshPeriod,
		"TOTAL_ROW_ACCESSES": &t.TotalRowAccesses,
		"EPOCH_LENGTH":       &t.EpochLength,
		"CMD_QUEUE_DEPTH":    &t.CmdQueueDepth,
		"TRANS_QUEUE_DEPTH":  &t.TransQueueDepth,
	}

	if p, ok := intFields[key]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			*p = n
		}

		return true
	}

	if key == "TCK" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			t.TCK = f
		}

		return true
	}

	return false
}

func applyTopologyOverride(t *Topology, key, v string) bool {
	fields := map[string]*int{
		"NUM_CHANS": &t.NumChans, "NUM_RANKS": &t.NumRanks,
		"NUM_BANKS": &t.NumBanks, "NUM_ROWS": &t.NumRows,
		"NUM_COLS": &t.NumCols, "JEDEC_DATA_BUS_BITS": &t.JEDECDataBusBits,
		"NUM_DEVICES": &t.NumDevices, "DEVICE_WIDTH": &t.DeviceWidth,
	}

	p, ok := fields[key]
	if !ok {
		return false
	}

	if n, err := strconv.Atoi(v); err == nil {
		*p = n
	}

	return true
}

func applyPolicyOverride(cfg *Config, key, v string) {
	switch key {
	case "ROW_BUFFER_POLICY":
		if v == "open_page" {
			cfg.RowBufferPolicy = OpenPage
		} else if v == "close_page" {
			cfg.RowBufferPolicy = ClosePage
		}
	case "SCHEDULING_POLICY":
		if v == "rank_then_bank_round_robin" {
			cfg.Scheduling = RankThenBankRoundRobin
		} else if v == "bank_then_rank_round_robin" {
			cfg.Scheduling = BankThenRankRoundRobin
		}
	case "QUEUING_STRUCTURE":
		if v == "per_rank" {
			cfg.Queuing = PerRank
		} else if v == "per_rank_per_bank" {
			cfg.Queuing = PerRankPerBank
		}
	case "ADDRESS_MAPPING_SCHEME":
		schemes := map[string]AddressMappingScheme{
			"scheme1": Scheme1, "scheme2": Scheme2, "scheme3": Scheme3,
			"scheme4": Scheme4, "scheme5": Scheme5, "scheme6": Scheme6,
			"scheme7": Scheme7, "scheme8": Scheme8,
		}
		if s, ok := schemes[v]; ok {
			cfg.AddrMapping = s
		}
	case "USE_LOW_POWER":
		cfg.Debug.LowPower = v == "true" || v == "1"
	case "DEBUG_TRANS_Q":
		cfg.Debug.TransQ = v == "true" || v == "1"
	case "DEBUG_CMD_Q":
		cfg.Debug.CmdQ = v == "true" || v == "1"
	case "DEBUG_BANKS":
		cfg.Debug.Banks = v == "true" || v == "1"
	case "DEBUG_BUS":
		cfg.Debug.Bus = v == "true" || v == "1"
	case "DEBUG_POWER":
		cfg.Debug.Power = v == "true" || v == "1"
	case "DEBUG_BANKSTATE":
		cfg.Debug.BankState = v == "true" || v == "1"
	case "DEBUG_ADDR_MAP":
		cfg.Debug.AddrMap = v == "true" || v == "1"
	case "VERIFICATION_OUTPUT":
		cfg.Debug.Verify = v == "true" || v == "1"
	case "VIS_FILE_OUTPUT":
		cfg.Debug.VisFileOut = v == "true" || v == "1"
	}
}
