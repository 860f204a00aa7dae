package mem

import "github.com/aka-sps/dramsim2/sim/id"

func newID() string { return id.Generate() }
